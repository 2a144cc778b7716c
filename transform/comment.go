package transform

import (
	"fmt"
	"regexp"
)

// Prepends the site name to the comment unless the comment already
// mentions the site as a separate word. The site must be preceded by the
// start of the string, an underscore, a hyphen or whitespace, and followed
// by an underscore, a hyphen or whitespace. The site at the very end of the
// comment is not a match. The comparison is case insensitive. The comment
// is returned unchanged when the normalization is disabled or the site is
// empty.
func NormalizeComment(comment, site string, enabled bool) string {
	if !enabled || site == "" {
		return comment
	}
	pattern := regexp.MustCompile(`(?i)(^|[_\-\s])` + regexp.QuoteMeta(site) + `[_\-\s]`)
	if pattern.MatchString(comment) {
		return comment
	}
	return fmt.Sprintf("%s %s", site, comment)
}
