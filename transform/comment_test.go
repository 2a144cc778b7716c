package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test that the comment is not changed when the normalization is disabled.
func TestNormalizeCommentDisabled(t *testing.T) {
	require.Equal(t, "Guests", NormalizeComment("Guests", "HQ", false))
}

// Test that the comment is not changed when the site is empty.
func TestNormalizeCommentEmptySite(t *testing.T) {
	require.Equal(t, "Guests", NormalizeComment("Guests", "", true))
}

// Test that the comment already containing the site as a separate word
// is not changed.
func TestNormalizeCommentSitePresent(t *testing.T) {
	comments := []string{
		"HQ Guests",
		"hq lab",
		"Guests_hq_floor1",
		"Guests-HQ-1",
		"Guests\tHQ\tlab",
	}
	for _, comment := range comments {
		t.Run(comment, func(t *testing.T) {
			require.Equal(t, comment, NormalizeComment(comment, "HQ", true))
		})
	}
}

// Test that the site is prepended when the comment does not contain it as
// a separate word.
func TestNormalizeCommentSiteMissing(t *testing.T) {
	require.Equal(t, "HQ Guests", NormalizeComment("Guests", "HQ", true))
	require.Equal(t, "HQ HQ2 Guests", NormalizeComment("HQ2 Guests", "HQ", true))
	require.Equal(t, "HQ GuestsHQ", NormalizeComment("GuestsHQ", "HQ", true))
	require.Equal(t, "HQ ", NormalizeComment("", "HQ", true))
}

// Test that the site at the end of the comment is not treated as a
// separate word.
func TestNormalizeCommentSiteAtEnd(t *testing.T) {
	require.Equal(t, "HQ Guests HQ", NormalizeComment("Guests HQ", "HQ", true))
	require.Equal(t, "HQ hq", NormalizeComment("hq", "HQ", true))
	require.Equal(t, "Guests HQ ", NormalizeComment("Guests HQ ", "HQ", true))
}

// Test that the site containing regular expression metacharacters is
// matched literally.
func TestNormalizeCommentSiteMetacharacters(t *testing.T) {
	require.Equal(t, "Lab (B.1) printers", NormalizeComment("Lab (B.1) printers", "(B.1)", true))
	require.Equal(t, "(B.1) Lab BX1", NormalizeComment("Lab BX1", "(B.1)", true))
}
