package dhcpmodel

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Identifiers of the well-known DHCPv4 options used by the exporter.
const (
	OptionRouter           = 3
	OptionDomainNameServer = 6
	OptionDomainName       = 15
	OptionVendorSpecific   = 43
	OptionTFTPServerName   = 66
	OptionBootfileName     = 67
)

// A value of a DHCP option. The DHCP service returns either a single
// scalar or an ordered sequence of scalars (e.g., a list of DNS servers).
// Both forms are kept as a slice of strings, and the form used by the
// source is remembered so the value is marshalled back the same way.
type OptionValue struct {
	values []string
	list   bool
}

// Creates an option value from a single scalar.
func NewScalarOptionValue(value string) OptionValue {
	return OptionValue{
		values: []string{value},
	}
}

// Creates an option value from an ordered sequence of scalars.
func NewOptionValueList(values ...string) OptionValue {
	return OptionValue{
		values: append([]string{}, values...),
		list:   true,
	}
}

// Returns a copy of the values.
func (v OptionValue) GetValues() []string {
	return append([]string{}, v.values...)
}

// Returns true if the source specified the value as a sequence.
func (v OptionValue) IsList() bool {
	return v.list
}

// Returns true if the value holds no elements.
func (v OptionValue) IsEmpty() bool {
	return len(v.values) == 0
}

// Returns the first element of the value. The second returned value is
// false if the value is empty.
func (v OptionValue) First() (string, bool) {
	if len(v.values) == 0 {
		return "", false
	}
	return v.values[0], true
}

// Joins the elements of the value using the separator.
func (v OptionValue) Join(separator string) string {
	return strings.Join(v.values, separator)
}

// Marshals the value as a JSON string or an array of strings.
func (v OptionValue) MarshalJSON() ([]byte, error) {
	var (
		serial []byte
		err    error
	)
	switch {
	case v.list:
		serial, err = json.Marshal(v.GetValues())
	case len(v.values) == 0:
		serial = []byte("null")
	default:
		serial, err = json.Marshal(v.values[0])
	}
	return serial, errors.Wrap(err, "failed to marshal the option value")
}

// Parses the option value. It accepts a string, a number, a boolean, null
// or an array of these. Numbers and booleans are kept in their literal
// form.
func (v *OptionValue) UnmarshalJSON(serial []byte) error {
	serial = bytes.TrimSpace(serial)
	switch {
	case len(serial) == 0 || string(serial) == "null":
		*v = OptionValue{}
	case serial[0] == '[':
		var rawValues []json.RawMessage
		if err := json.Unmarshal(serial, &rawValues); err != nil {
			return errors.Wrapf(err, "failed to unmarshal the option value list: %s", string(serial))
		}
		values := make([]string, 0, len(rawValues))
		for _, rawValue := range rawValues {
			value, err := unmarshalOptionScalar(rawValue)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		*v = NewOptionValueList(values...)
	default:
		value, err := unmarshalOptionScalar(serial)
		if err != nil {
			return err
		}
		*v = NewScalarOptionValue(value)
	}
	return nil
}

// Converts a JSON scalar to its string form.
func unmarshalOptionScalar(serial json.RawMessage) (string, error) {
	serial = bytes.TrimSpace(serial)
	if len(serial) > 0 && serial[0] == '"' {
		var value string
		if err := json.Unmarshal(serial, &value); err != nil {
			return "", errors.Wrapf(err, "failed to unmarshal the option value: %s", string(serial))
		}
		return value, nil
	}
	if !json.Valid(serial) || (len(serial) > 0 && (serial[0] == '{' || serial[0] == '[')) {
		return "", errors.Errorf("option value must be a scalar: %s", string(serial))
	}
	return string(serial), nil
}

// Represents a DHCP option configured on a server, a scope or a reservation.
type Option struct {
	ID          int         `json:"id"`
	Name        string      `json:"name,omitempty"`
	Type        string      `json:"type,omitempty"`
	VendorClass string      `json:"vendorClass,omitempty"`
	UserClass   string      `json:"userClass,omitempty"`
	Value       OptionValue `json:"value"`
}

// The options configured at one level of the hierarchy, keyed by the option
// identifier.
type Options map[int]*Option

// Creates the options map from a list of options. The later option wins if
// the same identifier is specified twice. The nil options are skipped.
func NewOptions(options ...*Option) Options {
	m := make(Options, len(options))
	for _, option := range options {
		if option == nil {
			continue
		}
		m[option.ID] = option
	}
	return m
}

// Parses the options from a JSON object keyed by the option identifiers or
// from an array of options. In the object form, the option identifier is
// taken from the key when the option does not specify it.
func (o *Options) UnmarshalJSON(serial []byte) error {
	serial = bytes.TrimSpace(serial)
	if len(serial) == 0 || string(serial) == "null" {
		*o = nil
		return nil
	}
	if serial[0] == '[' {
		var list []*Option
		if err := json.Unmarshal(serial, &list); err != nil {
			return errors.Wrap(err, "failed to unmarshal the option list")
		}
		*o = NewOptions(list...)
		return nil
	}
	var m map[int]*Option
	if err := json.Unmarshal(serial, &m); err != nil {
		return errors.Wrap(err, "failed to unmarshal the option map")
	}
	options := make(Options, len(m))
	for id, option := range m {
		if option == nil {
			continue
		}
		if option.ID == 0 {
			option.ID = id
		}
		options[id] = option
	}
	*o = options
	return nil
}

// Returns the option with the given identifier. It is safe to call on a
// nil map.
func (o Options) Get(id int) (*Option, bool) {
	option, ok := o[id]
	if !ok || option == nil {
		return nil, false
	}
	return option, true
}

// Returns true if the option with the given identifier is present.
func (o Options) Has(id int) bool {
	_, ok := o.Get(id)
	return ok
}

// A common interface to the entities holding DHCP options, i.e., the
// server, the scopes and the reservations.
type DHCPOptionAccessor interface {
	// Returns the options configured directly for the entity.
	GetDHCPOptions() Options
}
