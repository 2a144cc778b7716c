package storkutil

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

const nullLiteral = "null"

// A value that may be explicitly unset. The exported records use it for
// every optional field, so the difference between "no opinion" (null) and
// an empty or zero value is never lost. The zero value of the Nullable is
// null.
// The Nullable type is marshalled as the inner value type if the value
// is non-nil. If the specified value is nil, the marshaller outputs
// the JSON null value.
type Nullable[T any] struct {
	value *T
}

// Instantiates a new nullable value holding a copy of the specified value.
func NewNullableFromValue[T any](value T) Nullable[T] {
	return Nullable[T]{
		value: &value,
	}
}

// Returns wrapped value.
func (v Nullable[T]) GetValue() *T {
	return v.value
}

// Returns true if no value is set.
func (v Nullable[T]) IsNull() bool {
	return v.value == nil
}

// Returns the value formatted with the default format or an empty string
// if the value is null.
func (v Nullable[T]) String() string {
	if v.value == nil {
		return ""
	}
	return fmt.Sprint(*v.value)
}

// Marshals the Nullable value. It returns the serialized wrapped value
// it is non-nil. Otherwise, it returns null JSON value.
func (v Nullable[T]) MarshalJSON() ([]byte, error) {
	if v.value != nil {
		marshalled, err := json.Marshal(*v.value)
		return marshalled, errors.Wrapf(err, "failed to marshal nullable value %v", *v.value)
	}
	return []byte(nullLiteral), nil
}

// Parses JSON value into Nullable.
func (v *Nullable[T]) UnmarshalJSON(serial []byte) error {
	if string(serial) != nullLiteral {
		var decoded T
		if err := json.Unmarshal(serial, &decoded); err != nil {
			return errors.Wrapf(err, "failed to unmarshal into nullable value: %s", string(serial))
		}
		v.value = &decoded
	} else {
		v.value = nil
	}
	return nil
}
