package inputform

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnsupportedValueType matches every UnsupportedValueTypeError.
var ErrUnsupportedValueType = errors.New("unsupported value type")

// UnsupportedValueTypeError reports a field whose value has no widget.
type UnsupportedValueTypeError struct {
	Field string
	Type  string
}

func (e *UnsupportedValueTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("data of type %q is not supported", e.Type)
	}
	return fmt.Sprintf("field %q: data of type %q is not supported", e.Field, e.Type)
}

func (e *UnsupportedValueTypeError) Is(target error) bool {
	return target == ErrUnsupportedValueType
}
