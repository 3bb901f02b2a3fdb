package dynaql

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	// ErrNilSpec is returned when a nil query or scan description is marshaled.
	ErrNilSpec = errors.New("nil spec")

	// ErrMissingAttributeName is returned when a condition has no attribute name.
	ErrMissingAttributeName = errors.New("condition attribute name is empty")
)

// UnsupportedOperatorError is returned when a comparison operator has no SQL
// symbol in the active operator table.
type UnsupportedOperatorError struct {
	Operator types.ComparisonOperator
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported comparison operator %q", string(e.Operator))
}

// ValueArityError is returned when the number of values supplied to a
// condition does not match what its operator requires.
type ValueArityError struct {
	Operator types.ComparisonOperator
	Want     int // values required by the operator
	Got      int // values supplied
}

func (e *ValueArityError) Error() string {
	return fmt.Sprintf("operator %s requires %d value(s), got %d", e.Operator, e.Want, e.Got)
}

// InvalidProjectionError is returned when a projection expression is supplied
// but is empty or contains only whitespace.
type InvalidProjectionError struct {
	Expression string
}

func (e *InvalidProjectionError) Error() string {
	return fmt.Sprintf("%q is not a valid projection expression", e.Expression)
}
