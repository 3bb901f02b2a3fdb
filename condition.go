package dynaql

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Condition compares a single attribute against zero, one or two values.
// BETWEEN takes two values, the existence checks take none, and every other
// operator takes one.
type Condition struct {
	Attribute string                   // The attribute name
	Operator  types.ComparisonOperator // The comparison operator
	Values    []Value                  // Values compared against the attribute
}

// KeyAttribute is an equality condition on a table's hash key.
type KeyAttribute struct {
	Name  string // The hash key attribute name
	Value Value  // The hash key value
}

// Key returns a KeyAttribute for the named hash key. The value is converted
// with ValueOf.
func Key(name string, value any) *KeyAttribute {
	return &KeyAttribute{Name: name, Value: ValueOf(value)}
}

// condition returns the key attribute as an EQ condition.
func (k KeyAttribute) condition() Condition {
	return Condition{
		Attribute: k.Name,
		Operator:  types.ComparisonOperatorEq,
		Values:    []Value{k.Value},
	}
}

// NameBuilder builds conditions on a single attribute.
//
//	dynaql.Name("price").Between(10, 20)
//	dynaql.Name("status").Equal("active")
//
// Arguments are converted with ValueOf.
type NameBuilder struct {
	name string
}

// Name returns a NameBuilder for the attribute.
func Name(attribute string) NameBuilder {
	return NameBuilder{name: attribute}
}

func (nb NameBuilder) build(op types.ComparisonOperator, values ...any) Condition {
	cond := Condition{Attribute: nb.name, Operator: op}
	for _, v := range values {
		cond.Values = append(cond.Values, ValueOf(v))
	}
	return cond
}

// Equal returns an EQ condition.
func (nb NameBuilder) Equal(v any) Condition { return nb.build(types.ComparisonOperatorEq, v) }

// NotEqual returns a NE condition.
func (nb NameBuilder) NotEqual(v any) Condition { return nb.build(types.ComparisonOperatorNe, v) }

// LessThan returns a LT condition.
func (nb NameBuilder) LessThan(v any) Condition { return nb.build(types.ComparisonOperatorLt, v) }

// LessThanEqual returns a LE condition.
func (nb NameBuilder) LessThanEqual(v any) Condition {
	return nb.build(types.ComparisonOperatorLe, v)
}

// GreaterThan returns a GT condition.
func (nb NameBuilder) GreaterThan(v any) Condition { return nb.build(types.ComparisonOperatorGt, v) }

// GreaterThanEqual returns a GE condition.
func (nb NameBuilder) GreaterThanEqual(v any) Condition {
	return nb.build(types.ComparisonOperatorGe, v)
}

// Between returns a BETWEEN condition with inclusive bounds.
func (nb NameBuilder) Between(lower, upper any) Condition {
	return nb.build(types.ComparisonOperatorBetween, lower, upper)
}

// BeginsWith returns a BEGINS_WITH condition. There is no SQL translation for
// it; marshaling a spec that contains one fails with *UnsupportedOperatorError.
func (nb NameBuilder) BeginsWith(prefix string) Condition {
	return nb.build(types.ComparisonOperatorBeginsWith, prefix)
}

// Contains returns a CONTAINS condition. Like BeginsWith it cannot be
// translated.
func (nb NameBuilder) Contains(v any) Condition {
	return nb.build(types.ComparisonOperatorContains, v)
}

// AttributeExists returns a NOT_NULL condition. It only translates when the
// Table has ExistenceChecks enabled.
func (nb NameBuilder) AttributeExists() Condition {
	return nb.build(types.ComparisonOperatorNotNull)
}

// AttributeNotExists returns a NULL condition. It only translates when the
// Table has ExistenceChecks enabled.
func (nb NameBuilder) AttributeNotExists() Condition {
	return nb.build(types.ComparisonOperatorNull)
}

// renderCondition renders a single comparison fragment, such as
// "attr = 5", "attr BETWEEN 1 AND 10" or "attr IS NOT NULL".
func renderCondition(attribute string, op types.ComparisonOperator, values []Value, existence bool) (string, error) {
	if attribute == "" {
		return "", ErrMissingAttributeName
	}

	symbol, err := symbolFor(op, existence)
	if err != nil {
		return "", err
	}

	if want := arity(op); len(values) != want {
		return "", &ValueArityError{Operator: op, Want: want, Got: len(values)}
	}

	switch len(values) {
	case 0:
		return attribute + " " + symbol, nil
	case 2:
		return attribute + " " + symbol + " " + values[0].Literal() + " AND " + values[1].Literal(), nil
	default:
		return attribute + " " + symbol + " " + values[0].Literal(), nil
	}
}

// renderFilters renders each condition in order and joins them with AND.
// An empty collection renders as the empty string.
func renderFilters(conditions []Condition, existence bool) (string, error) {
	fragments := make([]string, 0, len(conditions))
	for _, c := range conditions {
		fragment, err := renderCondition(c.Attribute, c.Operator, c.Values, existence)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, fragment)
	}
	return strings.Join(fragments, " AND "), nil
}
