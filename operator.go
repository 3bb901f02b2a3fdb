package dynaql

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// symbols maps the supported comparison operators to their SQL symbols.
// The table is never written after package initialization.
var symbols = map[types.ComparisonOperator]string{
	types.ComparisonOperatorEq:      "=",
	types.ComparisonOperatorBetween: "BETWEEN",
	types.ComparisonOperatorGe:      ">=",
	types.ComparisonOperatorLe:      "<=",
	types.ComparisonOperatorLt:      "<",
	types.ComparisonOperatorGt:      ">",
	types.ComparisonOperatorNe:      "!=",
}

// existenceSymbols extends symbols with the attribute existence checks. They
// are only consulted when existence checks are enabled on the Table.
var existenceSymbols = map[types.ComparisonOperator]string{
	types.ComparisonOperatorNotNull: "IS NOT NULL",
	types.ComparisonOperatorNull:    "IS NULL",
}

// symbolFor returns the SQL symbol for op. Operators outside the table
// (prefix, contains, membership, and existence unless enabled) produce an
// *UnsupportedOperatorError.
func symbolFor(op types.ComparisonOperator, existence bool) (string, error) {
	if symbol, ok := symbols[op]; ok {
		return symbol, nil
	}
	if existence {
		if symbol, ok := existenceSymbols[op]; ok {
			return symbol, nil
		}
	}
	return "", &UnsupportedOperatorError{Operator: op}
}

// arity returns the number of values op compares against.
func arity(op types.ComparisonOperator) int {
	switch op {
	case types.ComparisonOperatorBetween:
		return 2
	case types.ComparisonOperatorNotNull, types.ComparisonOperatorNull:
		return 0
	default:
		return 1
	}
}
