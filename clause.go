package dynaql

import (
	"strconv"
	"strings"
)

// assembleSelect builds the SELECT clause. A nil projection selects every
// attribute; a blank one is rejected.
func assembleSelect(projection *string) (string, error) {
	if projection == nil {
		return "SELECT *", nil
	}

	trimmed := strings.TrimSpace(*projection)
	if trimmed == "" {
		return "", &InvalidProjectionError{Expression: *projection}
	}

	return "SELECT " + trimmed, nil
}

// assembleWhere builds the body of the WHERE clause from the hash key
// condition, the filter collection and the range key condition, in that
// order. The three components are separated by ", " while filters among
// themselves use AND. A nil result means there is nothing to filter on.
func assembleWhere(hashKey *KeyAttribute, rangeKey *Condition, filters []Condition, existence bool) (*string, error) {
	var parts []string

	if hashKey != nil {
		cond := hashKey.condition()
		fragment, err := renderCondition(cond.Attribute, cond.Operator, cond.Values, existence)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fragment)
	}

	fragment, err := renderFilters(filters, existence)
	if err != nil {
		return nil, err
	}
	if fragment != "" {
		parts = append(parts, fragment)
	}

	if rangeKey != nil {
		fragment, err := renderCondition(rangeKey.Attribute, rangeKey.Operator, rangeKey.Values, existence)
		if err != nil {
			return nil, err
		}
		parts = append(parts, fragment)
	}

	if len(parts) == 0 {
		return nil, nil
	}

	where := strings.Join(parts, ", ")
	return &where, nil
}

// assembleLimit builds the LIMIT clause. Zero and negative limits pass
// through unchanged.
func assembleLimit(limit *int32) *string {
	if limit == nil {
		return nil
	}
	clause := "LIMIT " + strconv.FormatInt(int64(*limit), 10)
	return &clause
}
