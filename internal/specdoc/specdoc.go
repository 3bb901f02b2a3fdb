// Package specdoc reads query and scan descriptions from JSON documents.
//
// A document looks like this:
//
//	{
//	  "hashKey":    {"name": "PrimaryKey", "value": "1234"},
//	  "rangeKey":   {"name": "Sort", "operator": "BETWEEN", "values": [1, 10]},
//	  "filters":    [{"name": "Price", "operator": "GT", "values": [12.5]}],
//	  "projection": "PrimaryKey, OtherKey",
//	  "limit":      10
//	}
//
// Every field is optional. A document with a hashKey or rangeKey describes a
// query, anything else describes a scan.
package specdoc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nisimpson/dynaql"
	"github.com/tidwall/gjson"
)

// ErrInvalidDocument is returned for malformed JSON and for documents whose
// fields have the wrong shape.
var ErrInvalidDocument = errors.New("invalid spec document")

// Parse reads a document and returns a *dynaql.QuerySpec or *dynaql.ScanSpec.
func Parse(data []byte) (dynaql.Spec, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: document must be an object", ErrInvalidDocument)
	}

	filters, err := parseFilters(doc.Get("filters"))
	if err != nil {
		return nil, err
	}

	projection, err := parseProjection(doc.Get("projection"))
	if err != nil {
		return nil, err
	}

	limit, err := parseLimit(doc.Get("limit"))
	if err != nil {
		return nil, err
	}

	hashKey, rangeKey := doc.Get("hashKey"), doc.Get("rangeKey")
	if !hashKey.Exists() && !rangeKey.Exists() {
		return &dynaql.ScanSpec{
			ScanFilters:          filters,
			ProjectionExpression: projection,
			MaxResultSize:        limit,
		}, nil
	}

	spec := &dynaql.QuerySpec{
		QueryFilters:         filters,
		ProjectionExpression: projection,
		MaxResultSize:        limit,
	}

	if hashKey.Exists() {
		if !hashKey.IsObject() {
			return nil, fmt.Errorf("%w: hashKey must be an object", ErrInvalidDocument)
		}
		name, err := parseName("hashKey", hashKey)
		if err != nil {
			return nil, err
		}
		value, err := parseValue("hashKey.value", hashKey.Get("value"))
		if err != nil {
			return nil, err
		}
		spec.HashKey = &dynaql.KeyAttribute{Name: name, Value: value}
	}

	if rangeKey.Exists() {
		cond, err := parseCondition("rangeKey", rangeKey)
		if err != nil {
			return nil, err
		}
		spec.RangeKeyCondition = &cond
	}

	return spec, nil
}

func parseFilters(r gjson.Result) ([]dynaql.Condition, error) {
	if !r.Exists() {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: filters must be an array", ErrInvalidDocument)
	}

	var filters []dynaql.Condition
	for i, item := range r.Array() {
		cond, err := parseCondition(fmt.Sprintf("filters[%d]", i), item)
		if err != nil {
			return nil, err
		}
		filters = append(filters, cond)
	}
	return filters, nil
}

func parseCondition(path string, r gjson.Result) (dynaql.Condition, error) {
	if !r.IsObject() {
		return dynaql.Condition{}, fmt.Errorf("%w: %s must be an object", ErrInvalidDocument, path)
	}

	name, err := parseName(path, r)
	if err != nil {
		return dynaql.Condition{}, err
	}

	cond := dynaql.Condition{
		Attribute: name,
		Operator:  types.ComparisonOperator(strings.ToUpper(r.Get("operator").String())),
	}

	values := r.Get("values")
	if !values.Exists() {
		return cond, nil
	}
	if !values.IsArray() {
		return dynaql.Condition{}, fmt.Errorf("%w: %s.values must be an array", ErrInvalidDocument, path)
	}

	for i, item := range values.Array() {
		v, err := parseValue(fmt.Sprintf("%s.values[%d]", path, i), item)
		if err != nil {
			return dynaql.Condition{}, err
		}
		cond.Values = append(cond.Values, v)
	}
	return cond, nil
}

// parseName returns the attribute name of a key or condition object. A
// missing name is left to the translator to reject.
func parseName(path string, r gjson.Result) (string, error) {
	name := r.Get("name")
	if !name.Exists() {
		return "", nil
	}
	if name.Type != gjson.String {
		return "", fmt.Errorf("%w: %s.name must be a string", ErrInvalidDocument, path)
	}
	return name.Str, nil
}

// parseValue maps a JSON scalar to a Value. Integral numbers become Int when
// they fit in 32 bits and Long otherwise.
func parseValue(path string, r gjson.Result) (dynaql.Value, error) {
	switch r.Type {
	case gjson.String:
		return dynaql.Text(r.Str), nil
	case gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return dynaql.Int(int32(i)), nil
			}
			return dynaql.Long(i), nil
		}
		return dynaql.Float(r.Num), nil
	case gjson.True, gjson.False:
		return dynaql.Other(r.Bool()), nil
	default:
		return dynaql.Value{}, fmt.Errorf("%w: %s must be a string, number or boolean", ErrInvalidDocument, path)
	}
}

func parseProjection(r gjson.Result) (*string, error) {
	if !r.Exists() {
		return nil, nil
	}
	if r.Type != gjson.String {
		return nil, fmt.Errorf("%w: projection must be a string", ErrInvalidDocument)
	}
	return aws.String(r.Str), nil
}

func parseLimit(r gjson.Result) (*int32, error) {
	if !r.Exists() {
		return nil, nil
	}
	if r.Type != gjson.Number {
		return nil, fmt.Errorf("%w: limit must be a number", ErrInvalidDocument)
	}
	n, err := strconv.ParseInt(r.Raw, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: limit must be a 32-bit integer", ErrInvalidDocument)
	}
	return aws.Int32(int32(n)), nil
}
