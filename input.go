package dynaql

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	// ErrKeySchemaRequired is returned when a query input has more than one key
	// condition and no key schema to tell the hash key from the range key.
	ErrKeySchemaRequired = errors.New("key schema required to distinguish hash and range key conditions")

	// ErrConditionalOr is returned when filters are combined with OR. Filters
	// always combine conjunctively.
	ErrConditionalOr = errors.New("conditional operator OR is not supported")

	// ErrExpressionUnsupported is returned for inputs that use key condition or
	// filter expressions instead of the legacy condition maps.
	ErrExpressionUnsupported = errors.New("expression-based conditions are not supported")

	// ErrUnsupportedInput is returned for input parameters that change which
	// items DynamoDB returns but have no SQL translation: ExclusiveStartKey,
	// IndexName, a descending ScanIndexForward, Segment, TotalSegments and
	// Select ALL_PROJECTED_ATTRIBUTES.
	ErrUnsupportedInput = errors.New("unsupported input parameter")

	// ErrUnsupportedAttributeValue is returned when an attribute value has no
	// scalar SQL literal.
	ErrUnsupportedAttributeValue = errors.New("unsupported attribute value")
)

// QuerySpecFromInput converts a DynamoDB query input that uses the legacy
// KeyConditions and QueryFilter parameters into a QuerySpec. The key schema
// decides which key condition is the hash key; it may be nil when the input
// only has one key condition, which is then taken to be the hash key.
//
// Filters are ordered by attribute name because the input holds them in a map.
func QuerySpecFromInput(in *dynamodb.QueryInput, schema []types.KeySchemaElement) (*QuerySpec, error) {
	if in == nil {
		return nil, ErrNilSpec
	}

	if in.KeyConditionExpression != nil || in.FilterExpression != nil {
		return nil, ErrExpressionUnsupported
	}

	if in.ConditionalOperator == types.ConditionalOperatorOr {
		return nil, ErrConditionalOr
	}

	if err := checkReadParameters(in.ExclusiveStartKey, in.IndexName, in.Select); err != nil {
		return nil, err
	}
	if in.ScanIndexForward != nil && !*in.ScanIndexForward {
		return nil, fmt.Errorf("%w: ScanIndexForward false", ErrUnsupportedInput)
	}

	spec := &QuerySpec{
		MaxResultSize: in.Limit,
	}

	if err := splitKeyConditions(spec, in.KeyConditions, schema); err != nil {
		return nil, err
	}

	filters, err := conditionsFromMap(in.QueryFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to convert query filter: %w", err)
	}
	spec.QueryFilters = filters

	projection, err := resolveProjection(in.ProjectionExpression, in.ExpressionAttributeNames)
	if err != nil {
		return nil, err
	}
	spec.ProjectionExpression = projection

	return spec, nil
}

// ScanSpecFromInput converts a DynamoDB scan input that uses the legacy
// ScanFilter parameter into a ScanSpec. Filters are ordered by attribute name.
func ScanSpecFromInput(in *dynamodb.ScanInput) (*ScanSpec, error) {
	if in == nil {
		return nil, ErrNilSpec
	}

	if in.FilterExpression != nil {
		return nil, ErrExpressionUnsupported
	}

	if in.ConditionalOperator == types.ConditionalOperatorOr {
		return nil, ErrConditionalOr
	}

	if err := checkReadParameters(in.ExclusiveStartKey, in.IndexName, in.Select); err != nil {
		return nil, err
	}
	if in.Segment != nil || in.TotalSegments != nil {
		return nil, fmt.Errorf("%w: Segment and TotalSegments", ErrUnsupportedInput)
	}

	filters, err := conditionsFromMap(in.ScanFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to convert scan filter: %w", err)
	}

	projection, err := resolveProjection(in.ProjectionExpression, in.ExpressionAttributeNames)
	if err != nil {
		return nil, err
	}

	return &ScanSpec{
		ScanFilters:          filters,
		ProjectionExpression: projection,
		MaxResultSize:        in.Limit,
	}, nil
}

// checkReadParameters rejects the parameters Query and Scan share that have
// no SQL translation. Select COUNT is accepted; it does not change the
// statement, only what the caller returns.
func checkReadParameters(startKey map[string]types.AttributeValue, indexName *string, sel types.Select) error {
	if len(startKey) > 0 {
		return fmt.Errorf("%w: ExclusiveStartKey", ErrUnsupportedInput)
	}
	if aws.ToString(indexName) != "" {
		return fmt.Errorf("%w: IndexName %s", ErrUnsupportedInput, aws.ToString(indexName))
	}
	if sel == types.SelectAllProjectedAttributes {
		return fmt.Errorf("%w: Select %s", ErrUnsupportedInput, sel)
	}
	return nil
}

func splitKeyConditions(spec *QuerySpec, conditions map[string]types.Condition, schema []types.KeySchemaElement) error {
	if len(conditions) == 0 {
		return nil
	}

	keyTypes := make(map[string]types.KeyType, len(schema))
	for _, elem := range schema {
		keyTypes[aws.ToString(elem.AttributeName)] = elem.KeyType
	}

	if len(keyTypes) == 0 && len(conditions) > 1 {
		return ErrKeySchemaRequired
	}

	for _, name := range sortedKeys(conditions) {
		cond, err := conditionFrom(name, conditions[name])
		if err != nil {
			return fmt.Errorf("failed to convert key condition: %w", err)
		}

		keyType, ok := keyTypes[name]
		if !ok && len(keyTypes) == 0 {
			keyType = types.KeyTypeHash
		}

		switch keyType {
		case types.KeyTypeHash:
			if cond.Operator != types.ComparisonOperatorEq {
				return &UnsupportedOperatorError{Operator: cond.Operator}
			}
			if len(cond.Values) != 1 {
				return &ValueArityError{Operator: cond.Operator, Want: 1, Got: len(cond.Values)}
			}
			spec.HashKey = &KeyAttribute{Name: name, Value: cond.Values[0]}
		case types.KeyTypeRange:
			spec.RangeKeyCondition = &cond
		default:
			return fmt.Errorf("key condition on %s: attribute is not part of the key schema", name)
		}
	}

	return nil
}

func conditionsFromMap(conditions map[string]types.Condition) ([]Condition, error) {
	if len(conditions) == 0 {
		return nil, nil
	}

	result := make([]Condition, 0, len(conditions))
	for _, name := range sortedKeys(conditions) {
		cond, err := conditionFrom(name, conditions[name])
		if err != nil {
			return nil, err
		}
		result = append(result, cond)
	}
	return result, nil
}

func conditionFrom(name string, in types.Condition) (Condition, error) {
	cond := Condition{Attribute: name, Operator: in.ComparisonOperator}
	for i, av := range in.AttributeValueList {
		v, err := ValueFromAttribute(av)
		if err != nil {
			return Condition{}, fmt.Errorf("%s value %d: %w", name, i, err)
		}
		cond.Values = append(cond.Values, v)
	}
	return cond, nil
}

func sortedKeys(m map[string]types.Condition) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var placeholder = regexp.MustCompile(`#[A-Za-z0-9_]+`)

// resolveProjection replaces #name placeholders in a projection expression
// with the attribute names they stand for. Placeholders may appear anywhere
// in a document path, as in "#0.#1" or "#0[2]".
func resolveProjection(projection *string, names map[string]string) (*string, error) {
	if projection == nil {
		return nil, nil
	}

	if strings.TrimSpace(*projection) == "" {
		// keep blank projections blank so the select assembler rejects them
		return projection, nil
	}

	parts := strings.Split(*projection, ",")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, &InvalidProjectionError{Expression: *projection}
		}

		var missing string
		part = placeholder.ReplaceAllStringFunc(part, func(token string) string {
			name, ok := names[token]
			if !ok {
				if missing == "" {
					missing = token
				}
				return token
			}
			return name
		})
		if missing != "" {
			return nil, fmt.Errorf("projection placeholder %s has no expression attribute name", missing)
		}
		parts[i] = part
	}

	resolved := strings.Join(parts, ", ")
	return &resolved, nil
}

// ValueFromAttribute converts a scalar DynamoDB attribute value into a Value.
// Numbers become Int when they fit in 32 bits, Long when they fit in 64 bits,
// and Float otherwise. Sets, lists, maps, binary and null attribute values are
// rejected with ErrUnsupportedAttributeValue.
func ValueFromAttribute(av types.AttributeValue) (Value, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return Text(v.Value), nil
	case *types.AttributeValueMemberN:
		return numberValue(v.Value)
	case *types.AttributeValueMemberBOOL:
		return Other(v.Value), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedAttributeValue, av)
	}
}

// MarshalValue marshals a Go value with attributevalue.Marshal and converts
// the result with ValueFromAttribute. Types implementing
// attributevalue.Marshaler control their own representation.
func MarshalValue(in any) (Value, error) {
	av, err := attributevalue.Marshal(in)
	if err != nil {
		return Value{}, fmt.Errorf("failed to marshal value: %w", err)
	}
	return ValueFromAttribute(av)
}

func numberValue(s string) (Value, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Int(int32(i)), nil
		}
		return Long(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return Float(f), nil
}
