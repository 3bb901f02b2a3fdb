package specdoc

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nisimpson/dynaql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	spec, err := Parse([]byte(`{
		"hashKey": {"name": "PrimaryKey", "value": "1234"},
		"rangeKey": {"name": "Sort", "operator": "between", "values": [1, 10]},
		"filters": [
			{"name": "Price", "operator": "GT", "values": [12.5]},
			{"name": "Deleted", "operator": "NULL"}
		],
		"projection": "PrimaryKey, OtherKey",
		"limit": 10
	}`))
	require.NoError(t, err)

	query, ok := spec.(*dynaql.QuerySpec)
	require.True(t, ok, "expected *dynaql.QuerySpec, got %T", spec)

	assert.Equal(t, &dynaql.KeyAttribute{Name: "PrimaryKey", Value: dynaql.Text("1234")}, query.HashKey)
	assert.Equal(t, &dynaql.Condition{
		Attribute: "Sort",
		Operator:  types.ComparisonOperatorBetween,
		Values:    []dynaql.Value{dynaql.Int(1), dynaql.Int(10)},
	}, query.RangeKeyCondition)
	assert.Equal(t, []dynaql.Condition{
		{Attribute: "Price", Operator: types.ComparisonOperatorGt, Values: []dynaql.Value{dynaql.Float(12.5)}},
		{Attribute: "Deleted", Operator: types.ComparisonOperatorNull},
	}, query.QueryFilters)
	assert.Equal(t, aws.String("PrimaryKey, OtherKey"), query.ProjectionExpression)
	assert.Equal(t, aws.Int32(10), query.MaxResultSize)
}

func TestParseScan(t *testing.T) {
	spec, err := Parse([]byte(`{"filters": [{"name": "Price", "operator": "le", "values": [12]}]}`))
	require.NoError(t, err)

	scan, ok := spec.(*dynaql.ScanSpec)
	require.True(t, ok, "expected *dynaql.ScanSpec, got %T", spec)
	assert.Equal(t, []dynaql.Condition{
		{Attribute: "Price", Operator: types.ComparisonOperatorLe, Values: []dynaql.Value{dynaql.Int(12)}},
	}, scan.ScanFilters)
	assert.Nil(t, scan.ProjectionExpression)
	assert.Nil(t, scan.MaxResultSize)

	spec, err = Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, &dynaql.ScanSpec{}, spec)
}

func TestParseValueTyping(t *testing.T) {
	tests := []struct {
		name string
		json string
		want dynaql.Value
	}{
		{"string", `"12"`, dynaql.Text("12")},
		{"integer", `12`, dynaql.Int(12)},
		{"negative integer", `-7`, dynaql.Int(-7)},
		{"long", `4294967296`, dynaql.Long(4294967296)},
		{"float", `12.2`, dynaql.Float(12.2)},
		{"exponent", `1e3`, dynaql.Float(1000)},
		{"true", `true`, dynaql.Other(true)},
		{"false", `false`, dynaql.Other(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Parse([]byte(`{"hashKey": {"name": "k", "value": ` + tt.json + `}}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.(*dynaql.QuerySpec).HashKey.Value)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"hashKey": `},
		{"not an object", `[1, 2]`},
		{"null value", `{"hashKey": {"name": "k", "value": null}}`},
		{"object value", `{"hashKey": {"name": "k", "value": {"S": "x"}}}`},
		{"array value", `{"rangeKey": {"name": "k", "operator": "EQ", "values": [[1]]}}`},
		{"hash key not an object", `{"hashKey": "k"}`},
		{"filters not an array", `{"filters": {"name": "k"}}`},
		{"filter not an object", `{"filters": ["k"]}`},
		{"values not an array", `{"filters": [{"name": "k", "operator": "EQ", "values": 1}]}`},
		{"projection not a string", `{"projection": ["a"]}`},
		{"limit not a number", `{"limit": "10"}`},
		{"fractional limit", `{"limit": 1.5}`},
		{"limit overflow", `{"limit": 4294967296}`},
		{"numeric hash key name", `{"hashKey": {"name": 123, "value": "a"}}`},
		{"boolean range key name", `{"rangeKey": {"name": true, "operator": "EQ", "values": [1]}}`},
		{"null filter name", `{"filters": [{"name": null, "operator": "EQ", "values": [1]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestParseTranslates(t *testing.T) {
	spec, err := Parse([]byte(`{
		"hashKey": {"name": "PrimaryKey", "value": 1234},
		"projection": "PrimaryKey, OtherKey"
	}`))
	require.NoError(t, err)

	sql, err := dynaql.NewTable("TestTable").Marshal(spec)
	require.NoError(t, err)
	assert.Equal(t, "SELECT PrimaryKey, OtherKey FROM TestTable WHERE PrimaryKey = 1234", sql)
}

func TestParseMissingName(t *testing.T) {
	spec, err := Parse([]byte(`{"filters": [{"operator": "EQ", "values": [1]}]}`))
	require.NoError(t, err)

	_, err = dynaql.NewTable("TestTable").Marshal(spec)
	assert.ErrorIs(t, err, dynaql.ErrMissingAttributeName)
}
