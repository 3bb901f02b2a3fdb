package dynaql

import (
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestRenderCondition(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{"equal", Name("attr0").Equal(1), "attr0 = 1"},
		{"between", Name("attr1").Between(1, 2), "attr1 BETWEEN 1 AND 2"},
		{"greater than equal", Name("attr2").GreaterThanEqual(1), "attr2 >= 1"},
		{"less than equal", Name("attr3").LessThanEqual(1), "attr3 <= 1"},
		{"less than", Name("attr4").LessThan(1), "attr4 < 1"},
		{"greater than", Name("attr5").GreaterThan(1), "attr5 > 1"},
		{"not equal", Name("attr6").NotEqual(1), "attr6 != 1"},
		{"text", Name("attr7").Equal("12"), "attr7 = '12'"},
		{"text between", Name("attr8").Between("1", "10"), "attr8 BETWEEN '1' AND '10'"},
		{"float", Name("attr9").LessThan(12.2), "attr9 < 12.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderCondition(tt.cond.Attribute, tt.cond.Operator, tt.cond.Values, false)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRenderConditionSymbols(t *testing.T) {
	// every supported operator renders its symbol and exactly its arity of values
	for op, symbol := range symbols {
		values := []Value{Long(7)}
		if op == types.ComparisonOperatorBetween {
			values = []Value{Long(7), Long(7)}
		}

		got, err := renderCondition("n", op, values, false)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", op, err)
		}
		if !strings.Contains(got, " "+symbol+" ") {
			t.Errorf("%s: expected symbol %q in %q", op, symbol, got)
		}
		if count := strings.Count(got, "7"); count != len(values) {
			t.Errorf("%s: expected %d rendered values in %q, got %d", op, len(values), got, count)
		}
	}
}

func TestRenderConditionExistence(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		cond := Name("deleted_at").AttributeExists()
		got, err := renderCondition(cond.Attribute, cond.Operator, cond.Values, true)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != "deleted_at IS NOT NULL" {
			t.Errorf("Expected 'deleted_at IS NOT NULL', got %q", got)
		}

		cond = Name("deleted_at").AttributeNotExists()
		got, err = renderCondition(cond.Attribute, cond.Operator, cond.Values, true)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != "deleted_at IS NULL" {
			t.Errorf("Expected 'deleted_at IS NULL', got %q", got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		cond := Name("deleted_at").AttributeExists()
		_, err := renderCondition(cond.Attribute, cond.Operator, cond.Values, false)
		var opErr *UnsupportedOperatorError
		if !errors.As(err, &opErr) {
			t.Errorf("Expected UnsupportedOperatorError, got %v", err)
		}
	})
}

func TestRenderConditionErrors(t *testing.T) {
	t.Run("unsupported operator", func(t *testing.T) {
		cond := Name("tags").Contains("red")
		_, err := renderCondition(cond.Attribute, cond.Operator, cond.Values, false)
		var opErr *UnsupportedOperatorError
		if !errors.As(err, &opErr) {
			t.Fatalf("Expected UnsupportedOperatorError, got %v", err)
		}
		if opErr.Operator != types.ComparisonOperatorContains {
			t.Errorf("Expected CONTAINS in error, got %s", opErr.Operator)
		}
	})

	t.Run("begins with", func(t *testing.T) {
		cond := Name("sk").BeginsWith("order#")
		_, err := renderCondition(cond.Attribute, cond.Operator, cond.Values, true)
		var opErr *UnsupportedOperatorError
		if !errors.As(err, &opErr) {
			t.Errorf("Expected UnsupportedOperatorError, got %v", err)
		}
	})

	t.Run("between with one value", func(t *testing.T) {
		_, err := renderCondition("n", types.ComparisonOperatorBetween, []Value{Int(1)}, false)
		var arityErr *ValueArityError
		if !errors.As(err, &arityErr) {
			t.Fatalf("Expected ValueArityError, got %v", err)
		}
		if arityErr.Want != 2 || arityErr.Got != 1 {
			t.Errorf("Expected want 2 got 1, got want %d got %d", arityErr.Want, arityErr.Got)
		}
	})

	t.Run("equal with two values", func(t *testing.T) {
		_, err := renderCondition("n", types.ComparisonOperatorEq, []Value{Int(1), Int(2)}, false)
		var arityErr *ValueArityError
		if !errors.As(err, &arityErr) {
			t.Errorf("Expected ValueArityError, got %v", err)
		}
	})

	t.Run("equal with no values", func(t *testing.T) {
		_, err := renderCondition("n", types.ComparisonOperatorEq, nil, false)
		var arityErr *ValueArityError
		if !errors.As(err, &arityErr) {
			t.Errorf("Expected ValueArityError, got %v", err)
		}
	})

	t.Run("existence with a value", func(t *testing.T) {
		_, err := renderCondition("n", types.ComparisonOperatorNull, []Value{Int(1)}, true)
		var arityErr *ValueArityError
		if !errors.As(err, &arityErr) {
			t.Errorf("Expected ValueArityError, got %v", err)
		}
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, err := renderCondition("", types.ComparisonOperatorEq, []Value{Int(1)}, false)
		if !errors.Is(err, ErrMissingAttributeName) {
			t.Errorf("Expected ErrMissingAttributeName, got %v", err)
		}
	})
}

func TestRenderFilters(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got, err := renderFilters(nil, false)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("Expected empty result, got %q", got)
		}
	})

	t.Run("single", func(t *testing.T) {
		cond := Name("attr1").Between(1, 2)
		want, _ := renderCondition(cond.Attribute, cond.Operator, cond.Values, false)

		got, err := renderFilters([]Condition{cond}, false)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("joined with and in order", func(t *testing.T) {
		tests := []struct {
			filters []Condition
			want    string
		}{
			{
				[]Condition{Name("attr0").Equal(1), Name("attr1").NotEqual(2)},
				"attr0 = 1 AND attr1 != 2",
			},
			{
				[]Condition{Name("attr1").Between(1, 2), Name("attr1").Equal(2)},
				"attr1 BETWEEN 1 AND 2 AND attr1 = 2",
			},
			{
				[]Condition{Name("attr2").GreaterThanEqual(1), Name("attr2").LessThanEqual(2)},
				"attr2 >= 1 AND attr2 <= 2",
			},
			{
				[]Condition{Name("attr3").GreaterThan(1), Name("attr2").LessThan(2), Name("attr4").Equal("x")},
				"attr3 > 1 AND attr2 < 2 AND attr4 = 'x'",
			},
		}

		for _, tt := range tests {
			got, err := renderFilters(tt.filters, false)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		}
	})

	t.Run("error stops rendering", func(t *testing.T) {
		got, err := renderFilters([]Condition{Name("a").Equal(1), Name("b").Contains(2)}, false)
		if err == nil {
			t.Fatal("Expected error")
		}
		if got != "" {
			t.Errorf("Expected no partial output, got %q", got)
		}
	})
}

func TestKey(t *testing.T) {
	key := Key("PrimaryKey", "1234")
	cond := key.condition()
	if cond.Operator != types.ComparisonOperatorEq {
		t.Errorf("Expected EQ operator, got %s", cond.Operator)
	}
	if len(cond.Values) != 1 || cond.Values[0].Literal() != "'1234'" {
		t.Errorf("Expected single value '1234', got %v", cond.Values)
	}
}
