package sqlexec

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nisimpson/dynaql"
)

// PutItem inserts params.Item as a row of params.TableName, one column per
// attribute. Attribute names are used as column names without quoting and
// values are bound with "?" placeholders. Only scalar and NULL attributes
// can be stored. The optFns are accepted for signature compatibility and
// ignored.
func (c *Client) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTableName
	}

	tableName := aws.ToString(params.TableName)
	if len(params.Item) == 0 {
		return nil, fmt.Errorf("item for %s has no attributes", tableName)
	}

	columns := make([]string, 0, len(params.Item))
	for name := range params.Item {
		columns = append(columns, name)
	}
	slices.Sort(columns)

	args := make([]any, len(columns))
	for i, column := range columns {
		arg, err := columnValue(params.Item[column])
		if err != nil {
			return nil, fmt.Errorf("failed to convert attribute %s: %w", column, err)
		}
		args[i] = arg
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	statement := "INSERT INTO " + tableName + " (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"

	c.options.Logger.WithField("table", tableName).WithField("sql", statement).Debug("inserting item")

	if _, err := c.db.ExecContext(ctx, statement, args...); err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	return &dynamodb.PutItemOutput{}, nil
}

// columnValue converts an attribute value to a database/sql argument.
// Integral numbers become int64, other numbers float64.
func columnValue(av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		if i, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", v.Value, err)
		}
		return f, nil
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberB:
		return v.Value, nil
	case *types.AttributeValueMemberNULL:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %T", dynaql.ErrUnsupportedAttributeValue, av)
	}
}
