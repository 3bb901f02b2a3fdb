package sqlexec

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/nisimpson/dynaql"
	"github.com/sirupsen/logrus"
)

// ErrMissingTableName is returned when an input has no table name.
var ErrMissingTableName = errors.New("table name is required")

// API defines the operations shared by Client and *dynamodb.Client.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Ensure both clients implement API
var (
	_ API = (*Client)(nil)
	_ API = (*dynamodb.Client)(nil)
)

// Options configures a Client.
type Options struct {
	// KeySchemas holds the key schema of each table by name. A table without
	// a schema can only be queried with a single key condition.
	KeySchemas map[string][]types.KeySchemaElement

	// ExistenceChecks enables translation of NOT_NULL and NULL conditions.
	ExistenceChecks bool

	// Logger receives the translated statements at debug level. The default
	// logger discards everything.
	Logger logrus.FieldLogger
}

// Client answers DynamoDB Query and Scan requests from a SQL database and
// stores items written with PutItem.
type Client struct {
	db      *sql.DB
	options Options
}

// New creates a Client that executes statements against db.
func New(db *sql.DB, optFns ...func(*Options)) *Client {
	options := Options{}
	for _, fn := range optFns {
		fn(&options)
	}

	if options.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		options.Logger = logger
	}

	return &Client{db: db, options: options}
}

// Query translates params and returns the matching rows as items. With
// Select COUNT only the counts are set. Inputs that page, read an index or
// reverse the key order are rejected with dynaql.ErrUnsupportedInput. The
// optFns are accepted for signature compatibility and ignored.
func (c *Client) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTableName
	}

	tableName := aws.ToString(params.TableName)

	spec, err := dynaql.QuerySpecFromInput(params, c.options.KeySchemas[tableName])
	if err != nil {
		return nil, fmt.Errorf("failed to convert query input: %w", err)
	}

	items, err := c.run(ctx, tableName, spec)
	if err != nil {
		return nil, err
	}

	out := &dynamodb.QueryOutput{
		Count:        int32(len(items)),
		ScannedCount: int32(len(items)),
	}
	if params.Select != types.SelectCount {
		out.Items = items
	}
	return out, nil
}

// Scan translates params and returns the matching rows as items. With
// Select COUNT only the counts are set. Paged, index and parallel scans are
// rejected with dynaql.ErrUnsupportedInput. The optFns are accepted for
// signature compatibility and ignored.
func (c *Client) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if params == nil || aws.ToString(params.TableName) == "" {
		return nil, ErrMissingTableName
	}

	tableName := aws.ToString(params.TableName)

	spec, err := dynaql.ScanSpecFromInput(params)
	if err != nil {
		return nil, fmt.Errorf("failed to convert scan input: %w", err)
	}

	items, err := c.run(ctx, tableName, spec)
	if err != nil {
		return nil, err
	}

	out := &dynamodb.ScanOutput{
		Count:        int32(len(items)),
		ScannedCount: int32(len(items)),
	}
	if params.Select != types.SelectCount {
		out.Items = items
	}
	return out, nil
}

func (c *Client) run(ctx context.Context, tableName string, spec dynaql.Spec) ([]map[string]types.AttributeValue, error) {
	table := dynaql.NewTable(tableName)
	table.ExistenceChecks = c.options.ExistenceChecks

	statement, err := table.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to translate input: %w", err)
	}

	log := c.options.Logger.WithField("table", tableName)
	log.WithField("sql", statement).Debug("executing translated statement")

	rows, err := c.db.QueryContext(ctx, statement)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}
	defer rows.Close()

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	log.WithField("count", len(items)).Debug("statement returned items")
	return items, nil
}
