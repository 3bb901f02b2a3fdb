// Package dynaql translates DynamoDB-style read query descriptions into SQL
// SELECT statements, so code written against the DynamoDB query and scan
// shape can be pointed at a SQL engine that exposes the same data.
//
// # Key Concepts
//
// A query description is either a QuerySpec (hash key equality, optional
// range key condition, filters) or a ScanSpec (filters only). Both carry an
// optional projection expression and an optional result cap. Conditions use
// the DynamoDB comparison operators from the AWS SDK for Go v2:
//
//	| operator | SQL         |
//	| ======== | =========== |
//	| EQ       | =           |
//	| NE       | !=          |
//	| LT       | <           |
//	| LE       | <=          |
//	| GT       | >           |
//	| GE       | >=          |
//	| BETWEEN  | BETWEEN     |
//	| NOT_NULL | IS NOT NULL |
//	| NULL     | IS NULL     |
//
// NOT_NULL and NULL are only translated when Table.ExistenceChecks is set.
// Every other operator fails with an *UnsupportedOperatorError.
//
// # Basic Usage
//
//	table := dynaql.NewTable("orders")
//	created := dynaql.Name("created").Between(100, 200)
//	sql, err := table.MarshalQuery(&dynaql.QuerySpec{
//	    HashKey:           dynaql.Key("customer_id", "C1"),
//	    RangeKeyCondition: &created,
//	    QueryFilters:      []dynaql.Condition{dynaql.Name("status").Equal("open")},
//	    MaxResultSize:     aws.Int32(10),
//	})
//	// SELECT * FROM orders WHERE customer_id = 'C1', status = 'open', created BETWEEN 100 AND 200 LIMIT 10
//
// The hash key, the filter collection and the range key condition are joined
// with ", " in that order, while filters among themselves are joined with
// AND. Statements with more than one of those components are therefore not
// standard SQL boolean composition; callers executing them must use a
// dialect that accepts the form, or keep to a single component.
//
// # Literals
//
// Text values are wrapped in single quotes without escaping embedded quotes,
// and numbers are written unquoted. Statements are built by interpolation, not
// parameter binding, so values must come from trusted sources.
//
// # Legacy Inputs
//
// QuerySpecFromInput and ScanSpecFromInput convert *dynamodb.QueryInput and
// *dynamodb.ScanInput values that use the KeyConditions, QueryFilter and
// ScanFilter parameters. The sqlexec subpackage builds on them to provide a
// DynamoDB-shaped client backed by database/sql.
package dynaql
