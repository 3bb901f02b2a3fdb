package sqlexec

import (
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// scanItems converts every row into an item keyed by column name. Column
// values are marshaled with attributevalue.Marshal, so SQL NULL becomes a
// NULL attribute, text becomes S, numbers become N and blobs become B.
func scanItems(rows *sql.Rows) ([]map[string]types.AttributeValue, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	items := []map[string]types.AttributeValue{}

	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		item, err := marshalRow(columns, values)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return items, nil
}

func marshalRow(columns []string, values []any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(columns))
	for i, column := range columns {
		av, err := attributevalue.Marshal(values[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal column %s: %w", column, err)
		}
		item[column] = av
	}
	return item, nil
}
