// Package sqlexec provides a DynamoDB-shaped client that answers Query and
// Scan requests from a SQL database.
//
// Inputs are translated with the dynaql package, executed through
// database/sql, and each result row is returned as a DynamoDB item whose
// attributes are the row's columns.
//
// # Basic Usage
//
//	db, err := sql.Open("sqlite3", "file:orders.db")
//	client := sqlexec.New(db, func(o *sqlexec.Options) {
//	    o.KeySchemas = map[string][]types.KeySchemaElement{
//	        "orders": {
//	            {AttributeName: aws.String("customer_id"), KeyType: types.KeyTypeHash},
//	            {AttributeName: aws.String("created"), KeyType: types.KeyTypeRange},
//	        },
//	    }
//	})
//
//	// the same call works against a *dynamodb.Client
//	var api sqlexec.API = client
//	out, err := api.Query(ctx, &dynamodb.QueryInput{
//	    TableName: aws.String("orders"),
//	    KeyConditions: map[string]types.Condition{
//	        "customer_id": {
//	            ComparisonOperator: types.ComparisonOperatorEq,
//	            AttributeValueList: []types.AttributeValue{&types.AttributeValueMemberS{Value: "C1"}},
//	        },
//	    },
//	})
//
// Items can be loaded with PutItem, which inserts one row per item:
//
//	item, err := attributevalue.MarshalMap(order)
//	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
//	    TableName: aws.String("orders"),
//	    Item:      item,
//	})
//
// Only inputs using the legacy KeyConditions, QueryFilter and ScanFilter
// parameters can be translated; see dynaql.QuerySpecFromInput.
package sqlexec
