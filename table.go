package dynaql

import (
	"fmt"
)

// Table translates query and scan descriptions into SQL statements against
// a single table.
type Table struct {
	TableName       string // The SQL table name used in the FROM clause
	ExistenceChecks bool   // If true, NOT_NULL and NULL translate to IS NOT NULL and IS NULL
}

// NewTable creates a new Table with default configuration.
func NewTable(tableName string) *Table {
	return &Table{TableName: tableName}
}

// MarshalQuery translates a query description into a SQL statement.
func (t *Table) MarshalQuery(in *QuerySpec) (string, error) {
	if in == nil {
		return "", ErrNilSpec
	}
	return t.Marshal(in)
}

// MarshalScan translates a scan description into a SQL statement.
func (t *Table) MarshalScan(in *ScanSpec) (string, error) {
	if in == nil {
		return "", ErrNilSpec
	}
	return t.Marshal(in)
}

// Marshal translates in into a statement of the form
//
//	SELECT <projection> FROM <table> [WHERE <conditions>] [LIMIT <n>]
//
// No statement is returned when any part fails to translate.
func (t *Table) Marshal(in Spec) (string, error) {
	if isNil(in) {
		return "", ErrNilSpec
	}

	spec := in.shape()

	selectClause, err := assembleSelect(spec.ProjectionExpression)
	if err != nil {
		return "", fmt.Errorf("failed to build select clause: %w", err)
	}

	where, err := assembleWhere(spec.HashKey, spec.RangeKeyCondition, spec.QueryFilters, t.ExistenceChecks)
	if err != nil {
		return "", fmt.Errorf("failed to build where clause: %w", err)
	}

	sql := selectClause + " FROM " + t.TableName

	if where != nil {
		sql += " WHERE " + *where
	}

	if limit := assembleLimit(spec.MaxResultSize); limit != nil {
		sql += " " + *limit
	}

	return sql, nil
}

// QuerySQL translates a query description against tableName.
func QuerySQL(in *QuerySpec, tableName string) (string, error) {
	return NewTable(tableName).MarshalQuery(in)
}

// ScanSQL translates a scan description against tableName.
func ScanSQL(in *ScanSpec, tableName string) (string, error) {
	return NewTable(tableName).MarshalScan(in)
}

func isNil(in Spec) bool {
	if in == nil {
		return true
	}
	switch s := in.(type) {
	case *QuerySpec:
		return s == nil
	case *ScanSpec:
		return s == nil
	}
	return false
}
