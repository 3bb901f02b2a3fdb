package dynaql

// Spec is a read query description that can be translated to SQL. It is
// implemented by *QuerySpec and *ScanSpec.
type Spec interface {
	// shape reduces the description to the query form; a scan has no keys.
	shape() QuerySpec
}

// QuerySpec describes a key-based lookup: an equality condition on the hash
// key, an optional range key condition and any number of filters.
type QuerySpec struct {
	HashKey              *KeyAttribute // Optional equality condition on the hash key
	RangeKeyCondition    *Condition    // Optional condition on the range key
	QueryFilters         []Condition   // Filters applied after key selection, in order
	ProjectionExpression *string       // Optional comma separated attributes; nil selects all
	MaxResultSize        *int32        // Optional cap on the number of results
}

func (q *QuerySpec) shape() QuerySpec { return *q }

// ScanSpec describes a filter-only read over a table.
type ScanSpec struct {
	ScanFilters          []Condition // Filters applied to every item, in order
	ProjectionExpression *string     // Optional comma separated attributes; nil selects all
	MaxResultSize        *int32      // Optional cap on the number of results
}

func (s *ScanSpec) shape() QuerySpec {
	return QuerySpec{
		QueryFilters:         s.ScanFilters,
		ProjectionExpression: s.ProjectionExpression,
		MaxResultSize:        s.MaxResultSize,
	}
}
