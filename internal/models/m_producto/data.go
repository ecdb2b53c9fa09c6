package m_producto

import (
	"time"

	"cloud.google.com/go/spanner"
)

// UpsertMutation builds a spanner.InsertOrUpdate mutation for a product
// using a map of values. Expected keys are the column names declared in
// fields.go. The id column is never included: it is sequence-backed and
// assigned by the database on first insert, then left untouched on replace.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// BuildUpsertMap prepares the canonical fields for an insert-or-replace.
// The caller supplies created_at and updated_at; on replace Spanner
// overwrites created_at too, matching INSERT OR REPLACE semantics.
func BuildUpsertMap(nameKey, name string, wholesale, retail float64,
	createdAt, updatedAt time.Time) map[string]interface{} {

	return map[string]interface{}{
		ColNameKey:        nameKey,
		ColName:           name,
		ColWholesalePrice: wholesale,
		ColRetailPrice:    retail,
		ColCreatedAt:      createdAt,
		ColUpdatedAt:      updatedAt,
	}
}
