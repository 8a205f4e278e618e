package blob

import (
	"fmt"

	"github.com/ctse-tools/nodebin/errs"
)

// Row is one ingested source row, field name to raw value.
// Rows are not modified by the encoder.
type Row map[string]string

// Value returns the value of field, or errs.ErrMissingField when the row has no such field.
func (r Row) Value(field string) (string, error) {
	v, ok := r[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrMissingField, field)
	}

	return v, nil
}

// Lookup returns the value of field and whether it exists.
func (r Row) Lookup(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}
