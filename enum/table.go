// Package enum maps category labels to the dense integer codes stored in node records.
//
// A Table is an ordered label sequence: the code of a label is its zero-based
// position. The order is part of the binary format, so reordering or inserting a
// label is a breaking format change. Tables are immutable once built.
package enum

import (
	"fmt"
	"slices"

	"github.com/ctse-tools/nodebin/errs"
)

// Sentinel is the code written for a label that is not in the table.
// It is only used by signed one-byte fields; on the wire it reads 0xFF.
const Sentinel int8 = -1

// Table is an ordered, immutable list of category labels.
type Table struct {
	name   string
	labels []string
	index  map[string]int
}

// NewTable builds a table from labels in encoding order.
//
// Duplicate labels are rejected since two positions for one label would make the
// encoding ambiguous.
func NewTable(name string, labels ...string) (*Table, error) {
	t := &Table{
		name:   name,
		labels: slices.Clone(labels),
		index:  make(map[string]int, len(labels)),
	}

	for i, label := range labels {
		if _, dup := t.index[label]; dup {
			return nil, fmt.Errorf("enum table %q: duplicate label %q", name, label)
		}
		t.index[label] = i
	}

	return t, nil
}

// Name returns the category name of the table.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of labels.
func (t *Table) Len() int {
	return len(t.labels)
}

// Labels returns a copy of the labels in encoding order.
func (t *Table) Labels() []string {
	return slices.Clone(t.labels)
}

// Label returns the label for a code, or false if the code is out of range.
func (t *Table) Label(code int) (string, bool) {
	if code < 0 || code >= len(t.labels) {
		return "", false
	}

	return t.labels[code], true
}

// Lookup returns the code of label. Matching is exact and case-sensitive.
// An unknown label returns errs.ErrUnknownLabel.
func (t *Table) Lookup(label string) (int, error) {
	code, ok := t.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s", errs.ErrUnknownLabel, label, t.name)
	}

	return code, nil
}

// Resolve returns the code of label as a signed byte, or Sentinel when the label
// is unknown. Tables with more than 127 labels cannot be resolved this way.
func (t *Table) Resolve(label string) int8 {
	code, ok := t.index[label]
	if !ok || code > 127 {
		return Sentinel
	}

	return int8(code) //nolint: gosec
}
