// Package csvrow reads delimited spreadsheet exports into blob rows.
package csvrow

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/ctse-tools/nodebin/blob"
	"github.com/ctse-tools/nodebin/errs"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses r as a header row followed by data rows.
//
// The header names the fields of every row. A leading UTF-8 byte order mark is
// skipped, blank lines are ignored and quoting follows RFC 4180. Every row must
// have as many fields as the header; a short or long row, or a repeated header
// name, returns errs.ErrMalformedRow. Input without a header yields no rows.
func Read(r io.Reader, delimiter rune) ([]blob.Row, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = delimiter
	cr.FieldsPerRecord = 0 // the header fixes the width
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: header repeats column %q", errs.ErrMalformedRow, name)
		}
		seen[name] = struct{}{}
		columns[i] = name
	}

	var rows []blob.Row
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrap(err)
		}

		row := make(blob.Row, len(columns))
		for i, value := range record {
			row[columns[i]] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func wrap(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: line %d: %w", errs.ErrMalformedRow, perr.Line, perr.Err)
	}

	return fmt.Errorf("%w: %w", errs.ErrMalformedRow, err)
}
