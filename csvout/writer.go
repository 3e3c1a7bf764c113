/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/suparena/sdbsplit/store"
)

// Writer serializes records to delimited text, one record per row. When
// header fields are configured, each row is the record key followed by the
// named attributes in header order (missing attributes become empty cells)
// under an initial header row. Without headers, each row is the key followed
// by name=value cells for every attribute in name order.
type Writer struct {
	csv     *csv.Writer
	headers []string
	wrote   bool
}

// NewWriter creates a Writer on w. headers may be nil.
func NewWriter(w io.Writer, headers []string) *Writer {
	return &Writer{csv: csv.NewWriter(w), headers: headers}
}

// Write appends one record row, emitting the header row first if configured.
func (w *Writer) Write(rec *store.Record) error {
	if !w.wrote && len(w.headers) > 0 {
		if err := w.csv.Write(append([]string{"key"}, w.headers...)); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}
	w.wrote = true

	row := []string{rec.Key}
	if len(w.headers) > 0 {
		for _, h := range w.headers {
			row = append(row, rec.Attributes[h])
		}
	} else {
		names := make([]string, 0, len(rec.Attributes))
		for name := range rec.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			row = append(row, name+"="+rec.Attributes[name])
		}
	}

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write record %s: %w", rec.Key, err)
	}
	return nil
}

// Close flushes buffered rows. The underlying writer is not closed; the
// caller owns it.
func (w *Writer) Close() error {
	w.csv.Flush()
	return w.csv.Error()
}
