// package store implements flat-file record storage for the task tracker.
//
// A Table holds an ordered collection of records backed by a single CSV file
// with a fixed header row. The whole file is read into memory when the table
// is opened and rewritten wholesale after every mutation, so the file on disk
// always reflects the last completed operation. There is exactly one writer;
// running two instances against the same files is unsupported.
package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/taskman/internal/shared"
)

// Codec describes how a record type maps onto CSV rows.
type Codec[T any] struct {
	Header []string                  // Header is the fixed first row of the file
	Encode func(T) []string          // Encode serializes a record to one row
	Decode func([]string) (T, error) // Decode parses one row into a record
}

// Table is an ordered collection of records backed by a CSV file.
type Table[T any] struct {
	path   string
	codec  Codec[T]
	rows   []T
	logger *log.Logger
}

// Open loads the table at path into memory. A missing file is created with
// just the header row and yields an empty table. Malformed content (wrong
// header, short rows, unparseable cells) fails with [shared.ErrStorageRead].
func Open[T any](path string, codec Codec[T], logger *log.Logger) (*Table[T], error) {
	t := &Table[T]{path: path, codec: codec, logger: logger}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := t.write(nil); err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Debug("created empty table", "path", path)
		}
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStorageRead, path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(codec.Header)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStorageRead, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", shared.ErrStorageRead, path)
	}

	for i, col := range codec.Header {
		if records[0][i] != col {
			return nil, fmt.Errorf("%w: %s: unexpected header %q", shared.ErrStorageRead, path, records[0][i])
		}
	}

	rows := make([]T, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := codec.Decode(record)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", shared.ErrStorageRead, path, i+2, err)
		}
		rows = append(rows, row)
	}

	t.rows = rows
	return t, nil
}

// write rewrites the whole file from the given rows: header first, then every
// record in order. The in-memory state is untouched on failure.
func (t *Table[T]) write(rows []T) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(t.codec.Header); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrStorageWrite, t.path, err)
	}
	for _, row := range rows {
		if err := writer.Write(t.codec.Encode(row)); err != nil {
			return fmt.Errorf("%w: %s: %v", shared.ErrStorageWrite, t.path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrStorageWrite, t.path, err)
	}

	if err := os.WriteFile(t.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrStorageWrite, t.path, err)
	}

	return nil
}

// Path returns the file path backing the table.
func (t *Table[T]) Path() string { return t.path }

// Len returns the number of records currently held.
func (t *Table[T]) Len() int { return len(t.rows) }

// All returns a copy of every record in insertion order.
func (t *Table[T]) All() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Filter returns the records matching pred, preserving insertion order.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	var out []T
	for _, row := range t.rows {
		if pred(row) {
			out = append(out, row)
		}
	}
	return out
}

// First returns the first record matching pred.
func (t *Table[T]) First(pred func(T) bool) (T, bool) {
	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record at the end of the table and persists. On write
// failure the table keeps its previous contents.
func (t *Table[T]) Append(record T) error {
	next := make([]T, len(t.rows), len(t.rows)+1)
	copy(next, t.rows)
	next = append(next, record)

	if err := t.write(next); err != nil {
		return err
	}

	t.rows = next
	return nil
}

// UpdateFirst applies fn to the first record matching pred and persists.
// Reports whether a record matched; zero matches is not an error. A failure
// returned by fn or by the write leaves the table unchanged.
func (t *Table[T]) UpdateFirst(pred func(T) bool, fn func(*T) error) (T, bool, error) {
	var zero T
	for i, row := range t.rows {
		if !pred(row) {
			continue
		}

		next := make([]T, len(t.rows))
		copy(next, t.rows)
		if err := fn(&next[i]); err != nil {
			return zero, true, err
		}
		if err := t.write(next); err != nil {
			return zero, true, err
		}

		t.rows = next
		return next[i], true, nil
	}
	return zero, false, nil
}

// RemoveAll deletes every record matching pred and persists, returning the
// number removed. Zero matches leaves the file untouched and is not an error.
func (t *Table[T]) RemoveAll(pred func(T) bool) (int, error) {
	next := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if !pred(row) {
			next = append(next, row)
		}
	}

	removed := len(t.rows) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := t.write(next); err != nil {
		return 0, err
	}

	t.rows = next
	return removed, nil
}
