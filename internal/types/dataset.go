package types

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Dataset is an ordered collection of named, equal-length string columns.
// Column order is significant: it is the order the normalization pipeline
// produces and the order WriteCSV and MarshalJSON emit again. Cells stay
// strings because the provider freely mixes blanks, integers and decimals
// in one column; numeric interpretation is the caller's business.
type Dataset struct {
	cols []column
	rows int
}

type column struct {
	name   string
	values []string
}

// NewDataset returns an empty dataset with no columns and no rows.
func NewDataset() *Dataset {
	return &Dataset{}
}

func (d *Dataset) index(name string) int {
	for i, c := range d.cols {
		if c.name == name {
			return i
		}
	}
	return -1
}

// AddColumn appends a named column. The first column added fixes the row
// count; later columns must match it.
func (d *Dataset) AddColumn(name string, values []string) error {
	if d.index(name) >= 0 {
		return fmt.Errorf("column %q already exists", name)
	}
	if len(d.cols) > 0 && len(values) != d.rows {
		return fmt.Errorf("column %q has %d values, dataset has %d rows", name, len(values), d.rows)
	}
	if len(d.cols) == 0 {
		d.rows = len(values)
	}
	d.cols = append(d.cols, column{name: name, values: values})
	return nil
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.name
	}
	return names
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return d.rows
}

// Width returns the number of columns.
func (d *Dataset) Width() int {
	return len(d.cols)
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.index(name) >= 0
}

// Column returns the values of the named column in row order.
func (d *Dataset) Column(name string) ([]string, bool) {
	if i := d.index(name); i >= 0 {
		return d.cols[i].values, true
	}
	return nil, false
}

// Row returns row i as cells in column order.
func (d *Dataset) Row(i int) []string {
	row := make([]string, len(d.cols))
	for j, c := range d.cols {
		row[j] = c.values[i]
	}
	return row
}

// Rename changes a column's name in place. Renaming onto an existing name
// is refused.
func (d *Dataset) Rename(oldName, newName string) error {
	i := d.index(oldName)
	if i < 0 {
		return fmt.Errorf("no column %q", oldName)
	}
	if oldName == newName {
		return nil
	}
	if d.index(newName) >= 0 {
		return fmt.Errorf("column %q already exists", newName)
	}
	d.cols[i].name = newName
	return nil
}

// RenameAll rewrites every column name through f, keeping order.
func (d *Dataset) RenameAll(f func(string) string) {
	for i := range d.cols {
		d.cols[i].name = f(d.cols[i].name)
	}
}

// DropColumn removes the named column, reporting whether it was present.
func (d *Dataset) DropColumn(name string) bool {
	i := d.index(name)
	if i < 0 {
		return false
	}
	d.cols = append(d.cols[:i], d.cols[i+1:]...)
	return true
}

// Select returns a new dataset holding exactly the named columns in the
// given order. The result shares cell storage with the receiver.
func (d *Dataset) Select(names ...string) (*Dataset, error) {
	out := &Dataset{cols: make([]column, 0, len(names))}
	for _, name := range names {
		i := d.index(name)
		if i < 0 {
			return nil, fmt.Errorf("no column %q", name)
		}
		out.cols = append(out.cols, d.cols[i])
	}
	if len(out.cols) > 0 {
		out.rows = d.rows
	}
	return out, nil
}

// FilterRows returns a new dataset keeping only the rows for which keep
// returns true.
func (d *Dataset) FilterRows(keep func(row int) bool) *Dataset {
	kept := make([]int, 0, d.rows)
	for i := 0; i < d.rows; i++ {
		if keep(i) {
			kept = append(kept, i)
		}
	}
	out := &Dataset{rows: len(kept), cols: make([]column, len(d.cols))}
	for j, c := range d.cols {
		values := make([]string, len(kept))
		for k, i := range kept {
			values[k] = c.values[i]
		}
		out.cols[j] = column{name: c.name, values: values}
	}
	return out
}

// Equal reports whether both datasets have identical column names, column
// order and cell values.
func (d *Dataset) Equal(other *Dataset) bool {
	if other == nil || len(d.cols) != len(other.cols) || d.rows != other.rows {
		return false
	}
	for i, c := range d.cols {
		oc := other.cols[i]
		if c.name != oc.name {
			return false
		}
		for j := range c.values {
			if c.values[j] != oc.values[j] {
				return false
			}
		}
	}
	return true
}

// WriteCSV writes the dataset as comma-separated text with a header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	return d.WriteDelimited(w, ',')
}

// WriteDelimited writes the dataset with the given field separator.
func (d *Dataset) WriteDelimited(w io.Writer, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(d.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < d.rows; i++ {
		if err := cw.Write(d.Row(i)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalJSON encodes the dataset as {"columns": [...], "rows": [[...]]},
// preserving column order.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	rows := make([][]string, d.rows)
	for i := 0; i < d.rows; i++ {
		rows[i] = d.Row(i)
	}
	return json.Marshal(struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}{
		Columns: d.Columns(),
		Rows:    rows,
	})
}

// MachineName converts a display column name into a machine-safe identifier:
// lowercase, with every run of non-alphanumeric characters collapsed to a
// single underscore and no leading or trailing underscore. Applying it to an
// already-safe name changes nothing.
func MachineName(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
