package masterdata

import "context"

// Column describes one column of a candidate master data table.
type Column struct {
	// Label is the column name as reported by the schema source.
	Label string

	// NativeType is the canonical native type name ("String", "Clob",
	// "Byte", "Integer", ...). Unrecognized database types carry their
	// raw type name; an empty value means the type could not be resolved.
	NativeType string

	// PrimaryKey reports whether the column participates in the table's
	// primary key.
	PrimaryKey bool
}

// Table describes a candidate master data table with its columns in
// ordinal position order.
type Table struct {
	Name    string
	Columns []Column
}

// PrimaryKeyColumns returns the labels of the table's primary key
// columns in column order.
func (t Table) PrimaryKeyColumns() []string {
	var labels []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			labels = append(labels, c.Label)
		}
	}
	return labels
}

// Cursor is a forward-only, single-pass iterator over a table's rows.
// It must be closed on every exit path, including failure paths.
type Cursor interface {
	// Next advances to the next row. It returns false when no rows
	// remain or an error occurred; Err distinguishes the two cases.
	Next() bool

	// Values returns the current row's cells as text, aligned with the
	// owning table's column order. SQL NULL is reported as "null". The
	// returned slice is only valid until the next call to Next.
	Values() []string

	// Err returns the error, if any, that terminated iteration.
	Err() error

	// Close releases the cursor's resources.
	Close() error
}

// Source enumerates master data tables and serves their rows.
type Source interface {
	// Tables returns descriptors for all tables visible to the source,
	// in a stable order.
	Tables(ctx context.Context) ([]Table, error)

	// Rows opens a forward-only cursor over all rows of table. The
	// caller owns the cursor and must close it.
	Rows(ctx context.Context, table Table) (Cursor, error)

	// Close releases the underlying connection.
	Close() error
}
