package masterdata

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// Supported dialects.
const (
	SQLite   = "sqlite"
	MySQL    = "mysql"
	Postgres = "postgres"
)

// validIdentifierRe validates SQL identifiers before they are interpolated
// into introspection and SELECT statements. Table and column names come
// from introspection, but they still pass through this gate because they
// end up inside statement text.
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// DBSource is a database/sql backed Source. It introspects tables,
// columns, and primary keys for the supported dialects and serves
// forward-only cursors over SELECT * results.
type DBSource struct {
	db      *sql.DB
	dialect string
	schema  string // optional schema/database qualifier
}

// Open opens a database handle for the given dialect and DSN and wraps it
// in a DBSource. The schema qualifier is optional; when empty, the
// dialect's default schema is introspected (DATABASE() for mysql, public
// for postgres, the main database for sqlite).
func Open(dialect, dsn, schema string) (*DBSource, error) {
	switch dialect {
	case SQLite, MySQL, Postgres:
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialect, err)
	}
	return &DBSource{db: db, dialect: dialect, schema: schema}, nil
}

// OpenDB wraps an existing database handle in a DBSource.
func OpenDB(dialect string, db *sql.DB, schema string) *DBSource {
	return &DBSource{db: db, dialect: dialect, schema: schema}
}

// DB returns the underlying database handle.
func (s *DBSource) DB() *sql.DB { return s.db }

// Close closes the underlying database handle.
func (s *DBSource) Close() error { return s.db.Close() }

// Tables implements Source.
func (s *DBSource) Tables(ctx context.Context) ([]Table, error) {
	switch s.dialect {
	case SQLite:
		return s.sqliteTables(ctx)
	case MySQL:
		return s.mysqlTables(ctx)
	case Postgres:
		return s.postgresTables(ctx)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", s.dialect)
	}
}

func (s *DBSource) sqliteTables(ctx context.Context) ([]Table, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	var tables []Table
	for _, name := range names {
		t, err := s.sqliteColumns(ctx, name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (s *DBSource) sqliteColumns(ctx context.Context, name string) (Table, error) {
	if !isValidIdentifier(name) {
		return Table{}, fmt.Errorf("invalid table name %q", name)
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", name))
	if err != nil {
		return Table{}, fmt.Errorf("describing table %s: %w", name, err)
	}
	defer rows.Close()

	t := Table{Name: name}
	for rows.Next() {
		var (
			cid, notNull, pk int
			colName, colType string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return Table{}, fmt.Errorf("describing table %s: %w", name, err)
		}
		t.Columns = append(t.Columns, Column{
			Label:      colName,
			NativeType: canonicalType(colType),
			PrimaryKey: pk > 0,
		})
	}
	if err := rows.Err(); err != nil {
		return Table{}, fmt.Errorf("describing table %s: %w", name, err)
	}
	return t, nil
}

func (s *DBSource) mysqlTables(ctx context.Context) ([]Table, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT TABLE_NAME, COLUMN_NAME, DATA_TYPE, COLUMN_KEY
FROM information_schema.COLUMNS
WHERE TABLE_SCHEMA = COALESCE(NULLIF(?, ''), DATABASE())
ORDER BY TABLE_NAME, ORDINAL_POSITION`, s.schema)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var tableName, colName, dataType, colKey string
		if err := rows.Scan(&tableName, &colName, &dataType, &colKey); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		if len(tables) == 0 || tables[len(tables)-1].Name != tableName {
			tables = append(tables, Table{Name: tableName})
		}
		t := &tables[len(tables)-1]
		t.Columns = append(t.Columns, Column{
			Label:      colName,
			NativeType: canonicalType(dataType),
			PrimaryKey: colKey == "PRI",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	return tables, nil
}

func (s *DBSource) postgresTables(ctx context.Context) ([]Table, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT table_name, column_name, data_type
FROM information_schema.columns
WHERE table_schema = COALESCE(NULLIF($1, ''), 'public')
ORDER BY table_name, ordinal_position`, s.schema)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}
	defer rows.Close()

	var tables []Table
	for rows.Next() {
		var tableName, colName, dataType string
		if err := rows.Scan(&tableName, &colName, &dataType); err != nil {
			return nil, fmt.Errorf("scanning column row: %w", err)
		}
		if len(tables) == 0 || tables[len(tables)-1].Name != tableName {
			tables = append(tables, Table{Name: tableName})
		}
		t := &tables[len(tables)-1]
		t.Columns = append(t.Columns, Column{
			Label:      colName,
			NativeType: canonicalType(dataType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	pks, err := s.postgresPrimaryKeys(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tables {
		cols := pks[tables[i].Name]
		for j := range tables[i].Columns {
			if cols[tables[i].Columns[j].Label] {
				tables[i].Columns[j].PrimaryKey = true
			}
		}
	}
	return tables, nil
}

func (s *DBSource) postgresPrimaryKeys(ctx context.Context) (map[string]map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT tc.table_name, kcu.column_name
FROM information_schema.table_constraints tc
JOIN information_schema.key_column_usage kcu
  ON tc.constraint_name = kcu.constraint_name
 AND tc.table_schema = kcu.table_schema
WHERE tc.constraint_type = 'PRIMARY KEY'
  AND tc.table_schema = COALESCE(NULLIF($1, ''), 'public')`, s.schema)
	if err != nil {
		return nil, fmt.Errorf("listing primary keys: %w", err)
	}
	defer rows.Close()

	pks := make(map[string]map[string]bool)
	for rows.Next() {
		var tableName, colName string
		if err := rows.Scan(&tableName, &colName); err != nil {
			return nil, fmt.Errorf("scanning primary key row: %w", err)
		}
		if pks[tableName] == nil {
			pks[tableName] = make(map[string]bool)
		}
		pks[tableName][colName] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing primary keys: %w", err)
	}
	return pks, nil
}

// Rows implements Source. The cursor reads SELECT * results in the order
// the database serves them; no ordering is imposed here.
func (s *DBSource) Rows(ctx context.Context, table Table) (Cursor, error) {
	if !isValidIdentifier(table.Name) {
		return nil, fmt.Errorf("invalid table name %q", table.Name)
	}
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+s.qualify(table.Name))
	if err != nil {
		return nil, fmt.Errorf("reading rows of %s: %w", table.Name, err)
	}
	return &dbCursor{rows: rows, table: table.Name, width: len(table.Columns)}, nil
}

// qualify quotes the table name per dialect, prefixed with the schema
// qualifier when one is configured.
func (s *DBSource) qualify(name string) string {
	quote := func(id string) string {
		if s.dialect == MySQL {
			return "`" + id + "`"
		}
		return `"` + id + `"`
	}
	if s.schema != "" {
		return quote(s.schema) + "." + quote(name)
	}
	return quote(name)
}

// dbCursor adapts *sql.Rows to the Cursor interface, scanning every cell
// into text.
type dbCursor struct {
	rows    *sql.Rows
	table   string
	width   int
	current []string
	err     error
}

func (c *dbCursor) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.rows.Next() {
		return false
	}
	cols, err := c.rows.Columns()
	if err != nil {
		c.err = fmt.Errorf("reading columns of %s: %w", c.table, err)
		return false
	}
	if c.width > 0 && len(cols) != c.width {
		c.err = fmt.Errorf("table %s: result has %d columns, descriptor has %d", c.table, len(cols), c.width)
		return false
	}
	cells := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range cells {
		dest[i] = &cells[i]
	}
	if err := c.rows.Scan(dest...); err != nil {
		c.err = fmt.Errorf("scanning row of %s: %w", c.table, err)
		return false
	}
	c.current = make([]string, len(cells))
	for i, cell := range cells {
		if cell.Valid {
			c.current[i] = cell.String
		} else {
			c.current[i] = "null"
		}
	}
	return true
}

func (c *dbCursor) Values() []string { return c.current }

func (c *dbCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

func (c *dbCursor) Close() error { return c.rows.Close() }

// canonicalType maps a database column type to its canonical native type
// name. The mapping follows JDBC class names since the generated artifact
// targets Java: TEXT and VARCHAR report "String", TINYINT reports "Byte",
// and so on. Unrecognized types pass through with their raw name.
func canonicalType(dbType string) string {
	t := strings.ToUpper(strings.TrimSpace(dbType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	switch t {
	case "TEXT", "VARCHAR", "CHAR", "CHARACTER", "CHARACTER VARYING",
		"NVARCHAR", "NCHAR", "ENUM", "UUID", "NAME":
		return "String"
	case "CLOB", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT":
		return "Clob"
	case "TINYINT", "BOOLEAN", "BOOL":
		return "Byte"
	case "SMALLINT", "INT2":
		return "Short"
	case "INT", "INTEGER", "MEDIUMINT", "INT4", "SERIAL":
		return "Integer"
	case "BIGINT", "INT8", "BIGSERIAL":
		return "Long"
	case "DECIMAL", "NUMERIC":
		return "BigDecimal"
	case "REAL", "FLOAT", "FLOAT4":
		return "Float"
	case "DOUBLE", "DOUBLE PRECISION", "FLOAT8":
		return "Double"
	case "DATE":
		return "Date"
	case "TIME":
		return "Time"
	case "TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE", "TIMESTAMP WITH TIME ZONE", "DATETIME":
		return "Timestamp"
	default:
		return dbType
	}
}
