package generator

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/masterdata/enumgen/masterdata"
)

func newTestSource(t *testing.T, stmts ...string) *masterdata.DBSource {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range stmts {
		_, err := db.ExecContext(context.Background(), stmt)
		require.NoError(t, err)
	}
	return masterdata.OpenDB(masterdata.SQLite, db, "")
}

func TestRunEndToEnd(t *testing.T) {
	src := newTestSource(t,
		`CREATE TABLE status_stammdaten (code TEXT PRIMARY KEY, label TEXT, active TINYINT)`,
		`INSERT INTO status_stammdaten VALUES ('OK', 'Okay', 1), ('ERR', 'Error', 0)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, status_code TEXT)`,
	)

	javaDir := t.TempDir()
	goDir := t.TempDir()
	cfg := Config{
		Trigger: Trigger{Marker: "stammdaten"},
		Java:    JavaConfig{Package: "com.example.masterdata", Suffix: "Enum", Output: javaDir},
		Go:      GoConfig{Package: "refdata", Output: goDir},
	}

	var log bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&log, nil))
	require.NoError(t, Run(context.Background(), src, cfg, Options{Logger: logger}))

	data, err := os.ReadFile(filepath.Join(javaDir, "StatusStammdatenEnum.java"))
	require.NoError(t, err)
	java := string(data)

	assert.True(t, strings.HasPrefix(java, "package com.example.masterdata;\n\n"), "missing package header:\n%s", java)
	for _, want := range []string{
		"enum StatusStammdatenEnum {",
		`    OK("Okay", true),`,
		`    ERR("Error", false);`,
		"    private final String label;",
		"    private final boolean active;",
		"    private StatusStammdatenEnum(String label, boolean active) {",
		"    public String getLabel() {",
		"    public boolean isActive() {",
	} {
		assert.Contains(t, java, want)
	}

	// Non-matching tables produce no artifact.
	_, err = os.Stat(filepath.Join(javaDir, "OrdersEnum.java"))
	assert.True(t, os.IsNotExist(err), "non-matching table was emitted")

	// Go bindings are written alongside.
	goData, err := os.ReadFile(filepath.Join(goDir, "status_stammdaten_enum.go"))
	require.NoError(t, err)
	assert.Contains(t, string(goData), "StatusStammdatenEnumOK")

	// One informational line names source table and destination type.
	assert.Contains(t, log.String(), "status_stammdaten")
	assert.Contains(t, log.String(), "StatusStammdatenEnum")
}

func TestRunRejectsMultiColumnKey(t *testing.T) {
	src := newTestSource(t,
		`CREATE TABLE mapping_stammdaten (left_id INTEGER, right_id INTEGER, PRIMARY KEY (left_id, right_id))`,
		`CREATE TABLE status_stammdaten (code TEXT PRIMARY KEY, label TEXT)`,
		`INSERT INTO status_stammdaten VALUES ('OK', 'Okay')`,
	)

	javaDir := t.TempDir()
	cfg := Config{
		Trigger: Trigger{Marker: "stammdaten"},
		Java:    JavaConfig{Suffix: "Enum", Output: javaDir},
	}

	var log bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&log, nil))
	require.NoError(t, Run(context.Background(), src, cfg, Options{Logger: logger}))

	// Rejected table: warning, no artifact.
	_, err := os.Stat(filepath.Join(javaDir, "MappingStammdatenEnum.java"))
	assert.True(t, os.IsNotExist(err), "rejected table was emitted")
	assert.Contains(t, log.String(), "level=WARN")
	assert.Contains(t, log.String(), "mapping_stammdaten")

	// The batch continues with the next candidate.
	_, err = os.Stat(filepath.Join(javaDir, "StatusStammdatenEnum.java"))
	assert.NoError(t, err, "valid table after a rejection was not emitted")
}

func TestRunZeroRowTable(t *testing.T) {
	src := newTestSource(t,
		`CREATE TABLE leer_stammdaten (code TEXT PRIMARY KEY, label TEXT)`,
	)

	javaDir := t.TempDir()
	cfg := Config{
		Trigger: Trigger{Marker: "stammdaten"},
		Java:    JavaConfig{Suffix: "Enum", Output: javaDir},
	}
	require.NoError(t, Run(context.Background(), src, cfg, Options{Logger: discardLogger()}))

	data, err := os.ReadFile(filepath.Join(javaDir, "LeerStammdatenEnum.java"))
	require.NoError(t, err)
	assert.Equal(t, "enum LeerStammdatenEnum {\n}\n", string(data))
}

func TestRunAllowListMode(t *testing.T) {
	src := newTestSource(t,
		`CREATE TABLE status (code TEXT PRIMARY KEY, label TEXT)`,
		`INSERT INTO status VALUES ('OK', 'Okay')`,
		`CREATE TABLE kategorie (code TEXT PRIMARY KEY, label TEXT)`,
		`INSERT INTO kategorie VALUES ('A', 'Alpha')`,
		`CREATE TABLE audit_log (id INTEGER PRIMARY KEY, message TEXT)`,
	)

	javaDir := t.TempDir()
	cfg := Config{
		Trigger: Trigger{Tables: []string{"STATUS", "kategorie"}},
		Java:    JavaConfig{Suffix: "Enum", Output: javaDir},
	}
	require.NoError(t, Run(context.Background(), src, cfg, Options{Logger: discardLogger()}))

	for _, name := range []string{"StatusEnum.java", "KategorieEnum.java"} {
		_, err := os.Stat(filepath.Join(javaDir, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(javaDir, "AuditLogEnum.java"))
	assert.True(t, os.IsNotExist(err), "non-listed table was emitted")
}

func TestRunInvalidTrigger(t *testing.T) {
	src := newTestSource(t)
	err := Run(context.Background(), src, Config{}, Options{Logger: discardLogger()})
	require.Error(t, err)
}

// failingSource serves one table whose cursor fails mid-iteration,
// followed by a healthy table.
type failingSource struct {
	good masterdata.Table
	bad  masterdata.Table
}

func (s *failingSource) Tables(ctx context.Context) ([]masterdata.Table, error) {
	return []masterdata.Table{s.bad, s.good}, nil
}

func (s *failingSource) Rows(ctx context.Context, table masterdata.Table) (masterdata.Cursor, error) {
	if table.Name == s.bad.Name {
		return &sliceCursor{
			rows: [][]string{{"OK", "Okay"}},
			err:  errors.New("connection reset"),
		}, nil
	}
	return &sliceCursor{rows: [][]string{{"A", "Alpha"}}}, nil
}

func (s *failingSource) Close() error { return nil }

func TestRunContinuesAfterRowFailure(t *testing.T) {
	cols := []masterdata.Column{
		{Label: "code", NativeType: "String", PrimaryKey: true},
		{Label: "label", NativeType: "String"},
	}
	src := &failingSource{
		bad:  masterdata.Table{Name: "broken_stammdaten", Columns: cols},
		good: masterdata.Table{Name: "status_stammdaten", Columns: cols},
	}

	javaDir := t.TempDir()
	cfg := Config{
		Trigger: Trigger{Marker: "stammdaten"},
		Java:    JavaConfig{Suffix: "Enum", Output: javaDir},
	}

	var log bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&log, nil))
	require.NoError(t, Run(context.Background(), src, cfg, Options{Logger: logger}))

	// The failed table aborts its own emission only; no partial artifact
	// exists.
	_, err := os.Stat(filepath.Join(javaDir, "BrokenStammdatenEnum.java"))
	assert.True(t, os.IsNotExist(err), "failed table left an artifact behind")
	assert.Contains(t, log.String(), "connection reset")

	// The batch proceeded to the next table.
	data, err := os.ReadFile(filepath.Join(javaDir, "StatusStammdatenEnum.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `A("Alpha");`)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}
