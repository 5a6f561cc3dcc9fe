package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/masterdata/enumgen/masterdata"
)

// Options holds the runtime inputs of a generation pass that are not part
// of the file configuration.
type Options struct {
	// Logger receives the per-table diagnostics. Defaults to
	// slog.Default.
	Logger *slog.Logger
}

// Run executes the full enum generation pipeline against src: enumerate
// tables, filter by trigger, validate shape, project rows, emit, write.
//
// Failures are table-scoped: a table with a multi-column or missing
// primary key is skipped with a warning, and a row read or projection
// failure aborts only that table's emission while the batch continues.
// Emission is rendered fully in memory and written with a single
// WriteFile per artifact, so a failed table leaves no partial file
// behind. Run returns an error only for batch-level failures (table
// enumeration, invalid trigger).
func Run(ctx context.Context, src masterdata.Source, cfg Config, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Trigger.Validate(); err != nil {
		return err
	}

	logger.Info("generating enums")

	// 1. Enumerate all tables.
	tables, err := src.Tables(ctx)
	if err != nil {
		return fmt.Errorf("enumerating tables: %w", err)
	}

	// 2. Filter candidates by trigger. Non-matching tables are excluded
	// silently.
	selected := Select(tables, cfg.Trigger)

	// 3. Process each candidate to completion before the next.
	for _, table := range selected {
		if err := ValidateShape(table); err != nil {
			logger.Warn(err.Error())
			logger.Warn("skipping enum generation", "table", table.Name)
			continue
		}
		typeName := TypeName(table.Name, cfg.Java.Suffix)
		if err := generateTable(ctx, src, table, typeName, cfg); err != nil {
			logger.Error("enum generation failed", "table", table.Name, "error", err)
			continue
		}
		logger.Info("generated enum", "table", table.Name, "type", typeName)
	}

	logger.Info("enum generation finished")
	return nil
}

// generateTable projects one validated table and writes its artifacts.
func generateTable(ctx context.Context, src masterdata.Source, table masterdata.Table, typeName string, cfg Config) error {
	cur, err := src.Rows(ctx, table)
	if err != nil {
		return err
	}
	defer cur.Close()

	schema, members, err := Project(table, cur)
	if err != nil {
		return err
	}

	var b strings.Builder
	if cfg.Java.Package != "" {
		fmt.Fprintf(&b, "package %s;\n\n", cfg.Java.Package)
	}
	b.WriteString(EmitJava(typeName, schema, members))

	if err := writeArtifact(cfg.Java.Output, typeName+".java", []byte(b.String())); err != nil {
		return err
	}

	if cfg.Go.Output != "" {
		code, err := EmitGo(cfg.Go.Package, typeName, schema, members)
		if err != nil {
			return err
		}
		name := inflect.Underscore(typeName) + ".go"
		if err := writeArtifact(cfg.Go.Output, name, code); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
