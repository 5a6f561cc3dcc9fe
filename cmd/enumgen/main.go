// Command enumgen generates enumerated-type source files from master data
// tables. Table selection, the database connection, and output locations
// are configured through enumgen.yml; flags override individual values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/masterdata/enumgen/internal/generator"
	"github.com/masterdata/enumgen/masterdata"
)

func main() {
	var (
		configFile = flag.String("config", "enumgen.yml", "Path to configuration file")
		dialect    = flag.String("dialect", "", "Database dialect (sqlite, mysql, postgres); overrides config")
		dsn        = flag.String("dsn", "", "Data source name; overrides config")
		output     = flag.String("output", "", "Output directory for .java files; overrides config")
	)
	flag.Parse()

	if err := run(*configFile, *dialect, *dsn, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, dialect, dsn, output string) error {
	cfg, err := generator.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if dialect != "" {
		cfg.Dialect = dialect
	}
	if dsn != "" {
		cfg.DSN = dsn
	}
	if output != "" {
		cfg.Java.Output = output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Dialect names double as database/sql driver names for the drivers
	// imported above.
	src, err := masterdata.Open(cfg.Dialect, cfg.DSN, cfg.Schema)
	if err != nil {
		return err
	}
	defer src.Close()

	return generator.Run(context.Background(), src, *cfg, generator.Options{})
}
