package generator

import (
	"fmt"
	"strings"

	"github.com/masterdata/enumgen/masterdata"
)

// Trigger selects which tables are master data candidates. Exactly one
// mode must be configured: Marker selects tables whose name contains the
// marker (case-insensitive), Tables selects tables whose name exactly
// matches one entry (case-insensitive).
type Trigger struct {
	Marker string   `yaml:"marker"`
	Tables []string `yaml:"tables"`
}

// Validate checks that exactly one trigger mode is configured.
func (tr Trigger) Validate() error {
	switch {
	case tr.Marker != "" && len(tr.Tables) > 0:
		return fmt.Errorf("trigger: marker and tables are mutually exclusive")
	case tr.Marker == "" && len(tr.Tables) == 0:
		return fmt.Errorf("trigger: either a marker or a table list is required")
	}
	return nil
}

func (tr Trigger) matches(name string) bool {
	if tr.Marker != "" {
		return strings.Contains(strings.ToLower(name), strings.ToLower(tr.Marker))
	}
	for _, t := range tr.Tables {
		if strings.EqualFold(name, t) {
			return true
		}
	}
	return false
}

// Select returns the subsequence of tables matching tr, preserving input
// order. Non-matching tables are silently excluded; exclusion is not a
// diagnostic.
func Select(tables []masterdata.Table, tr Trigger) []masterdata.Table {
	var selected []masterdata.Table
	for _, t := range tables {
		if tr.matches(t.Name) {
			selected = append(selected, t)
		}
	}
	return selected
}

// ValidateShape checks that a candidate table's primary key spans exactly
// one column. The returned error names the table and its key columns and
// is table-scoped: callers skip the table and continue.
func ValidateShape(table masterdata.Table) error {
	pk := table.PrimaryKeyColumns()
	switch len(pk) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("table %q has no primary key column, but master data requires exactly one", table.Name)
	default:
		return fmt.Errorf("the primary key (%s) of table %q spans over %d columns, but only one column is allowed for master data",
			strings.Join(pk, ", "), table.Name, len(pk))
	}
}
