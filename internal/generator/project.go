package generator

import (
	"fmt"

	"github.com/masterdata/enumgen/masterdata"
)

// Field is one non-key column of a table's field schema.
type Field struct {
	Name string
	Type OutputType
}

// FieldSchema is the ordered, deduplicated set of non-key fields of one
// table. A field's position is fixed by its first occurrence and never
// changes; later occurrences may only update the recorded type.
type FieldSchema struct {
	fields []Field
	index  map[string]int
}

func (s *FieldSchema) put(name string, t OutputType) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.fields[i].Type = t
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Type: t})
}

// Fields returns the fields in insertion order.
func (s *FieldSchema) Fields() []Field { return s.fields }

// Len returns the number of fields.
func (s *FieldSchema) Len() int { return len(s.fields) }

// Member is one generated enum constant, derived from one table row. Its
// values are source literals aligned positionally with the field schema;
// raw keeps the unformatted cell text for alternate emitters.
type Member struct {
	Name   string
	Values []string

	raw []string
}

// Project consumes all rows of table through cur and builds the table's
// field schema plus one member per row, in row order. The primary key
// value becomes the member's constant name and never enters the field
// schema. Projection fails when the table has no single primary key
// column, when a column's native type is unresolved, or when the cursor
// reports a read error; the caller owns cur and closes it on every path.
func Project(table masterdata.Table, cur masterdata.Cursor) (*FieldSchema, []Member, error) {
	pkIndex := -1
	for i, c := range table.Columns {
		if !c.PrimaryKey {
			continue
		}
		if pkIndex >= 0 {
			return nil, nil, fmt.Errorf("table %q has more than one primary key column", table.Name)
		}
		pkIndex = i
	}
	if pkIndex < 0 {
		return nil, nil, fmt.Errorf("table %q has no primary key column", table.Name)
	}
	for _, c := range table.Columns {
		if c.NativeType == "" {
			return nil, nil, fmt.Errorf("table %q: cannot resolve native type of column %q", table.Name, c.Label)
		}
	}

	schema := &FieldSchema{}
	var members []Member
	for cur.Next() {
		values := cur.Values()
		if len(values) != len(table.Columns) {
			return nil, nil, fmt.Errorf("table %q: row has %d values, descriptor has %d columns",
				table.Name, len(values), len(table.Columns))
		}
		m := Member{Name: SanitizeConst(values[pkIndex])}
		for i, c := range table.Columns {
			if i == pkIndex {
				continue
			}
			t := MapType(c.NativeType)
			schema.put(FieldName(c.Label), t)
			m.Values = append(m.Values, FormatValue(t, values[i]))
			m.raw = append(m.raw, values[i])
		}
		members = append(members, m)
	}
	if err := cur.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading rows of %q: %w", table.Name, err)
	}
	return schema, members, nil
}
