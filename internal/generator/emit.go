package generator

import (
	"fmt"
	"strings"
)

// EmitJava renders the complete definition of the enumerated type: the
// constant list, field declarations, constructor, and accessors, in that
// fixed order. Member lines are separated by ',' with ';' terminating the
// last one, as the enum-with-constructor grammar requires. A table with
// zero rows still yields a syntactically complete, empty-bodied
// definition.
func EmitJava(typeName string, schema *FieldSchema, members []Member) string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", typeName)

	for i, m := range members {
		sep := ","
		if i == len(members)-1 {
			sep = ";"
		}
		fmt.Fprintf(&b, "    %s(%s)%s\n", m.Name, strings.Join(m.Values, ", "), sep)
	}

	fields := schema.Fields()
	if len(fields) > 0 {
		b.WriteString("\n")
		for _, f := range fields {
			fmt.Fprintf(&b, "    private final %s %s;\n", f.Type.Name, f.Name)
		}
	}

	if len(members) > 0 || len(fields) > 0 {
		params := make([]string, len(fields))
		for i, f := range fields {
			params[i] = f.Type.Name + " " + f.Name
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "    private %s(%s) {\n", typeName, strings.Join(params, ", "))
		for _, f := range fields {
			fmt.Fprintf(&b, "        this.%s = %s;\n", f.Name, f.Name)
		}
		b.WriteString("    }\n")
	}

	for _, f := range fields {
		b.WriteString("\n")
		fmt.Fprintf(&b, "    public %s %s() {\n", f.Type.Name, accessorName(f))
		fmt.Fprintf(&b, "        return this.%s;\n", f.Name)
		b.WriteString("    }\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// accessorName returns is<Name> for boolean fields and get<Name> for
// everything else.
func accessorName(f Field) string {
	if f.Type.Kind == KindBoolean {
		return "is" + accessorSuffix(f.Name)
	}
	return "get" + accessorSuffix(f.Name)
}
