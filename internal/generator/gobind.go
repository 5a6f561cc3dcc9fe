package generator

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// EmitGo renders Go bindings for a generated enum: a value type with one
// package-level constant-like var per member, a String method returning
// the constant name, and one accessor per field. The member order and
// field order match the Java emission.
func EmitGo(pkgName, typeName string, schema *FieldSchema, members []Member) ([]byte, error) {
	fields := schema.Fields()
	keyField := "name"
	for hasField(fields, keyField) {
		keyField += "_"
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by enumgen. DO NOT EDIT.")

	f.Type().Id(typeName).StructFunc(func(g *jen.Group) {
		g.Id(keyField).String()
		for _, fld := range fields {
			g.Id(fld.Name).Add(goFieldType(fld.Type))
		}
	})

	if len(members) > 0 {
		f.Var().DefsFunc(func(g *jen.Group) {
			for _, m := range members {
				values := jen.Dict{jen.Id(keyField): jen.Lit(m.Name)}
				for i, fld := range fields {
					if i < len(m.raw) {
						values[jen.Id(fld.Name)] = goFieldValue(fld.Type, m.raw[i])
					}
				}
				g.Id(typeName + m.Name).Op("=").Id(typeName).Values(values)
			}
		})

		f.Commentf("%sValues lists all %s members in definition order.", typeName, typeName)
		f.Var().Id(typeName + "Values").Op("=").Index().Id(typeName).ValuesFunc(func(g *jen.Group) {
			for _, m := range members {
				g.Id(typeName + m.Name)
			}
		})
	}

	f.Comment("String returns the constant name of the member.")
	f.Func().Params(jen.Id("e").Id(typeName)).Id("String").Params().String().Block(
		jen.Return(jen.Id("e").Dot(keyField)),
	)

	for _, fld := range fields {
		f.Func().Params(jen.Id("e").Id(typeName)).Id(goAccessorName(fld)).Params().Add(goFieldType(fld.Type)).Block(
			jen.Return(jen.Id("e").Dot(fld.Name)),
		)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering Go bindings for %s: %w", typeName, err)
	}
	return buf.Bytes(), nil
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func goAccessorName(f Field) string {
	if f.Type.Kind == KindBoolean {
		return "Is" + accessorSuffix(f.Name)
	}
	return accessorSuffix(f.Name)
}

// goFieldType maps an OutputType to its Go counterpart. Other types with
// no Go equivalent fall back to string, keeping the raw value readable.
func goFieldType(t OutputType) *jen.Statement {
	switch t.Kind {
	case KindString:
		return jen.String()
	case KindBoolean:
		return jen.Bool()
	}
	switch t.Name {
	case "Short":
		return jen.Int16()
	case "Integer":
		return jen.Int()
	case "Long":
		return jen.Int64()
	case "Float":
		return jen.Float32()
	case "Double":
		return jen.Float64()
	default:
		return jen.String()
	}
}

func goFieldValue(t OutputType, raw string) jen.Code {
	switch t.Kind {
	case KindString:
		return jen.Lit(raw)
	case KindBoolean:
		return jen.Lit(byteTrue(raw))
	}
	switch t.Name {
	case "Short", "Integer", "Long", "Float", "Double":
		// Numeric literal, rendered verbatim.
		return jen.Id(raw)
	default:
		return jen.Lit(raw)
	}
}
