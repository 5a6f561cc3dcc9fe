package generator

import (
	"strconv"
	"strings"
)

// OutputKind classifies the resolved type of a generated enum field.
type OutputKind int

const (
	KindString OutputKind = iota
	KindBoolean
	KindOther
)

// OutputType is the resolved target type of one enum field.
type OutputType struct {
	Kind OutputKind

	// Name is the Java type name rendered into field declarations:
	// "String", "boolean", or the native type name for Other kinds.
	Name string
}

// MapType resolves a canonical native type name to an OutputType. The
// function is pure and total: String and Clob columns become String
// fields, Byte columns become boolean fields, and every other type name
// passes through verbatim as an Other type.
func MapType(nativeType string) OutputType {
	switch nativeType {
	case "Clob", "String":
		return OutputType{Kind: KindString, Name: "String"}
	case "Byte":
		return OutputType{Kind: KindBoolean, Name: "boolean"}
	default:
		return OutputType{Kind: KindOther, Name: nativeType}
	}
}

// FormatValue renders a raw cell value as a source literal for t. String
// values are quoted and escaped, Byte values follow the nonzero-is-true
// rule, and Other values pass through unquoted.
func FormatValue(t OutputType, raw string) string {
	switch t.Kind {
	case KindString:
		return `"` + escapeString(raw) + `"`
	case KindBoolean:
		return strconv.FormatBool(byteTrue(raw))
	default:
		return raw
	}
}

// byteTrue interprets a raw cell as a boolean: any nonzero byte value is
// true. Drivers that already serve boolean text ("true"/"false") are
// accepted as well.
func byteTrue(raw string) bool {
	s := strings.TrimSpace(raw)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n != 0
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeString(s string) string {
	return stringEscaper.Replace(s)
}
