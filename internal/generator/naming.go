package generator

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// SanitizeConst converts a raw primary key value into a valid, uppercase
// enum constant name. The value is uppercased, prefixed with '_' when its
// first character is not a valid identifier start, and every character
// that is not a valid identifier part is replaced by '_'. The function is
// total and never truncates. Distinct raw values may sanitize to the same
// constant; collisions are not detected here and surface as a compile
// error in the generated source.
func SanitizeConst(raw string) string {
	return sanitizeIdentifier(strings.ToUpper(raw))
}

func sanitizeIdentifier(s string) string {
	if s == "" {
		return "_"
	}
	runes := []rune(s)
	if !isIdentifierStart(runes[0]) {
		runes = append([]rune{'_'}, runes...)
	}
	for i, r := range runes {
		if !isIdentifierPart(r) {
			runes[i] = '_'
		}
	}
	return string(runes)
}

// isIdentifierStart mirrors Character.isJavaIdentifierStart for the
// character classes that occur in master data keys.
func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

// isIdentifierPart mirrors Character.isJavaIdentifierPart.
func isIdentifierPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

// TypeName derives the generated type name for a table:
// PascalCase(tableName) plus the configured suffix, e.g.
// "status_stammdaten" + "Enum" → "StatusStammdatenEnum".
func TypeName(tableName, suffix string) string {
	return inflect.Camelize(strings.ToLower(tableName)) + suffix
}

// FieldName converts a column label into a lowerCamel field name, e.g.
// "ACTIVE_FLAG" → "activeFlag". The result is sanitized so that labels
// with characters outside the identifier alphabet still yield a valid
// name.
func FieldName(label string) string {
	return sanitizeIdentifier(inflect.CamelizeDownFirst(strings.ToLower(label)))
}

// accessorSuffix uppercases the first rune of a field name for use in
// getX/isX accessor names.
func accessorSuffix(fieldName string) string {
	if fieldName == "" {
		return fieldName
	}
	runes := []rune(fieldName)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
