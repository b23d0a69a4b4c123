package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeDescription elimina espacios sobrantes al inicio y al final.
func NormalizeDescription(s string) string {
	return strings.TrimSpace(s)
}

// DescriptionKey clave natural del producto: descripción normalizada en minúsculas, de modo
// que "Luvas", "LUVAS" y "luvas" coinciden. No expande ligaduras ni "ß".
func DescriptionKey(s string) string {
	return cases.Lower(language.Und).String(NormalizeDescription(s))
}

// ContainsFold indica si s contiene sub sin distinguir mayúsculas.
func ContainsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(sub))
}
