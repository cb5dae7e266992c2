// Package search implementa la coincidencia de subcadenas usada por los
// filtros de listados (productos, clientes, ventas): insensible a mayúsculas
// y a diacríticos, para que "Cafe" encuentre "Café".
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devuelve la cadena en minúsculas y sin diacríticos.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: se compara tal cual en minúsculas
		folded = s
	}
	return strings.ToLower(folded)
}

// Contains indica si needle aparece dentro de haystack ignorando mayúsculas
// y diacríticos. Una needle vacía coincide con todo (sin filtro).
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// ContainsAny aplica Contains sobre varios campos y devuelve true si alguno coincide.
func ContainsAny(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if Contains(f, needle) {
			return true
		}
	}
	return false
}
