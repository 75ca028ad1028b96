package domain

import "strings"

var foldReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// NormalizeSearch lowercases, folds Spanish diacritics and strips everything
// but letters and digits, so "Peñaloza" matches "penaloza".
func NormalizeSearch(s string) string {
	s = foldReplacer.Replace(strings.ToLower(s))

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchesSearch tests normalized substring containment.
func MatchesSearch(field, query string) bool {
	q := NormalizeSearch(query)
	if q == "" {
		return true
	}
	return strings.Contains(NormalizeSearch(field), q)
}
