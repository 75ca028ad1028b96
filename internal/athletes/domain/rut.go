package domain

import "strings"

// Chilean RUT handling. The raw form is digits plus verifier ("12345678K"),
// the display form groups thousands and separates the verifier
// ("12.345.678-K"). The verifier is a mod-11 check digit.

// NormalizeRUT strips dots, hyphens and spaces and uppercases the verifier.
// Returns ErrInvalidRUT when the result is not digits+verifier or the check
// digit does not match.
func NormalizeRUT(s string) (string, error) {
	clean := strings.ToUpper(strings.NewReplacer(".", "", "-", "", " ", "").Replace(s))
	if len(clean) < 2 {
		return "", ErrInvalidRUT
	}

	body, verifier := clean[:len(clean)-1], clean[len(clean)-1]
	for _, r := range body {
		if r < '0' || r > '9' {
			return "", ErrInvalidRUT
		}
	}
	if verifier != 'K' && (verifier < '0' || verifier > '9') {
		return "", ErrInvalidRUT
	}

	if computeVerifier(body) != verifier {
		return "", ErrInvalidRUT
	}

	return clean, nil
}

// FormatRUT renders a normalized RUT in display form.
func FormatRUT(normalized string) string {
	if len(normalized) < 2 {
		return normalized
	}
	body, verifier := normalized[:len(normalized)-1], normalized[len(normalized)-1:]

	var b strings.Builder
	for i, r := range body {
		if i > 0 && (len(body)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "-" + verifier
}

// computeVerifier implements the mod-11 algorithm: weights 2..7 cycling from
// the rightmost digit, 11-remainder mapped to '0' (11) and 'K' (10).
func computeVerifier(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	rem := 11 - sum%11
	switch rem {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + rem)
	}
}
