// Package rut validates Chilean RUT identifiers using the modulus-11 check digit.
package rut

import "strings"

var separators = strings.NewReplacer("-", "", ".", "")

// Clean removes the hyphen and dot separators from raw.
func Clean(raw string) string {
	return separators.Replace(raw)
}

// CheckDigit returns the modulus-11 check character for body: '0'-'9' or 'K'.
// Returns false when body is empty or contains a non-digit.
func CheckDigit(body string) (byte, bool) {
	if body == "" {
		return 0, false
	}

	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += int(c-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch r := 11 - sum%11; r {
	case 11:
		return '0', true
	case 10:
		return 'K', true
	default:
		return byte('0' + r), true
	}
}

// Validate reports whether raw is a well-formed RUT whose last character
// matches the check digit of the preceding digits. Malformed input is
// simply invalid.
func Validate(raw string) bool {
	body, check, ok := split(raw)
	if !ok {
		return false
	}
	want, ok := CheckDigit(body)
	return ok && check == want
}

// Format renders a valid RUT as "12.345.678-5".
func Format(raw string) (string, bool) {
	if !Validate(raw) {
		return "", false
	}
	body, check, _ := split(raw)

	var b strings.Builder
	b.Grow(len(body) + len(body)/3 + 2)
	lead := len(body) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(body[:lead])
	for i := lead; i < len(body); i += 3 {
		b.WriteByte('.')
		b.WriteString(body[i : i+3])
	}
	b.WriteByte('-')
	b.WriteByte(check)
	return b.String(), true
}

// split returns the body and the uppercased check character of raw.
func split(raw string) (string, byte, bool) {
	s := Clean(raw)
	if len(s) < 2 {
		return "", 0, false
	}
	check := s[len(s)-1]
	if check == 'k' {
		check = 'K'
	}
	if check != 'K' && (check < '0' || check > '9') {
		return "", 0, false
	}
	return s[:len(s)-1], check, true
}
