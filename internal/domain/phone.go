package domain

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidPhone = errors.New("numéro de téléphone invalide")

// Senegalese numbering: 9 digits, optional +221 or 00221 country prefix.
var phonePattern = regexp.MustCompile(`^(?:\+221|00221)?(\d{9})$`)

// NormalizePhone validates a phone string against the Senegalese pattern and
// returns it in canonical 221XXXXXXXXX form. Spaces, dots and dashes are
// tolerated as separators.
func NormalizePhone(raw string) (string, error) {
	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.TrimSpace(raw))
	m := phonePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", ErrInvalidPhone
	}
	return "221" + m[1], nil
}
