package validators

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion é usada quando o número vem sem DDI.
const DefaultRegion = "BR"

// IsPhoneValid aceita números brasileiros com ou sem DDI, com ou sem máscara.
// Letras são recusadas: a lib converteria "vanity numbers" em dígitos.
func IsPhoneValid(phone string) bool {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return false
	}

	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '(', r == ')', r == '+', r == '.':
		default:
			return false
		}
	}

	num, err := phonenumbers.Parse(trimmed, DefaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
