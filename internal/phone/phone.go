// internal/phone/phone.go
package phone

import (
	"strings"

	appErrors "github.com/unclebandit/smscampaign-backend/internal/errors"
)

// Normalize strips every non-digit character from raw and returns the
// canonical digit-only form. Valid numbers carry 10 to 15 digits.
func Normalize(raw string) (string, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < 10 || len(digits) > 15 {
		return "", appErrors.NewValidation("Invalid phone number")
	}
	return digits, nil
}
