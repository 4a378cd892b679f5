package actions

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// defaultPhoneRegion matches the product's market
const defaultPhoneRegion = "FR"

// normalizePhone formats a phone number to E.164 when it parses as a valid
// number for the default region. Unparseable input is stored as typed, the
// field is informational.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return raw
	}

	if !phonenumbers.IsValidNumber(num) {
		return raw
	}

	return phonenumbers.Format(num, phonenumbers.E164)
}
