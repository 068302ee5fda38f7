package sms

import "strings"

// NormalizePhone brings a free-text phone number to international
// +<country><digits> form. Spaces and hyphens are stripped; numbers already
// carrying a "+" are kept, numbers starting with the bare country code get a
// "+", everything else is prefixed with the configured country code.
func NormalizePhone(phone, countryCode string) string {
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if strings.HasPrefix(phone, countryCode) {
		return "+" + phone
	}
	return "+" + countryCode + phone
}
