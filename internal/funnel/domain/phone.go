package domain

import (
	"fmt"
	"strings"
)

const defaultCountryPrefix = "1"

// FormatForDisplay normalizes free-text phone input into the display shape
// used across the funnel forms: up to 3 digits unformatted, 4-6 digits as
// "(XXX) XXX", 7-10 digits as "(XXX) XXX-XXXX". Digits beyond the 10th are
// dropped.
func FormatForDisplay(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) > 10 {
		digits = digits[:10]
	}

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:3], digits[3:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
}

// ToE164 converts a display-formatted phone into E.164 dialing format using
// the default US country prefix.
func ToE164(display string) string {
	return ToE164WithPrefix(display, defaultCountryPrefix)
}

// ToE164WithPrefix is best-effort: it never validates length or plausibility.
// Callers must check completeness before handing the result to the OTP
// provider.
func ToE164WithPrefix(display, countryPrefix string) string {
	digits := digitsOnly(display)
	if !strings.HasPrefix(digits, countryPrefix) {
		digits = countryPrefix + digits
	}

	return "+" + digits
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
