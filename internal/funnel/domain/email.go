package domain

import (
	"regexp"
	"strings"
)

const (
	EmailErrorFormatInvalid    = "FORMAT_INVALID"
	EmailErrorDisposableDomain = "DISPOSABLE_DOMAIN"
	EmailErrorDomainInvalid    = "DOMAIN_INVALID"
)

// emailPattern accepts a single-char TLD on purpose: short labels are
// reported as DOMAIN_INVALID, not FORMAT_INVALID.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+$`)

// disposableDomains is a fixed denylist of known temporary-email providers,
// matched exactly and case-insensitively.
var disposableDomains = map[string]struct{}{
	"tempmail.com":      {},
	"temp-mail.org":     {},
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"10minutemail.com":  {},
	"yopmail.com":       {},
	"throwawaymail.com": {},
	"trashmail.com":     {},
	"sharklasers.com":   {},
	"getnada.com":       {},
	"dispostable.com":   {},
	"fakeinbox.com":     {},
	"maildrop.cc":       {},
}

type EmailValidation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateEmail narrows obviously-fake input. It is advisory validation, not
// a security boundary.
func ValidateEmail(email string) EmailValidation {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return EmailValidation{Error: EmailErrorFormatInvalid}
	}

	domain := strings.ToLower(email[strings.LastIndex(email, "@")+1:])
	if _, ok := disposableDomains[domain]; ok {
		return EmailValidation{Error: EmailErrorDisposableDomain}
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return EmailValidation{Error: EmailErrorDomainInvalid}
	}
	for _, label := range labels {
		if len(label) < 2 {
			return EmailValidation{Error: EmailErrorDomainInvalid}
		}
	}

	return EmailValidation{Valid: true}
}
