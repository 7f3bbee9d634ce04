package service

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)

const defaultPhoneRegion = "US"

// ContactInfo is what the Contact Us card shows.
type ContactInfo struct {
	Email     string
	Phone     string
	PhoneLink string
}

// NewContactInfo normalises the configured support contacts. An email that
// does not look like an address is dropped; a phone that does not parse is
// shown as configured without a tel: link.
func NewContactInfo(email, phone, region string) ContactInfo {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}

	info := ContactInfo{Email: normalizeEmail(email)}
	info.Phone, info.PhoneLink = formatPhone(phone, region)
	return info
}

func normalizeEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return ""
	}
	asciiDomain, err := idna.Lookup.ToASCII(domain)
	if err != nil || asciiDomain == "" {
		return ""
	}
	email = local + "@" + asciiDomain
	if !emailPattern.MatchString(email) {
		return ""
	}
	return email
}

func formatPhone(raw, region string) (display, link string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw, ""
	}
	return phonenumbers.Format(number, phonenumbers.INTERNATIONAL),
		"tel:" + phonenumbers.Format(number, phonenumbers.E164)
}
