package entity

import (
	"fmt"
	"strings"
)

// VacationType is the travelling party a trip is planned for.
type VacationType string

const (
	VacationSolo   VacationType = "solo"
	VacationCouple VacationType = "couple"
	VacationFamily VacationType = "family"
)

// VacationTypes lists the selectable vacation types in display order.
func VacationTypes() []VacationType {
	return []VacationType{VacationSolo, VacationCouple, VacationFamily}
}

// ParseVacationType normalises raw form input into a known vacation type.
func ParseVacationType(raw string) (VacationType, error) {
	v := VacationType(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case VacationSolo, VacationCouple, VacationFamily:
		return v, nil
	default:
		return "", fmt.Errorf("unknown vacation type %q", raw)
	}
}

// Label returns the capitalised name shown in selects.
func (v VacationType) Label() string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}
