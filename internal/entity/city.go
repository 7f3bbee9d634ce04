package entity

import "strings"

// DefaultCities is the city list offered when no override is configured.
var DefaultCities = []string{
	"Amsterdam",
	"Athens",
	"Bangkok",
	"Barcelona",
	"Berlin",
	"Budapest",
	"Buenos Aires",
	"Cairo",
	"Cape Town",
	"Dubai",
	"Dublin",
	"Florence",
	"Hong Kong",
	"Istanbul",
	"Kyoto",
	"Lisbon",
	"London",
	"Los Angeles",
	"Madrid",
	"Marrakech",
	"Mexico City",
	"Moscow",
	"New York",
	"Paris",
	"Prague",
	"Rio de Janeiro",
	"Rome",
	"Seoul",
	"Singapore",
	"Sydney",
	"Tokyo",
	"Toronto",
	"Venice",
	"Vienna",
}

// CityList is an ordered set of selectable city names.
type CityList struct {
	names []string
	index map[string]string
}

// NewCityList builds a list from names, dropping blanks and case-insensitive duplicates.
// An empty input falls back to DefaultCities.
func NewCityList(names []string) *CityList {
	if len(names) == 0 {
		names = DefaultCities
	}
	l := &CityList{index: make(map[string]string, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := l.index[key]; dup {
			continue
		}
		l.index[key] = n
		l.names = append(l.names, n)
	}
	return l
}

// Names returns the cities in display order.
func (l *CityList) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Lookup returns the canonical spelling of name when it is a known city.
func (l *CityList) Lookup(name string) (string, bool) {
	canonical, ok := l.index[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}
