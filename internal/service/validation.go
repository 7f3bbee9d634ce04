package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
)

const (
	msgFillRatings     = "Please fill all ratings."
	msgNumericRatings  = "Ratings must be numbers."
	msgFillRequired    = "Please fill all required fields."
	msgVacationType    = "Please select a vacation type!"
	msgNumChildren     = "Please input the number of children!"
	msgNumDays         = "Please input the number of days!"
	msgCityName        = "Please select the city name!"
	msgUnknownCity     = "Please select a city from the list!"
	msgUnknownVacation = "Please select solo, couple or family!"
	msgWholeNumber     = "Please input a whole number!"
)

// ParseRatings converts the raw ratings form into numbers ordered like
// entity.Categories. Every category must be filled in. The 0-5 range is only
// a hint and is left to the backend.
func ParseRatings(form dto.RatingsForm) ([]float64, error) {
	cats := entity.Categories()
	ratings := make([]float64, 0, len(cats))
	fields := make(map[string]string)
	missing := false

	for _, cat := range cats {
		raw := strings.TrimSpace(form[string(cat)])
		if raw == "" {
			fields[string(cat)] = "Please rate " + string(cat) + "!"
			missing = true
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fields[string(cat)] = "Please rate " + string(cat) + " with a number!"
			continue
		}
		ratings = append(ratings, v)
	}

	if len(fields) > 0 {
		msg := msgNumericRatings
		if missing {
			msg = msgFillRatings
		}
		return nil, &ValidationError{Message: msg, Fields: fields}
	}
	return ratings, nil
}

// ParseCostForm checks required fields and builds the backend payload.
func ParseCostForm(form dto.CostForm, cities *entity.CityList) (dto.CostRequest, error) {
	fields := make(map[string]string)
	var req dto.CostRequest

	if vt, ok := parseVacationField(form.VacationType, fields); ok {
		req.VacationType = string(vt)
	}
	if n, ok := parseIntField("num_children", form.NumChildren, msgNumChildren, fields); ok {
		req.NumChildren = n
	}
	if n, ok := parseIntField("num_days", form.NumDays, msgNumDays, fields); ok {
		req.NumDays = n
	}
	if city, ok := parseCityField(form.CityName, cities, fields); ok {
		req.CityName = city
	}

	if len(fields) > 0 {
		return dto.CostRequest{}, &ValidationError{Message: msgFillRequired, Fields: fields}
	}
	return req, nil
}

// ParseCityInfoForm checks the lookup form and returns the canonical city and vacation type.
func ParseCityInfoForm(form dto.CityInfoForm, cities *entity.CityList) (string, entity.VacationType, error) {
	fields := make(map[string]string)
	city, _ := parseCityField(form.CityName, cities, fields)
	vt, _ := parseVacationField(form.VacationType, fields)

	if len(fields) > 0 {
		return "", "", &ValidationError{Message: msgFillRequired, Fields: fields}
	}
	return city, vt, nil
}

func parseVacationField(raw string, fields map[string]string) (entity.VacationType, bool) {
	if strings.TrimSpace(raw) == "" {
		fields["vacation_type"] = msgVacationType
		return "", false
	}
	vt, err := entity.ParseVacationType(raw)
	if err != nil {
		fields["vacation_type"] = msgUnknownVacation
		return "", false
	}
	return vt, true
}

func parseCityField(raw string, cities *entity.CityList, fields map[string]string) (string, bool) {
	if strings.TrimSpace(raw) == "" {
		fields["city_name"] = msgCityName
		return "", false
	}
	city, ok := cities.Lookup(raw)
	if !ok {
		fields["city_name"] = msgUnknownCity
		return "", false
	}
	return city, true
}

func parseIntField(name, raw, requiredMsg string, fields map[string]string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		fields[name] = requiredMsg
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = msgWholeNumber
		return 0, false
	}
	return n, true
}
