package dto

// CityInfoForm is the raw city info lookup form.
type CityInfoForm struct {
	CityName     string `json:"city_name" form:"city_name" query:"city_name"`
	VacationType string `json:"vacation_type" form:"vacation_type" query:"vacation_type"`
}

// CityInfo is the structured travel metadata returned by GET /city-info.
type CityInfo struct {
	City          string       `json:"city"`
	Country       string       `json:"country"`
	Hotels        []Hotel      `json:"hotels"`
	PlacesToVisit []Place      `json:"places_to_visit"`
	Restaurants   []Restaurant `json:"restaurants"`
}

// Hotel lists lodging suggestions per travelling party.
type Hotel struct {
	CoupleHotel string `json:"couple_hotel"`
	FamilyHotel string `json:"family_hotel"`
	SoloHotel   string `json:"solo_hotel"`
}

// Place lists points of interest per trip style.
type Place struct {
	AdventurePlace  string `json:"Adventure_place"`
	CulturalPlace   string `json:"Cultural_place"`
	ExtremePlace    string `json:"Extreme_place"`
	HistoricalPlace string `json:"Historical_place"`
	RelaxPlace      string `json:"Relax_place"`
}

// Restaurant lists dining suggestions per travelling party.
type Restaurant struct {
	CoupleRest string `json:"couple_rest"`
	FamRest    string `json:"fam_rest"`
	SoloRest   string `json:"solo_rest"`
}

// Clone returns a deep copy so callers can hand it out without sharing slices.
func (c *CityInfo) Clone() *CityInfo {
	if c == nil {
		return nil
	}
	out := &CityInfo{City: c.City, Country: c.Country}
	if c.Hotels != nil {
		out.Hotels = append([]Hotel(nil), c.Hotels...)
	}
	if c.PlacesToVisit != nil {
		out.PlacesToVisit = append([]Place(nil), c.PlacesToVisit...)
	}
	if c.Restaurants != nil {
		out.Restaurants = append([]Restaurant(nil), c.Restaurants...)
	}
	return out
}
