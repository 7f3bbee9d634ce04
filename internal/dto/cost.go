package dto

// CostRequest is the backend payload for POST /cost.
type CostRequest struct {
	VacationType string `json:"vacation_type"`
	NumChildren  int    `json:"num_children"`
	NumDays      int    `json:"num_days"`
	CityName     string `json:"city_name"`
}

// CostResponse holds the estimated trip cost.
type CostResponse struct {
	AverageCost float64 `json:"average_cost"`
}

// CostForm is the raw cost form as submitted by the browser.
type CostForm struct {
	VacationType string `json:"vacation_type" form:"vacation_type"`
	NumChildren  string `json:"num_children" form:"num_children"`
	NumDays      string `json:"num_days" form:"num_days"`
	CityName     string `json:"city_name" form:"city_name"`
}

// CostAPIRequest is accepted by the JSON API. Pointers tell a missing count
// apart from zero.
type CostAPIRequest struct {
	VacationType string `json:"vacation_type"`
	NumChildren  *int   `json:"num_children"`
	NumDays      *int   `json:"num_days"`
	CityName     string `json:"city_name"`
}
