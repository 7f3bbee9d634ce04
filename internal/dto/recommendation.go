package dto

// RecommendationRequest is the backend payload for POST /recommendations.
// Ratings follow entity.Categories order.
type RecommendationRequest struct {
	Ratings []float64 `json:"ratings"`
}

// RecommendationResponse carries the city picked by the recommendation model.
type RecommendationResponse struct {
	RecommendedCity string `json:"recommended_city"`
}

// RecommendationAPIRequest is accepted by the JSON API. Missing categories are
// reported as validation errors.
type RecommendationAPIRequest struct {
	Ratings map[string]*float64 `json:"ratings"`
}

// RatingsForm maps category names to the raw values typed into the form.
type RatingsForm map[string]string
