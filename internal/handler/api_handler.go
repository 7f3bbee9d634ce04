package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	middleware "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/service"
)

// APIHandler exposes the three form operations as JSON endpoints sharing the
// visitor's session state.
type APIHandler struct{}

// NewAPIHandler constructs the JSON API handler.
func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Recommend handles POST /api/recommendations.
func (h *APIHandler) Recommend(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	var req dto.RecommendationAPIRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	form := make(dto.RatingsForm, len(req.Ratings))
	for cat, v := range req.Ratings {
		if v != nil {
			form[cat] = strconv.FormatFloat(*v, 'f', -1, 64)
		}
	}

	city, note, err := ctrl.SubmitRatings(c.Request().Context(), form)
	if err != nil {
		return failed(c, note, err)
	}
	return Success(c, http.StatusOK, note.Message, dto.RecommendationResponse{RecommendedCity: city})
}

// EstimateCost handles POST /api/cost.
func (h *APIHandler) EstimateCost(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	var req dto.CostAPIRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	form := dto.CostForm{
		VacationType: req.VacationType,
		NumChildren:  optionalInt(req.NumChildren),
		NumDays:      optionalInt(req.NumDays),
		CityName:     req.CityName,
	}

	cost, note, err := ctrl.SubmitCostRequest(c.Request().Context(), form)
	if err != nil {
		return failed(c, note, err)
	}
	return Success(c, http.StatusOK, note.Message, dto.CostResponse{AverageCost: cost})
}

// CityInfo handles GET /api/city-info.
func (h *APIHandler) CityInfo(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}

	form := dto.CityInfoForm{
		CityName:     c.QueryParam("city_name"),
		VacationType: c.QueryParam("vacation_type"),
	}

	info, note, err := ctrl.FetchCityInfo(c.Request().Context(), form)
	if err != nil {
		return failed(c, note, err)
	}
	return Success(c, http.StatusOK, note.Message, info)
}

// State handles GET /api/state and reports all three panels.
func (h *APIHandler) State(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return Error(c, http.StatusInternalServerError, "session unavailable")
	}
	return Success(c, http.StatusOK, "", ctrl.Snapshot())
}

func failed(c echo.Context, note service.Notification, err error) error {
	status := statusFor(err)
	if status == http.StatusUnprocessableEntity {
		return Invalid(c, note.Message, validationFields(err))
	}
	return Error(c, status, note.Message)
}

func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
