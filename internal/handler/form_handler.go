package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
	middleware "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/service"
	"github.com/octobees/vacation-recommendations/web/internal/view"
)

// FormHandler serves the server-rendered page and its three forms.
type FormHandler struct {
	contact service.ContactInfo
	now     func() time.Time
}

// NewFormHandler constructs a form handler showing contact in the Contact Us card.
func NewFormHandler(contact service.ContactInfo) *FormHandler {
	return &FormHandler{contact: contact, now: time.Now}
}

// Index handles GET /. A reload starts from empty result panels.
func (h *FormHandler) Index(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	ctrl.Reset()
	return c.Render(http.StatusOK, view.IndexTemplate, h.page(ctrl))
}

// SubmitRatings handles POST /recommendations.
func (h *FormHandler) SubmitRatings(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	form := make(dto.RatingsForm)
	for _, cat := range entity.Categories() {
		form[string(cat)] = c.FormValue(string(cat))
	}

	_, note, err := ctrl.SubmitRatings(c.Request().Context(), form)
	page := h.page(ctrl)
	page.Notification = &note
	page.Ratings = form
	page.RatingErrors = validationFields(err)
	return c.Render(statusFor(err), view.IndexTemplate, page)
}

// SubmitCost handles POST /cost.
func (h *FormHandler) SubmitCost(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	form := dto.CostForm{
		VacationType: c.FormValue("vacation_type"),
		NumChildren:  c.FormValue("num_children"),
		NumDays:      c.FormValue("num_days"),
		CityName:     c.FormValue("city_name"),
	}

	_, note, err := ctrl.SubmitCostRequest(c.Request().Context(), form)
	page := h.page(ctrl)
	page.Notification = &note
	page.CostForm = form
	page.CostErrors = validationFields(err)
	return c.Render(statusFor(err), view.IndexTemplate, page)
}

// FetchCityInfo handles POST /city-info.
func (h *FormHandler) FetchCityInfo(c echo.Context) error {
	ctrl := middleware.ControllerFromContext(c)
	if ctrl == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}

	form := dto.CityInfoForm{
		CityName:     c.FormValue("city_name"),
		VacationType: c.FormValue("vacation_type"),
	}

	_, note, err := ctrl.FetchCityInfo(c.Request().Context(), form)
	page := h.page(ctrl)
	page.Notification = &note
	page.CityInfoForm = form
	page.CityInfoErrors = validationFields(err)
	return c.Render(statusFor(err), view.IndexTemplate, page)
}

func (h *FormHandler) page(ctrl *service.FormController) *view.Page {
	page := view.NewPage(ctrl.Cities(), h.contact, h.now().Year())
	page.Snapshot = ctrl.Snapshot()
	return page
}
