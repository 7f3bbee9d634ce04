package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/config"
	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
	"github.com/octobees/vacation-recommendations/web/internal/handler"
	middlewarepkg "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/service"
	"github.com/octobees/vacation-recommendations/web/internal/session"
	"github.com/octobees/vacation-recommendations/web/internal/view"
)

type fixedBackend struct{}

func (fixedBackend) Recommend(ctx context.Context, ratings []float64) (string, error) {
	return "Kyoto", nil
}

func (fixedBackend) EstimateCost(ctx context.Context, req dto.CostRequest) (float64, error) {
	return 980.5, nil
}

func (fixedBackend) CityInfo(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error) {
	return &dto.CityInfo{City: cityName, Country: "Japan"}, nil
}

func newTestServer(t *testing.T, limit config.RateLimitConfig) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cities := entity.NewCityList([]string{"Kyoto", "Paris"})
	store := session.NewStore(time.Hour, func() *service.FormController {
		return service.NewFormController(fixedBackend{}, cities, nil)
	})

	e := echo.New()
	e.Renderer = renderer
	e.Use(middlewarepkg.RequestID())
	Register(e, &config.Config{RateLimitSubmit: limit},
		Sessions{Tokens: session.NewTokenManager("secret", time.Hour), Store: store},
		Handlers{Form: handler.NewFormHandler(service.ContactInfo{}), API: handler.NewAPIHandler()},
	)
	return e
}

func TestRegister_Healthz(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no session cookie on healthz")
	}
}

func TestRegister_SessionKeepsResults(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{})

	form := url.Values{}
	for _, cat := range entity.Categories() {
		form.Set(string(cat), "3")
	}
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middlewarepkg.SessionCookieName {
		t.Fatalf("expected session cookie, got %v", cookies)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/city-info?city_name=kyoto&vacation_type=solo", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/state", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `"recommended_city":"Kyoto"`) || !strings.Contains(body, `"country":"Japan"`) {
		t.Fatalf("expected both results in session state, got %s", body)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if strings.Contains(rec.Body.String(), "Recommended City:") {
		t.Fatalf("expected reload to clear results")
	}
}

func TestRegister_SubmitRateLimit(t *testing.T) {
	e := newTestServer(t, config.RateLimitConfig{Requests: 1, Interval: time.Hour})

	body := `{"vacation_type":"solo","num_children":0,"num_days":3,"city_name":"Paris"}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/cost", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes: %v", codes)
	}
}
