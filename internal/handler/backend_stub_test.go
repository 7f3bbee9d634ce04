package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
	middleware "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/service"
	"github.com/octobees/vacation-recommendations/web/internal/view"
)

type backendStub struct {
	mu sync.Mutex

	city    string
	cost    float64
	info    *dto.CityInfo
	err     error
	calls   int
	ratings []float64
	costReq dto.CostRequest
	query   [2]string
}

func (s *backendStub) Recommend(ctx context.Context, ratings []float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.ratings = append([]float64(nil), ratings...)
	return s.city, s.err
}

func (s *backendStub) EstimateCost(ctx context.Context, req dto.CostRequest) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.costReq = req
	return s.cost, s.err
}

func (s *backendStub) CityInfo(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.query = [2]string{cityName, vacationType}
	if s.err != nil {
		return nil, s.err
	}
	if s.info == nil {
		return nil, errors.New("no city info")
	}
	return s.info, nil
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := echo.New()
	e.Renderer = renderer
	return e
}

func newTestController(b service.Backend) *service.FormController {
	return service.NewFormController(b, entity.NewCityList([]string{"Paris", "Rome", "New York"}), nil)
}

func newFormContext(e *echo.Echo, ctrl *service.FormController, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ctrl != nil {
		c.Set(middleware.ContextKeyController, ctrl)
	}
	return c, rec
}

func fullRatingsValues() url.Values {
	values := url.Values{}
	for i, cat := range entity.Categories() {
		values.Set(string(cat), []string{"1", "2", "3", "4", "5", "0", "1.5", "2.5", "3.5"}[i])
	}
	return values
}
