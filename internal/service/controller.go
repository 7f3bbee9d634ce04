package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
)

// Backend is the remote recommendation service.
type Backend interface {
	Recommend(ctx context.Context, ratings []float64) (string, error)
	EstimateCost(ctx context.Context, req dto.CostRequest) (float64, error)
	CityInfo(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error)
}

// Status is the lifecycle of a single form operation.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusPending  Status = "pending"
	StatusResolved Status = "resolved"
	StatusFailed   Status = "failed"
)

// Notification levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

const (
	msgRecommendationOK     = "City recommendation fetched!"
	msgRecommendationFailed = "Error fetching city recommendation."
	msgCostOK               = "Cost calculated!"
	msgCostFailed           = "Error calculating cost."
	msgCityInfoOK           = "City information fetched!"
	msgCityInfoFailed       = "Error fetching city information."
)

// Notification is the transient message shown after a submission.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func success(msg string) Notification { return Notification{Level: LevelSuccess, Message: msg} }
func failure(msg string) Notification { return Notification{Level: LevelError, Message: msg} }

func validationFailure(err error) Notification {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return failure(ve.Message)
	}
	return failure(msgFillRequired)
}

// slot owns one piece of result state. A failed call keeps the previous value.
// Reset bumps the generation so calls started before it cannot write back.
type slot[T any] struct {
	mu     sync.Mutex
	status Status
	value  T
	filled bool
	gen    uint64
}

func (s *slot[T]) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusPending
	return s.gen
}

func (s *slot[T]) resolve(gen uint64, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.value = v
	s.filled = true
	s.status = StatusResolved
}

func (s *slot[T]) fail(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.status = StatusFailed
}

func (s *slot[T]) load() (T, bool, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := s.status
	if status == "" {
		status = StatusIdle
	}
	return s.value, s.filled, status
}

func (s *slot[T]) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.filled = false
	s.status = StatusIdle
	s.gen++
}

// Snapshot is a point-in-time copy of the three result panels.
type Snapshot struct {
	Recommendation       string        `json:"recommended_city,omitempty"`
	RecommendationStatus Status        `json:"recommendation_status"`
	Cost                 *float64      `json:"average_cost,omitempty"`
	CostStatus           Status        `json:"cost_status"`
	CityInfo             *dto.CityInfo `json:"city_info,omitempty"`
	CityInfoStatus       Status        `json:"city_info_status"`
}

// FormController collects form input, calls the backend and keeps the
// latest result of each operation. Operations are independent and safe to
// run concurrently.
type FormController struct {
	backend Backend
	cities  *entity.CityList
	log     *zap.Logger

	recommendation slot[string]
	cost           slot[float64]
	cityInfo       slot[*dto.CityInfo]
}

// NewFormController builds a controller with empty result panels.
func NewFormController(backend Backend, cities *entity.CityList, log *zap.Logger) *FormController {
	if cities == nil {
		cities = entity.NewCityList(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FormController{backend: backend, cities: cities, log: log}
}

// Cities exposes the city list the controller validates against.
func (c *FormController) Cities() *entity.CityList {
	return c.cities
}

// SubmitRatings validates the ratings and asks the backend for a city.
// Nothing is sent when a category is left empty. The returned city is the
// one this call received, whatever other calls did to the panel meanwhile.
func (c *FormController) SubmitRatings(ctx context.Context, form dto.RatingsForm) (string, Notification, error) {
	ratings, err := ParseRatings(form)
	if err != nil {
		return "", validationFailure(err), err
	}

	gen := c.recommendation.begin()
	city, err := c.backend.Recommend(ctx, ratings)
	if err != nil {
		c.recommendation.fail(gen)
		c.log.Error("fetch city recommendation failed", zap.Error(err))
		return "", failure(msgRecommendationFailed), fmt.Errorf("recommendation: %w: %w", ErrRemoteCall, err)
	}

	c.recommendation.resolve(gen, city)
	return city, success(msgRecommendationOK), nil
}

// SubmitCostRequest forwards the trip parameters and stores the estimate.
func (c *FormController) SubmitCostRequest(ctx context.Context, form dto.CostForm) (float64, Notification, error) {
	req, err := ParseCostForm(form, c.cities)
	if err != nil {
		return 0, validationFailure(err), err
	}

	gen := c.cost.begin()
	cost, err := c.backend.EstimateCost(ctx, req)
	if err != nil {
		c.cost.fail(gen)
		c.log.Error("calculate cost failed",
			zap.Error(err),
			zap.String("city_name", req.CityName),
			zap.String("vacation_type", req.VacationType),
		)
		return 0, failure(msgCostFailed), fmt.Errorf("cost: %w: %w", ErrRemoteCall, err)
	}

	c.cost.resolve(gen, cost)
	return cost, success(msgCostOK), nil
}

// FetchCityInfo looks up hotels, places and restaurants for a city.
func (c *FormController) FetchCityInfo(ctx context.Context, form dto.CityInfoForm) (*dto.CityInfo, Notification, error) {
	city, vt, err := ParseCityInfoForm(form, c.cities)
	if err != nil {
		return nil, validationFailure(err), err
	}

	gen := c.cityInfo.begin()
	info, err := c.backend.CityInfo(ctx, city, string(vt))
	if err != nil {
		c.cityInfo.fail(gen)
		c.log.Error("fetch city info failed",
			zap.Error(err),
			zap.String("city_name", city),
			zap.String("vacation_type", string(vt)),
		)
		return nil, failure(msgCityInfoFailed), fmt.Errorf("city info: %w: %w", ErrRemoteCall, err)
	}

	c.cityInfo.resolve(gen, info.Clone())
	return info.Clone(), success(msgCityInfoOK), nil
}

// Snapshot copies the current state of all panels.
func (c *FormController) Snapshot() Snapshot {
	var snap Snapshot

	rec, ok, status := c.recommendation.load()
	if ok {
		snap.Recommendation = rec
	}
	snap.RecommendationStatus = status

	cost, ok, status := c.cost.load()
	if ok {
		snap.Cost = &cost
	}
	snap.CostStatus = status

	info, ok, status := c.cityInfo.load()
	if ok {
		snap.CityInfo = info.Clone()
	}
	snap.CityInfoStatus = status

	return snap
}

// Reset clears every panel, as a page reload would. Calls still in flight
// keep their own result but no longer write it to the panels.
func (c *FormController) Reset() {
	c.recommendation.reset()
	c.cost.reset()
	c.cityInfo.reset()
}
