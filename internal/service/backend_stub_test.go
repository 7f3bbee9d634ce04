package service

import (
	"context"
	"errors"
	"sync"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
)

type stubBackend struct {
	mu sync.Mutex

	recommend    func(ctx context.Context, ratings []float64) (string, error)
	estimateCost func(ctx context.Context, req dto.CostRequest) (float64, error)
	cityInfo     func(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error)

	recommendCalls int
	costCalls      int
	cityInfoCalls  int
	lastRatings    []float64
	lastCost       dto.CostRequest
}

func (s *stubBackend) Recommend(ctx context.Context, ratings []float64) (string, error) {
	s.mu.Lock()
	s.recommendCalls++
	s.lastRatings = append([]float64(nil), ratings...)
	s.mu.Unlock()
	if s.recommend != nil {
		return s.recommend(ctx, ratings)
	}
	return "", errors.New("Recommend not implemented")
}

func (s *stubBackend) EstimateCost(ctx context.Context, req dto.CostRequest) (float64, error) {
	s.mu.Lock()
	s.costCalls++
	s.lastCost = req
	s.mu.Unlock()
	if s.estimateCost != nil {
		return s.estimateCost(ctx, req)
	}
	return 0, errors.New("EstimateCost not implemented")
}

func (s *stubBackend) CityInfo(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error) {
	s.mu.Lock()
	s.cityInfoCalls++
	s.mu.Unlock()
	if s.cityInfo != nil {
		return s.cityInfo(ctx, cityName, vacationType)
	}
	return nil, errors.New("CityInfo not implemented")
}

func fullRatings() dto.RatingsForm {
	return dto.RatingsForm{
		"Gyms":           "1",
		"Local_Services": "2",
		"Monuments":      "3",
		"Museums":        "4",
		"Parks":          "5",
		"Restaurants":    "0",
		"Swimming_Pools": "1.5",
		"Theatres":       "2",
		"View_Points":    "3",
	}
}
