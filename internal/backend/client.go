package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
	"google.golang.org/api/idtoken"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
)

const defaultTimeout = 15 * time.Second

type requestIDKey struct{}

// WithRequestID attaches a request identifier that is forwarded as X-Request-ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func requestIDFrom(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// Client talks to the recommendation service over HTTP/JSON.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewHTTPClient builds a plain HTTP client with a cookie jar, so backend
// session cookies survive across calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err == nil {
		client.Jar = jar
	}
	return client
}

// NewIDTokenClient builds a client that signs calls with a Google ID token
// for audience (Cloud Run to Cloud Run) and gives up after timeout.
func NewIDTokenClient(ctx context.Context, audience string, timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	client, err := idtoken.NewClient(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("create id token client: %w", err)
	}
	client.Timeout = timeout
	return client, nil
}

// NewClient builds a backend client. If client is nil it tries an ID-token
// client for authenticated service-to-service calls and falls back to NewHTTPClient.
func NewClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		panic("backend baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := NewIDTokenClient(context.Background(), baseURL, defaultTimeout)
		if err != nil {
			client = NewHTTPClient(defaultTimeout)
		} else {
			client = idc
		}
	}
	return &Client{client: client, baseURL: baseURL}
}

// Recommend submits ratings in category order and returns the recommended city.
func (c *Client) Recommend(ctx context.Context, ratings []float64) (string, error) {
	var out dto.RecommendationResponse
	if err := c.postJSON(ctx, "/recommendations", dto.RecommendationRequest{Ratings: ratings}, &out); err != nil {
		return "", err
	}
	if strings.TrimSpace(out.RecommendedCity) == "" {
		return "", fmt.Errorf("backend returned an empty recommendation")
	}
	return out.RecommendedCity, nil
}

// EstimateCost forwards the trip parameters and returns the average cost.
func (c *Client) EstimateCost(ctx context.Context, req dto.CostRequest) (float64, error) {
	var out dto.CostResponse
	if err := c.postJSON(ctx, "/cost", req, &out); err != nil {
		return 0, err
	}
	return out.AverageCost, nil
}

// CityInfo looks up travel metadata for a city and vacation type.
func (c *Client) CityInfo(ctx context.Context, cityName, vacationType string) (*dto.CityInfo, error) {
	q := url.Values{}
	q.Set("city_name", cityName)
	q.Set("vacation_type", vacationType)

	var out dto.CityInfo
	if err := c.getJSON(ctx, "/city-info", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if rid := requestIDFrom(req.Context()); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("backend error (%d): %s", resp.StatusCode, extractBackendError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return fmt.Errorf("backend returned an empty body")
		}
		return fmt.Errorf("could not decode backend response: %w", err)
	}
	return nil
}

func extractBackendError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return "backend returned an error"
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "backend returned an error"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}
