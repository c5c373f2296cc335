package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"fpl-data-collector/internal/domain"
	"fpl-data-collector/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the FPL client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Client fetches data from the public FPL API and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
}

// NewClient constructs an FPL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		userAgent:  cfg.UserAgent,
	}
}

// FetchBootstrap retrieves and validates the bootstrap-static payload.
func (c *Client) FetchBootstrap(ctx context.Context) (domain.Bootstrap, error) {
	var payload bootstrapResponse
	if err := c.getJSON(ctx, endpointBootstrap, &payload); err != nil {
		return domain.Bootstrap{}, err
	}
	return mapBootstrap(payload)
}

// FetchFixtures retrieves the season fixture list.
func (c *Client) FetchFixtures(ctx context.Context) ([]domain.Fixture, error) {
	var payload []fixtureResponse
	if err := c.getJSON(ctx, endpointFixtures, &payload); err != nil {
		return nil, err
	}
	fixtures := make([]domain.Fixture, 0, len(payload))
	for _, f := range payload {
		fixtures = append(fixtures, mapFixture(f))
	}
	return fixtures, nil
}

// FetchLive retrieves per-player stats for one gameweek.
func (c *Client) FetchLive(ctx context.Context, gameweek int) (domain.LiveGameweek, error) {
	endpoint := fmt.Sprintf("/event/%d/live/", gameweek)
	var payload liveResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return domain.LiveGameweek{}, err
	}
	return mapLive(gameweek, payload), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &providers.NetworkError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.NetworkError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return &providers.NetworkError{Provider: providerName, Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &providers.DecodeError{Provider: providerName, Endpoint: endpoint, Err: err}
	}
	return nil
}
