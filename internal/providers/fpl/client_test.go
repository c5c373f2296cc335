package fpl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"fpl-data-collector/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const bootstrapBody = `{
	"events": [
		{ "id": 4, "name": "Gameweek 4", "is_current": false, "is_next": false, "finished": true },
		{ "id": 5, "name": "Gameweek 5", "is_current": true, "is_next": false, "finished": false }
	],
	"teams": [
		{ "id": 1, "name": "Arsenal", "short_name": "ARS" }
	],
	"element_types": [
		{ "id": 1, "singular_name": "Goalkeeper", "singular_name_short": "GK" }
	],
	"elements": [
		{
			"id": 1, "web_name": "Raya", "team": 1, "element_type": 1,
			"total_points": 10, "event_points": 2, "minutes": 450,
			"goals_scored": 0, "assists": 0, "clean_sheets": 3,
			"goals_conceded": 2, "saves": 14, "bonus": 1, "bps": 120,
			"yellow_cards": 0, "red_cards": 0, "starts": 5,
			"now_cost": 55, "selected_by_percent": "12.3", "form": "4.2", "status": "a"
		}
	]
}`

func TestFetchBootstrapHitsAPIAndMapsResponse(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		if ua := req.Header.Get("User-Agent"); ua != "fpl-data-collector" {
			t.Fatalf("expected user agent header, got %q", ua)
		}
		return jsonResponse(http.StatusOK, bootstrapBody), nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com/api/",
		HTTPClient: &http.Client{Transport: rt},
		UserAgent:  "fpl-data-collector",
	})

	bootstrap, err := client.FetchBootstrap(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/api/bootstrap-static/" {
		t.Fatalf("expected bootstrap-static path, got %s", capturedPath)
	}
	if len(bootstrap.Players) != 1 || len(bootstrap.Teams) != 1 || len(bootstrap.Positions) != 1 {
		t.Fatalf("unexpected bootstrap sizes: %+v", bootstrap)
	}

	p := bootstrap.Players[0]
	if p.ID != 1 || p.Name != "Raya" || p.TeamID != 1 || p.PositionID != 1 {
		t.Fatalf("unexpected player mapping: %+v", p)
	}
	if p.TotalPoints != 10 || p.Saves != 14 || p.NowCost != 55 {
		t.Fatalf("unexpected player stats: %+v", p)
	}
	if !bootstrap.Events[1].IsCurrent {
		t.Fatalf("expected event 5 to be current")
	}
}

func TestFetchBootstrapServerErrorIsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"detail":"boom"}`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchBootstrap(context.Background())
	netErr, ok := providers.AsNetworkError(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", netErr.StatusCode)
	}
}

func TestFetchBootstrapConnectionFailureIsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchBootstrap(context.Background())
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestFetchBootstrapMalformedJSONIsDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"teams": [`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchBootstrap(context.Background())
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestFetchBootstrapEmptySectionsIsDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"events": [], "teams": [], "element_types": [], "elements": []}`), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchBootstrap(context.Background())
	if _, ok := providers.AsDecodeError(err); !ok {
		t.Fatalf("expected DecodeError for empty payload, got %v", err)
	}
}

func TestFetchFixturesMapsNullableEvent(t *testing.T) {
	body := `[
		{ "id": 1, "event": 5, "team_h": 1, "team_a": 2, "kickoff_time": "2025-09-13T14:00:00Z", "finished": false },
		{ "id": 2, "event": null, "team_h": 3, "team_a": 4, "kickoff_time": "", "finished": false }
	]`
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/fixtures/" {
			t.Fatalf("expected /fixtures/ path, got %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, body), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	fixtures, err := client.FetchFixtures(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].Gameweek != 5 || fixtures[0].HomeTeamID != 1 || fixtures[0].AwayTeamID != 2 {
		t.Fatalf("unexpected fixture mapping: %+v", fixtures[0])
	}
	if fixtures[1].Gameweek != 0 {
		t.Fatalf("expected unscheduled fixture to map to gameweek 0, got %d", fixtures[1].Gameweek)
	}
}

func TestFetchLiveBuildsStatsByPlayerID(t *testing.T) {
	body := `{
		"elements": [
			{ "id": 7, "stats": { "minutes": 90, "goals_scored": 2, "assists": 1, "total_points": 13, "bps": 44 } }
		]
	}`
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return jsonResponse(http.StatusOK, body), nil
	})

	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	live, err := client.FetchLive(context.Background(), 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/event/5/live/" {
		t.Fatalf("expected live endpoint for gameweek 5, got %s", capturedPath)
	}
	if live.Gameweek != 5 {
		t.Fatalf("expected gameweek 5, got %d", live.Gameweek)
	}
	stats, ok := live.Stats[7]
	if !ok {
		t.Fatalf("expected stats for player 7")
	}
	if stats.Minutes != 90 || stats.Goals != 2 || stats.Points != 13 {
		t.Fatalf("unexpected live stats: %+v", stats)
	}
}
