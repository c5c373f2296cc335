package fixture

import (
	"context"

	"fpl-data-collector/internal/domain"
)

// Provider returns a static dataset useful for local runs and testing the
// pipeline without touching the live API.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchBootstrap returns a deterministic two-team, three-player bootstrap.
func (p *Provider) FetchBootstrap(ctx context.Context) (domain.Bootstrap, error) {
	_ = ctx
	return domain.Bootstrap{
		Events: []domain.Event{
			{ID: 1, Name: "Gameweek 1", Finished: true},
			{ID: 2, Name: "Gameweek 2", IsCurrent: true},
			{ID: 3, Name: "Gameweek 3", IsNext: true},
		},
		Teams: []domain.Team{
			{ID: 1, Name: "Arsenal", ShortName: "ARS"},
			{ID: 2, Name: "Liverpool", ShortName: "LIV"},
		},
		Positions: []domain.Position{
			{ID: 1, Name: "Goalkeeper", ShortName: "GK"},
			{ID: 3, Name: "Midfielder", ShortName: "MID"},
			{ID: 4, Name: "Forward", ShortName: "FWD"},
		},
		Players: []domain.Player{
			{ID: 1, Name: "Raya", TeamID: 1, PositionID: 1, TotalPoints: 12, NowCost: 55, SelectedByPct: "14.1", Form: "4.0", Status: domain.StatusAvailable},
			{ID: 2, Name: "Saka", TeamID: 1, PositionID: 3, TotalPoints: 21, NowCost: 102, SelectedByPct: "38.6", Form: "7.5", Status: domain.StatusAvailable},
			{ID: 3, Name: "Salah", TeamID: 2, PositionID: 4, TotalPoints: 25, NowCost: 128, SelectedByPct: "55.2", Form: "9.0", Status: domain.StatusAvailable},
		},
	}, nil
}

// FetchFixtures returns a deterministic fixture list spanning the events.
func (p *Provider) FetchFixtures(ctx context.Context) ([]domain.Fixture, error) {
	_ = ctx
	return []domain.Fixture{
		{ID: 1, Gameweek: 1, HomeTeamID: 1, AwayTeamID: 2, KickoffTime: "2025-08-16T14:00:00Z", Finished: true},
		{ID: 2, Gameweek: 2, HomeTeamID: 2, AwayTeamID: 1, KickoffTime: "2025-08-23T14:00:00Z", Finished: false},
		{ID: 3, Gameweek: 3, HomeTeamID: 1, AwayTeamID: 2, KickoffTime: "2025-08-30T14:00:00Z", Finished: false},
	}, nil
}

// FetchLive returns deterministic per-player stats for the given gameweek.
func (p *Provider) FetchLive(ctx context.Context, gameweek int) (domain.LiveGameweek, error) {
	_ = ctx
	return domain.LiveGameweek{
		Gameweek: gameweek,
		Stats: map[int]domain.LiveStats{
			1: {Minutes: 90, Saves: 4, CleanSheets: 1, Points: 7, Starts: 1},
			2: {Minutes: 90, Goals: 1, Assists: 1, Points: 12, Starts: 1, Bonus: 3, BPS: 52},
			3: {Minutes: 78, Goals: 2, Points: 13, Starts: 1, Bonus: 3, BPS: 60},
		},
	}, nil
}
