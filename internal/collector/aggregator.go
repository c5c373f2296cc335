package collector

import (
	"errors"
	"fmt"

	"fpl-data-collector/internal/domain"
)

// MissingReferenceError reports a player whose team or position identifier
// has no corresponding entry in the same fetch.
type MissingReferenceError struct {
	PlayerID int
	Kind     string // "team" or "position"
	RefID    int
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("player %d references unknown %s id %d", e.PlayerID, e.Kind, e.RefID)
}

// AsMissingReferenceError attempts to unwrap an error into a MissingReferenceError.
func AsMissingReferenceError(err error) (*MissingReferenceError, bool) {
	var refErr *MissingReferenceError
	if errors.As(err, &refErr) {
		return refErr, true
	}
	return nil, false
}

// BuildRows joins players, teams, positions and live stats into one
// GameweekRow per player, preserving source order.
func BuildRows(bootstrap domain.Bootstrap, fixtures []domain.Fixture, live domain.LiveGameweek, gameweek int) ([]domain.GameweekRow, error) {
	teamsByID := make(map[int]domain.Team, len(bootstrap.Teams))
	for _, t := range bootstrap.Teams {
		teamsByID[t.ID] = t
	}
	positionsByID := make(map[int]domain.Position, len(bootstrap.Positions))
	for _, p := range bootstrap.Positions {
		positionsByID[p.ID] = p
	}

	rows := make([]domain.GameweekRow, 0, len(bootstrap.Players))
	for _, player := range bootstrap.Players {
		team, ok := teamsByID[player.TeamID]
		if !ok {
			return nil, &MissingReferenceError{PlayerID: player.ID, Kind: "team", RefID: player.TeamID}
		}
		position, ok := positionsByID[player.PositionID]
		if !ok {
			return nil, &MissingReferenceError{PlayerID: player.ID, Kind: "position", RefID: player.PositionID}
		}

		stats := live.Stats[player.ID]
		rows = append(rows, domain.GameweekRow{
			PlayerID:      player.ID,
			Name:          player.Name,
			Team:          team.Name,
			Position:      position.ShortName,
			TotalPoints:   player.TotalPoints,
			Gameweek:      gameweek,
			Cost:          player.Cost(),
			SelectedByPct: player.SelectedByPct,
			Form:          player.Form,
			Status:        player.Status,
			Minutes:       stats.Minutes,
			Goals:         stats.Goals,
			Assists:       stats.Assists,
			CleanSheets:   stats.CleanSheets,
			GoalsConceded: stats.GoalsConceded,
			Saves:         stats.Saves,
			Bonus:         stats.Bonus,
			BPS:           stats.BPS,
			YellowCards:   stats.YellowCards,
			RedCards:      stats.RedCards,
			Starts:        stats.Starts,
			GWPoints:      stats.Points,
			NextFixture:   nextFixtureLabel(player.TeamID, fixtures, teamsByID),
		})
	}
	return rows, nil
}

// nextFixtureLabel finds the first unfinished scheduled fixture for a team
// and renders it from the team's perspective, e.g. "Liverpool (H)".
func nextFixtureLabel(teamID int, fixtures []domain.Fixture, teamsByID map[int]domain.Team) string {
	for _, f := range fixtures {
		if f.Gameweek <= 0 || f.Finished {
			continue
		}
		switch teamID {
		case f.HomeTeamID:
			return fmt.Sprintf("%s (H)", opponentName(f.AwayTeamID, teamsByID))
		case f.AwayTeamID:
			return fmt.Sprintf("%s (A)", opponentName(f.HomeTeamID, teamsByID))
		}
	}
	return "N/A"
}

func opponentName(teamID int, teamsByID map[int]domain.Team) string {
	if team, ok := teamsByID[teamID]; ok {
		return team.Name
	}
	return "N/A"
}
