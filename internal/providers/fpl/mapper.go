package fpl

import (
	"fmt"

	"fpl-data-collector/internal/domain"
	"fpl-data-collector/internal/providers"
)

// mapBootstrap validates the raw payload and converts it to domain shapes.
// Missing required fields are a DecodeError: the payload parsed but is not
// the bootstrap-static contract.
func mapBootstrap(payload bootstrapResponse) (domain.Bootstrap, error) {
	if len(payload.Teams) == 0 || len(payload.ElementTypes) == 0 || len(payload.Elements) == 0 {
		return domain.Bootstrap{}, &providers.DecodeError{
			Provider: providerName,
			Endpoint: endpointBootstrap,
			Err:      fmt.Errorf("bootstrap payload missing teams, element_types or elements"),
		}
	}

	b := domain.Bootstrap{
		Events:    make([]domain.Event, 0, len(payload.Events)),
		Teams:     make([]domain.Team, 0, len(payload.Teams)),
		Positions: make([]domain.Position, 0, len(payload.ElementTypes)),
		Players:   make([]domain.Player, 0, len(payload.Elements)),
	}

	for _, e := range payload.Events {
		b.Events = append(b.Events, domain.Event{
			ID:        e.ID,
			Name:      e.Name,
			IsCurrent: e.IsCurrent,
			IsNext:    e.IsNext,
			Finished:  e.Finished,
		})
	}
	for _, t := range payload.Teams {
		if t.ID <= 0 || t.Name == "" {
			return domain.Bootstrap{}, invalidField("teams", t.ID)
		}
		b.Teams = append(b.Teams, domain.Team{ID: t.ID, Name: t.Name, ShortName: t.ShortName})
	}
	for _, et := range payload.ElementTypes {
		if et.ID <= 0 || et.SingularNameShort == "" {
			return domain.Bootstrap{}, invalidField("element_types", et.ID)
		}
		b.Positions = append(b.Positions, domain.Position{
			ID:        et.ID,
			Name:      et.SingularName,
			ShortName: et.SingularNameShort,
		})
	}
	for _, el := range payload.Elements {
		if el.ID <= 0 || el.Team <= 0 || el.ElementType <= 0 {
			return domain.Bootstrap{}, invalidField("elements", el.ID)
		}
		b.Players = append(b.Players, mapPlayer(el))
	}
	return b, nil
}

func mapPlayer(el elementResponse) domain.Player {
	return domain.Player{
		ID:            el.ID,
		Name:          el.WebName,
		TeamID:        el.Team,
		PositionID:    el.ElementType,
		TotalPoints:   el.TotalPoints,
		EventPoints:   el.EventPoints,
		Minutes:       el.Minutes,
		Goals:         el.GoalsScored,
		Assists:       el.Assists,
		CleanSheets:   el.CleanSheets,
		GoalsConceded: el.GoalsConceded,
		Saves:         el.Saves,
		Bonus:         el.Bonus,
		BPS:           el.BPS,
		YellowCards:   el.YellowCards,
		RedCards:      el.RedCards,
		Starts:        el.Starts,
		NowCost:       el.NowCost,
		SelectedByPct: el.SelectedBy,
		Form:          el.Form,
		Status:        domain.PlayerStatus(el.Status),
	}
}

func mapFixture(f fixtureResponse) domain.Fixture {
	gw := 0
	if f.Event != nil {
		gw = *f.Event
	}
	return domain.Fixture{
		ID:          f.ID,
		Gameweek:    gw,
		HomeTeamID:  f.TeamH,
		AwayTeamID:  f.TeamA,
		KickoffTime: f.KickoffTime,
		Finished:    f.Finished,
	}
}

func mapLive(gameweek int, payload liveResponse) domain.LiveGameweek {
	live := domain.LiveGameweek{
		Gameweek: gameweek,
		Stats:    make(map[int]domain.LiveStats, len(payload.Elements)),
	}
	for _, el := range payload.Elements {
		live.Stats[el.ID] = domain.LiveStats{
			Minutes:       el.Stats.Minutes,
			Goals:         el.Stats.GoalsScored,
			Assists:       el.Stats.Assists,
			CleanSheets:   el.Stats.CleanSheets,
			GoalsConceded: el.Stats.GoalsConceded,
			Saves:         el.Stats.Saves,
			Bonus:         el.Stats.Bonus,
			BPS:           el.Stats.BPS,
			YellowCards:   el.Stats.YellowCards,
			RedCards:      el.Stats.RedCards,
			Starts:        el.Stats.Starts,
			Points:        el.Stats.TotalPoints,
		}
	}
	return live
}

func invalidField(section string, id int) error {
	return &providers.DecodeError{
		Provider: providerName,
		Endpoint: endpointBootstrap,
		Err:      fmt.Errorf("bootstrap %s entry %d missing required fields", section, id),
	}
}
