package collector

import (
	"errors"

	"fpl-data-collector/internal/domain"
)

// ErrNoEvents is returned when bootstrap data carries no gameweek events at
// all, leaving nothing to resolve a gameweek against.
var ErrNoEvents = errors.New("bootstrap data contains no gameweek events")

// CurrentGameweek resolves the gameweek a collection run should snapshot.
//
// Resolution order:
//  1. the event flagged is_current in bootstrap data;
//  2. the lowest-numbered gameweek with an unfinished fixture;
//  3. gameweek 1 when no fixture has finished (season unstarted);
//  4. the highest event number when every fixture is finished.
//
// Every input except an empty events list resolves deterministically.
func CurrentGameweek(events []domain.Event, fixtures []domain.Fixture) (int, error) {
	if len(events) == 0 {
		return 0, ErrNoEvents
	}

	for _, e := range events {
		if e.IsCurrent {
			return e.ID, nil
		}
	}

	lowestUnfinished := 0
	anyFinished := false
	for _, f := range fixtures {
		if f.Gameweek <= 0 {
			continue
		}
		if f.Finished {
			anyFinished = true
			continue
		}
		if lowestUnfinished == 0 || f.Gameweek < lowestUnfinished {
			lowestUnfinished = f.Gameweek
		}
	}
	if lowestUnfinished > 0 {
		return lowestUnfinished, nil
	}
	if !anyFinished {
		return 1, nil
	}

	last := events[0].ID
	for _, e := range events[1:] {
		if e.ID > last {
			last = e.ID
		}
	}
	return last, nil
}
