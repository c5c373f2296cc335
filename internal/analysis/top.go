package analysis

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"fpl-data-collector/internal/output"
)

// PlayerTotal is one player's accumulated gameweek points across every
// collected snapshot.
type PlayerTotal struct {
	PlayerID    int
	Name        string
	Team        string
	Position    string
	GWPoints    int
	Appearances int
}

var topColumns = []string{"player_id", "name", "team", "position", "total_gw_points", "appearances"}

// TopPlayers aggregates merged gameweek rows per player, ranks them by
// accumulated gameweek points (ties broken by player id) and returns the
// first limit entries.
func TopPlayers(rows [][]string, limit int) ([]PlayerTotal, error) {
	idIdx := output.ColumnIndex("player_id")
	nameIdx := output.ColumnIndex("name")
	teamIdx := output.ColumnIndex("team")
	posIdx := output.ColumnIndex("position")
	pointsIdx := output.ColumnIndex("gw_points")

	totals := make(map[int]*PlayerTotal, len(rows))
	order := make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) <= pointsIdx {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i, pointsIdx+1, len(row))
		}
		id, err := strconv.Atoi(row[idIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid player id %q", i, row[idIdx])
		}
		points, err := strconv.Atoi(row[pointsIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid gw_points %q", i, row[pointsIdx])
		}

		total, ok := totals[id]
		if !ok {
			total = &PlayerTotal{
				PlayerID: id,
				Name:     row[nameIdx],
				Team:     row[teamIdx],
				Position: row[posIdx],
			}
			totals[id] = total
			order = append(order, id)
		}
		total.GWPoints += points
		total.Appearances++
	}

	ranked := make([]PlayerTotal, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *totals[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GWPoints != ranked[j].GWPoints {
			return ranked[i].GWPoints > ranked[j].GWPoints
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// WriteTop serializes the ranking to top_<limit>_players.csv in the season
// directory and returns the path written.
func WriteTop(basePath, season string, limit int, players []PlayerTotal) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(topColumns); err != nil {
		return "", err
	}
	for _, p := range players {
		record := []string{
			strconv.Itoa(p.PlayerID),
			p.Name,
			p.Team,
			p.Position,
			strconv.Itoa(p.GWPoints),
			strconv.Itoa(p.Appearances),
		}
		if err := cw.Write(record); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}

	target := filepath.Join(output.SeasonDir(basePath, season), fmt.Sprintf("top_%d_players.csv", limit))
	if err := output.WriteFileAtomic(target, buf.Bytes()); err != nil {
		return "", err
	}
	return target, nil
}
