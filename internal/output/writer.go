package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"fpl-data-collector/internal/domain"
)

// columns is the fixed CSV header. Order is stable across runs; the first
// six columns are the core record, the rest carry the extended stats.
var columns = []string{
	"player_id",
	"name",
	"team",
	"position",
	"total_points",
	"gameweek",
	"cost",
	"selected_by",
	"form",
	"status",
	"minutes",
	"goals",
	"assists",
	"clean_sheets",
	"goals_conceded",
	"saves",
	"bonus",
	"bps",
	"yellow_cards",
	"red_cards",
	"starts",
	"gw_points",
	"next_fixture",
}

// Columns returns a copy of the fixed header.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// IOError reports a filesystem failure while persisting output.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// AsIOError attempts to unwrap an error into an IOError.
func AsIOError(err error) (*IOError, bool) {
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr, true
	}
	return nil, false
}

// Writer persists gameweek CSVs under a season-named directory.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	if basePath == "" {
		basePath = "."
	}
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteGameweek serializes the rows to FPL_Data_<season>/FPL_Data_GW<week>.csv.
// The full file is built in memory and written atomically; identical input
// produces a byte-identical file and an already-identical file is left
// untouched.
func (w *Writer) WriteGameweek(season string, gameweek int, rows []domain.GameweekRow) (string, error) {
	if w == nil {
		return "", errors.New("output writer not configured")
	}
	if season == "" {
		return "", errors.New("season label required")
	}
	if gameweek <= 0 {
		return "", fmt.Errorf("gameweek must be positive, got %d", gameweek)
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := cw.Write(record(row)); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}

	dir := SeasonDir(w.basePath, season)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IOError{Path: dir, Err: err}
	}

	target := GameweekFilePath(w.basePath, season, gameweek)
	if err := WriteFileAtomic(target, buf.Bytes()); err != nil {
		return "", err
	}
	return target, nil
}

func record(row domain.GameweekRow) []string {
	return []string{
		strconv.Itoa(row.PlayerID),
		row.Name,
		row.Team,
		row.Position,
		strconv.Itoa(row.TotalPoints),
		strconv.Itoa(row.Gameweek),
		strconv.FormatFloat(row.Cost, 'f', 1, 64),
		row.SelectedByPct,
		row.Form,
		string(row.Status),
		strconv.Itoa(row.Minutes),
		strconv.Itoa(row.Goals),
		strconv.Itoa(row.Assists),
		strconv.Itoa(row.CleanSheets),
		strconv.Itoa(row.GoalsConceded),
		strconv.Itoa(row.Saves),
		strconv.Itoa(row.Bonus),
		strconv.Itoa(row.BPS),
		strconv.Itoa(row.YellowCards),
		strconv.Itoa(row.RedCards),
		strconv.Itoa(row.Starts),
		strconv.Itoa(row.GWPoints),
		row.NextFixture,
	}
}

// WriteFileAtomic writes data via a temp file and rename so readers never
// see a partial file. An existing byte-identical target is left untouched.
func WriteFileAtomic(target string, data []byte) error {
	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &IOError{Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return &IOError{Path: target, Err: err}
	}
	return nil
}
