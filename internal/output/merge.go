package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// MergeSeason concatenates every gameweek CSV in a season directory into
// merged_gws.csv, ordered by gameweek, with the header written once.
// Returns the merged file path and the number of data rows merged.
func MergeSeason(basePath, season string) (string, int, error) {
	dir := SeasonDir(basePath, season)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", 0, &IOError{Path: dir, Err: err}
	}

	gameweeks := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		var gw int
		if n, err := fmt.Sscanf(e.Name(), gameweekFileFmt, &gw); err == nil && n == 1 && gw > 0 {
			if e.Name() == GameweekFileName(gw) {
				gameweeks = append(gameweeks, gw)
			}
		}
	}
	if len(gameweeks) == 0 {
		return "", 0, fmt.Errorf("no gameweek files found in %s", dir)
	}
	sort.Ints(gameweeks)

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(columns); err != nil {
		return "", 0, err
	}

	rows := 0
	for _, gw := range gameweeks {
		path := GameweekFilePath(basePath, season, gw)
		records, err := readCSV(path)
		if err != nil {
			return "", 0, err
		}
		if len(records) == 0 {
			continue
		}
		if !sameHeader(records[0], columns) {
			return "", 0, fmt.Errorf("%s: header does not match the fixed column set", path)
		}
		for _, rec := range records[1:] {
			if err := cw.Write(rec); err != nil {
				return "", 0, err
			}
			rows++
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", 0, err
	}

	target := MergedFilePath(basePath, season)
	if err := WriteFileAtomic(target, buf.Bytes()); err != nil {
		return "", 0, err
	}
	return target, rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return records, nil
}

func sameHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// ReadMergedRows loads merged_gws.csv data rows (header stripped) for
// downstream analysis.
func ReadMergedRows(basePath, season string) ([][]string, error) {
	records, err := readCSV(MergedFilePath(basePath, season))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty merged file", MergedFilePath(basePath, season))
	}
	if !sameHeader(records[0], columns) {
		return nil, fmt.Errorf("%s: header does not match the fixed column set", MergedFilePath(basePath, season))
	}
	return records[1:], nil
}

// ColumnIndex returns the position of a column in the fixed header, or -1.
func ColumnIndex(name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
