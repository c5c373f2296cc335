package output

import (
	"fmt"
	"path/filepath"
)

const (
	seasonDirPrefix = "FPL_Data_"
	gameweekFileFmt = "FPL_Data_GW%d.csv"
	mergedFileName  = "merged_gws.csv"
	dumpFileName    = "fpl_data.json"
)

// SeasonDir builds the season-named output directory path.
func SeasonDir(basePath, season string) string {
	return filepath.Join(basePath, seasonDirPrefix+season)
}

// GameweekFileName builds the CSV file name for a gameweek.
func GameweekFileName(gameweek int) string {
	return fmt.Sprintf(gameweekFileFmt, gameweek)
}

// GameweekFilePath builds the full path to a gameweek CSV.
func GameweekFilePath(basePath, season string, gameweek int) string {
	return filepath.Join(SeasonDir(basePath, season), GameweekFileName(gameweek))
}

// MergedFilePath builds the path to a season's merged CSV.
func MergedFilePath(basePath, season string) string {
	return filepath.Join(SeasonDir(basePath, season), mergedFileName)
}

// DumpFilePath builds the path for a raw bootstrap dump.
func DumpFilePath(basePath string) string {
	return filepath.Join(basePath, dumpFileName)
}
