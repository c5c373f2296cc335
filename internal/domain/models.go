package domain

// PlayerStatus mirrors the availability flags FPL attaches to players.
type PlayerStatus string

const (
	StatusAvailable   PlayerStatus = "a"
	StatusDoubtful    PlayerStatus = "d"
	StatusInjured     PlayerStatus = "i"
	StatusSuspended   PlayerStatus = "s"
	StatusUnavailable PlayerStatus = "u"
	StatusNotInSquad  PlayerStatus = "n"
)

// Team is a Premier League club as listed in bootstrap-static.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Position is an FPL element type (GKP, DEF, MID, FWD).
type Position struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// Event is a numbered gameweek round.
type Event struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"isCurrent"`
	IsNext    bool   `json:"isNext"`
	Finished  bool   `json:"finished"`
}

// Player is an immutable snapshot of one FPL element with its
// season-cumulative stats.
type Player struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	TeamID        int          `json:"teamId"`
	PositionID    int          `json:"positionId"`
	TotalPoints   int          `json:"totalPoints"`
	EventPoints   int          `json:"eventPoints"`
	Minutes       int          `json:"minutes"`
	Goals         int          `json:"goals"`
	Assists       int          `json:"assists"`
	CleanSheets   int          `json:"cleanSheets"`
	GoalsConceded int          `json:"goalsConceded"`
	Saves         int          `json:"saves"`
	Bonus         int          `json:"bonus"`
	BPS           int          `json:"bps"`
	YellowCards   int          `json:"yellowCards"`
	RedCards      int          `json:"redCards"`
	Starts        int          `json:"starts"`
	NowCost       int          `json:"nowCost"`
	SelectedByPct string       `json:"selectedByPct"`
	Form          string       `json:"form"`
	Status        PlayerStatus `json:"status"`
}

// Cost converts FPL's tenths-of-a-million price into millions.
func (p Player) Cost() float64 {
	return float64(p.NowCost) / 10
}

// Bootstrap is the normalized bootstrap-static payload.
type Bootstrap struct {
	Events    []Event    `json:"events"`
	Teams     []Team     `json:"teams"`
	Positions []Position `json:"positions"`
	Players   []Player   `json:"players"`
}

// Fixture is a scheduled match between two teams.
type Fixture struct {
	ID          int    `json:"id"`
	Gameweek    int    `json:"gameweek"` // 0 when unscheduled
	HomeTeamID  int    `json:"homeTeamId"`
	AwayTeamID  int    `json:"awayTeamId"`
	KickoffTime string `json:"kickoffTime"`
	Finished    bool   `json:"finished"`
}

// LiveStats holds one player's accumulated stats for a single gameweek.
type LiveStats struct {
	Minutes       int `json:"minutes"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	CleanSheets   int `json:"cleanSheets"`
	GoalsConceded int `json:"goalsConceded"`
	Saves         int `json:"saves"`
	Bonus         int `json:"bonus"`
	BPS           int `json:"bps"`
	YellowCards   int `json:"yellowCards"`
	RedCards      int `json:"redCards"`
	Starts        int `json:"starts"`
	Points        int `json:"points"`
}

// LiveGameweek is the event/{gw}/live payload keyed by player id.
type LiveGameweek struct {
	Gameweek int               `json:"gameweek"`
	Stats    map[int]LiveStats `json:"stats"`
}

// GameweekRow is the flattened output record: one per player per
// gameweek snapshot, every reference already resolved.
type GameweekRow struct {
	PlayerID      int
	Name          string
	Team          string
	Position      string
	TotalPoints   int
	Gameweek      int
	Cost          float64
	SelectedByPct string
	Form          string
	Status        PlayerStatus
	Minutes       int
	Goals         int
	Assists       int
	CleanSheets   int
	GoalsConceded int
	Saves         int
	Bonus         int
	BPS           int
	YellowCards   int
	RedCards      int
	Starts        int
	GWPoints      int
	NextFixture   string
}
