package fpl

const providerName = "fpl"

type bootstrapResponse struct {
	Events       []eventResponse       `json:"events"`
	Teams        []teamResponse        `json:"teams"`
	ElementTypes []elementTypeResponse `json:"element_types"`
	Elements     []elementResponse     `json:"elements"`
}

type eventResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	IsCurrent bool   `json:"is_current"`
	IsNext    bool   `json:"is_next"`
	Finished  bool   `json:"finished"`
}

type teamResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type elementTypeResponse struct {
	ID                int    `json:"id"`
	SingularName      string `json:"singular_name"`
	SingularNameShort string `json:"singular_name_short"`
}

type elementResponse struct {
	ID            int    `json:"id"`
	WebName       string `json:"web_name"`
	Team          int    `json:"team"`
	ElementType   int    `json:"element_type"`
	TotalPoints   int    `json:"total_points"`
	EventPoints   int    `json:"event_points"`
	Minutes       int    `json:"minutes"`
	GoalsScored   int    `json:"goals_scored"`
	Assists       int    `json:"assists"`
	CleanSheets   int    `json:"clean_sheets"`
	GoalsConceded int    `json:"goals_conceded"`
	Saves         int    `json:"saves"`
	Bonus         int    `json:"bonus"`
	BPS           int    `json:"bps"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	Starts        int    `json:"starts"`
	NowCost       int    `json:"now_cost"`
	SelectedBy    string `json:"selected_by_percent"`
	Form          string `json:"form"`
	Status        string `json:"status"`
}

type fixtureResponse struct {
	ID          int    `json:"id"`
	Event       *int   `json:"event"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	KickoffTime string `json:"kickoff_time"`
	Finished    bool   `json:"finished"`
}

type liveResponse struct {
	Elements []liveElementResponse `json:"elements"`
}

type liveElementResponse struct {
	ID    int               `json:"id"`
	Stats liveStatsResponse `json:"stats"`
}

type liveStatsResponse struct {
	Minutes       int `json:"minutes"`
	GoalsScored   int `json:"goals_scored"`
	Assists       int `json:"assists"`
	CleanSheets   int `json:"clean_sheets"`
	GoalsConceded int `json:"goals_conceded"`
	Saves         int `json:"saves"`
	Bonus         int `json:"bonus"`
	BPS           int `json:"bps"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	Starts        int `json:"starts"`
	TotalPoints   int `json:"total_points"`
}
