// Package artifact defines the JSON documents the frontend consumes and the
// atomic file plumbing that publishes them.
package artifact

// Leaderboard is the global leaderboard document.
type Leaderboard struct {
	SchemaVersion int                `json:"schemaVersion"`
	GeneratedAt   string             `json:"generatedAt"`
	Entries       []LeaderboardEntry `json:"entries"`
}

type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	Name             string `json:"name"`
	Points           int    `json:"points"`
	CompletionPoints int    `json:"completionPoints"`
	TeamRankPoints   int    `json:"teamRankPoints"`
	RankPoints       int    `json:"rankPoints"`
	Region           string `json:"region"`
}

// CategoryIndex maps each category label to its maps, used by the frontend to
// compute unfinished-map counts.
type CategoryIndex map[string][]CategoryMap

type CategoryMap struct {
	Map    string `json:"map"`
	Points int    `json:"points"`
}

// Profile is one player's per-category breakdown.
type Profile struct {
	SchemaVersion int                        `json:"schemaVersion"`
	GeneratedAt   string                     `json:"generatedAt"`
	Profile       map[string]ProfileCategory `json:"profile"`
}

type ProfileCategory struct {
	TotalMaps int          `json:"totalMaps"`
	Finished  int          `json:"finished"`
	Maps      []ProfileMap `json:"maps"`
}

type ProfileMap struct {
	Map          string   `json:"map"`
	Points       int      `json:"points"`
	RankTime     *float64 `json:"rankTime"`
	TeamRankTime *float64 `json:"teamRankTime"`
	Finishes     int      `json:"finishes"`
	FirstFinish  *string  `json:"firstFinish"`
}
