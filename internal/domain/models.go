package domain

// MapRow is one maps-table record. The same map name can appear under several
// categories with different ratings.
type MapRow struct {
	Map      string
	Category string
	Stars    int
	Points   int
	// Direct is set when the source schema carries a precomputed Points
	// column; Stars is then left at zero.
	Direct bool
}

// CompletionRow is one distinct (map, player) pair drawn from the union of the
// solo and team finish tables.
type CompletionRow struct {
	Map    string
	Player string
}

// BestTimeRow is a player's best (minimum) time on one map within one finish table.
type BestTimeRow struct {
	Map    string
	Player string
	Time   float64
}

// RegionCountRow is the number of distinct maps a player finished solo under
// one category label.
type RegionCountRow struct {
	Player   string
	Category string
	Maps     int
}

// MapPlayer keys per-map per-player finish aggregates.
type MapPlayer struct {
	Map    string
	Player string
}

// FinishStats aggregates one player's finishes of one map in one finish table.
type FinishStats struct {
	BestTime    float64
	HasTime     bool
	FirstFinish string // empty when unknown
	Finishes    int
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Rank             int
	Name             string
	Points           int
	CompletionPoints int
	TeamRankPoints   int
	RankPoints       int
	Region           string
}
