package constants

// CategoryWeight turns a map's star rating into completion points:
// points = stars*Mult + Offset.
type CategoryWeight struct {
	Mult   int
	Offset int
}

// CategoryWeights is keyed by the map's difficulty category (maps.Server).
var CategoryWeights = map[string]CategoryWeight{
	"Novice":    {1, 0},
	"Moderate":  {2, 5},
	"Brutal":    {3, 15},
	"Insane":    {4, 30},
	"Dummy":     {5, 5},
	"Event":     {4, 0},
	"Oldschool": {6, 0},
	"Solo":      {4, 0},
	"Race":      {2, 0},
}

// DDmaX.Pro, DDmaX.Next, etc. share one weight.
const (
	DDmaXPrefix = "DDmaX."
	DDmaXMult   = 4
	DDmaXOffset = 0
)

// RankPositionPoints awards points for the top 10 best-time positions per map.
var RankPositionPoints = map[int]int{
	1: 25, 2: 18, 3: 15, 4: 12, 5: 10,
	6: 8, 7: 6, 8: 4, 9: 2, 10: 1,
}

const (
	LeaderboardSchemaVersion = 2
	ProfileSchemaVersion     = 1
)

// GeneratedAtLayout is the UTC second-precision timestamp written into artifacts.
const GeneratedAtLayout = "2006-01-02T15:04:05Z"

// TimestampPlaceholder is the literal some finish rows carry instead of a real
// timestamp; it must read as "no timestamp", not as a date.
const TimestampPlaceholder = "current_timestamp"

const (
	DBBusyTimeoutMS = 5000
	DBCacheSizeKB   = 64000
	DBMmapSize      = 268435456
)
