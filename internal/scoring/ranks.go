package scoring

import (
	"sort"

	"github.com/GumbaTW/DDNet-LB/internal/constants"
	"github.com/GumbaTW/DDNet-LB/internal/domain"
)

// RankPoints ranks players per map by best time and sums position points over
// all maps. Ranking is dense over distinct time values: tied times share a
// position and its points, the next distinct time takes the next integer
// position. Positions 1-10 score 25,18,15,12,10,8,6,4,2,1; everything below
// scores nothing. Run once per finish table.
func RankPoints(best []domain.BestTimeRow) map[string]int {
	byMap := make(map[string][]domain.BestTimeRow)
	for _, row := range best {
		byMap[row.Map] = append(byMap[row.Map], row)
	}

	points := make(map[string]int)
	for _, players := range byMap {
		sort.Slice(players, func(i, j int) bool {
			return players[i].Time < players[j].Time
		})

		timeToRank := make(map[float64]int, len(players))
		rank := 1
		for _, p := range players {
			if _, seen := timeToRank[p.Time]; !seen {
				timeToRank[p.Time] = rank
				rank++
			}
		}

		for _, p := range players {
			points[p.Player] += constants.RankPositionPoints[timeToRank[p.Time]]
		}
	}
	return points
}
