package scoring

import "github.com/GumbaTW/DDNet-LB/internal/domain"

// ResolveRegions picks each player's representative category: the label under
// which they finished the most distinct maps solo. Count ties break by label
// ascending so the result is stable across runs. Players absent from the
// counts get no entry (empty region downstream).
func ResolveRegions(counts []domain.RegionCountRow) map[string]string {
	type best struct {
		category string
		maps     int
	}
	winners := make(map[string]best)
	for _, row := range counts {
		cur, ok := winners[row.Player]
		if !ok || row.Maps > cur.maps || (row.Maps == cur.maps && row.Category < cur.category) {
			winners[row.Player] = best{category: row.Category, maps: row.Maps}
		}
	}

	regions := make(map[string]string, len(winners))
	for player, w := range winners {
		regions[player] = w.category
	}
	return regions
}
