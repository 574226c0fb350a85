package scoring

import (
	"sort"

	"github.com/GumbaTW/DDNet-LB/internal/domain"
)

// BuildLeaderboard merges the three point mappings and the region mapping
// into the ordered leaderboard. The player universe is the union of the point
// mappings; a region label alone never qualifies a player. Entries sort by
// total descending with name ascending as tie-break, are optionally truncated
// to top, then numbered 1..K positionally (equal totals still get distinct
// consecutive ranks).
func BuildLeaderboard(completion, teamRank, rank map[string]int, regions map[string]string, top int) []domain.LeaderboardEntry {
	names := make(map[string]struct{})
	for name := range completion {
		names[name] = struct{}{}
	}
	for name := range teamRank {
		names[name] = struct{}{}
	}
	for name := range rank {
		names[name] = struct{}{}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(names))
	for name := range names {
		comp := completion[name]
		team := teamRank[name]
		solo := rank[name]
		entries = append(entries, domain.LeaderboardEntry{
			Name:             name,
			Points:           comp + team + solo,
			CompletionPoints: comp,
			TeamRankPoints:   team,
			RankPoints:       solo,
			Region:           regions[name],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Name < entries[j].Name
	})

	if top > 0 && len(entries) > top {
		entries = entries[:top]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
