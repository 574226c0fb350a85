package scoring

import (
	"fmt"
	"testing"

	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLeaderboard_TotalsAndOrder(t *testing.T) {
	completion := map[string]int{"alice": 10, "bob": 40}
	teamRank := map[string]int{"alice": 5}
	rank := map[string]int{"bob": 2}
	regions := map[string]string{"alice": "GER", "bob": "POL"}

	entries := BuildLeaderboard(completion, teamRank, rank, regions, 0)

	require.Len(t, entries, 2)

	assert.Equal(t, domain.LeaderboardEntry{
		Rank: 1, Name: "bob", Points: 42,
		CompletionPoints: 40, TeamRankPoints: 0, RankPoints: 2,
		Region: "POL",
	}, entries[0])
	assert.Equal(t, domain.LeaderboardEntry{
		Rank: 2, Name: "alice", Points: 15,
		CompletionPoints: 10, TeamRankPoints: 5, RankPoints: 0,
		Region: "GER",
	}, entries[1])

	for _, e := range entries {
		assert.Equal(t, e.Points, e.CompletionPoints+e.TeamRankPoints+e.RankPoints)
	}
}

func TestBuildLeaderboard_RegionAloneDoesNotQualify(t *testing.T) {
	regions := map[string]string{"ghost": "GER"}

	entries := BuildLeaderboard(nil, nil, nil, regions, 0)

	assert.Empty(t, entries)
}

func TestBuildLeaderboard_TiesGetDistinctConsecutiveRanks(t *testing.T) {
	completion := map[string]int{"zoe": 10, "amy": 10, "mel": 10}

	entries := BuildLeaderboard(completion, nil, nil, nil, 0)

	require.Len(t, entries, 3)
	// equal totals: name ascending, positional ranks stay distinct
	assert.Equal(t, []string{"amy", "mel", "zoe"}, []string{entries[0].Name, entries[1].Name, entries[2].Name})
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func TestBuildLeaderboard_Truncation(t *testing.T) {
	completion := make(map[string]int)
	for i := 0; i < 8; i++ {
		completion[fmt.Sprintf("p%d", i)] = 100 - i
	}

	entries := BuildLeaderboard(completion, nil, nil, nil, 5)

	require.Len(t, entries, 5)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 5, entries[4].Rank)
	assert.Equal(t, 100, entries[0].Points)
}

func TestBuildLeaderboard_TopLargerThanField(t *testing.T) {
	entries := BuildLeaderboard(map[string]int{"alice": 1}, nil, nil, nil, 50)

	assert.Len(t, entries, 1)
}
