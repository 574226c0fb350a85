package scoring

import (
	"testing"

	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryPoints(t *testing.T) {
	tests := []struct {
		name     string
		stars    int
		category string
		want     int
	}{
		{"novice", 3, "Novice", 3},
		{"moderate", 2, "Moderate", 9},
		{"brutal", 1, "Brutal", 18},
		{"insane", 5, "Insane", 50},
		{"ddmax prefix family", 3, "DDmaX.Pro", 12},
		{"ddmax other variant", 2, "DDmaX.Next", 8},
		{"unknown category", 5, "Fun", 0},
		{"zero stars", 0, "Novice", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryPoints(tt.stars, tt.category))
		})
	}
}

func TestBuildMapScores_MaxAcrossVariants(t *testing.T) {
	rows := []domain.MapRow{
		{Map: "A", Category: "Novice", Stars: 3},
		{Map: "A", Category: "Brutal", Stars: 1},
	}

	scores := BuildMapScores(rows)

	// max(3*1+0, 1*3+15), never the sum
	require.Equal(t, map[string]int{"A": 18}, scores)
}

func TestBuildMapScores_DirectPointsPreferred(t *testing.T) {
	rows := []domain.MapRow{
		{Map: "A", Category: "Novice", Points: 7, Direct: true},
		{Map: "A", Category: "Brutal", Points: 4, Direct: true},
		{Map: "B", Category: "Whatever", Points: 12, Direct: true},
	}

	scores := BuildMapScores(rows)

	assert.Equal(t, 7, scores["A"])
	assert.Equal(t, 12, scores["B"], "direct points bypass the category table")
}

func TestBuildMapScores_NonNegative(t *testing.T) {
	rows := []domain.MapRow{
		{Map: "A", Category: "Nonsense", Stars: 9},
		{Map: "B", Category: "Novice", Stars: 0},
	}

	for _, score := range BuildMapScores(rows) {
		assert.GreaterOrEqual(t, score, 0)
	}
}

func TestCompletionPoints(t *testing.T) {
	scores := map[string]int{"A": 18, "B": 5}

	t.Run("sums distinct maps", func(t *testing.T) {
		completions := []domain.CompletionRow{
			{Map: "A", Player: "alice"},
			{Map: "B", Player: "alice"},
			{Map: "A", Player: "bob"},
		}

		points := CompletionPoints(completions, scores)

		assert.Equal(t, 23, points["alice"])
		assert.Equal(t, 18, points["bob"])
	})

	t.Run("unknown map contributes zero but keeps the player", func(t *testing.T) {
		completions := []domain.CompletionRow{{Map: "Ghost", Player: "carol"}}

		points := CompletionPoints(completions, scores)

		score, ok := points["carol"]
		require.True(t, ok)
		assert.Equal(t, 0, score)
	})
}
