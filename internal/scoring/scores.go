// Package scoring turns raw finish records into the three point metrics
// behind the leaderboard: completion points, solo rank points and team rank
// points. Everything here is a pure fold over already-read rows; nothing
// touches the data source.
package scoring

import (
	"strings"

	"github.com/GumbaTW/DDNet-LB/internal/constants"
	"github.com/GumbaTW/DDNet-LB/internal/domain"
)

// CategoryPoints computes completion points for a star rating under one
// category label. Unknown categories outside the DDmaX family score zero.
func CategoryPoints(stars int, category string) int {
	if w, ok := constants.CategoryWeights[category]; ok {
		return stars*w.Mult + w.Offset
	}
	if strings.HasPrefix(category, constants.DDmaXPrefix) {
		return stars*constants.DDmaXMult + constants.DDmaXOffset
	}
	return 0
}

// MapRowPoints resolves one map record to its point value, preferring the
// precomputed column when the schema has one.
func MapRowPoints(row domain.MapRow) int {
	if row.Direct {
		return row.Points
	}
	return CategoryPoints(row.Stars, row.Category)
}

// BuildMapScores derives each map's completion-point value. A map released
// under several categories is worth the maximum across its variants, never
// the sum.
func BuildMapScores(rows []domain.MapRow) map[string]int {
	scores := make(map[string]int, len(rows))
	for _, row := range rows {
		p := MapRowPoints(row)
		if best, ok := scores[row.Map]; !ok || p > best {
			scores[row.Map] = p
		}
	}
	return scores
}

// CompletionPoints sums map scores over every distinct map a player finished,
// by either mode. Duplicate finishes of a map never count twice; maps missing
// from the score table contribute zero.
func CompletionPoints(completions []domain.CompletionRow, scores map[string]int) map[string]int {
	points := make(map[string]int)
	for _, c := range completions {
		points[c.Player] += scores[c.Map]
	}
	return points
}
