package scoring

import (
	"fmt"
	"testing"

	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRankPoints_DenseTies(t *testing.T) {
	best := []domain.BestTimeRow{
		{Map: "X", Player: "Alice", Time: 10.0},
		{Map: "X", Player: "Bob", Time: 10.0},
		{Map: "X", Player: "Carol", Time: 12.0},
	}

	points := RankPoints(best)

	// tied times share position 1; the next distinct time is position 2
	assert.Equal(t, 25, points["Alice"])
	assert.Equal(t, 25, points["Bob"])
	assert.Equal(t, 18, points["Carol"])
}

func TestRankPoints_TopTenCutoff(t *testing.T) {
	var best []domain.BestTimeRow
	for i := 0; i < 12; i++ {
		best = append(best, domain.BestTimeRow{
			Map:    "X",
			Player: fmt.Sprintf("p%02d", i),
			Time:   float64(10 + i),
		})
	}

	points := RankPoints(best)

	wantByPosition := []int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1, 0, 0}
	for i, want := range wantByPosition {
		assert.Equal(t, want, points[fmt.Sprintf("p%02d", i)], "position %d", i+1)
	}
}

func TestRankPoints_SumsAcrossMaps(t *testing.T) {
	best := []domain.BestTimeRow{
		{Map: "X", Player: "Alice", Time: 10.0},
		{Map: "X", Player: "Bob", Time: 11.0},
		{Map: "Y", Player: "Alice", Time: 40.0},
		{Map: "Y", Player: "Bob", Time: 30.0},
	}

	points := RankPoints(best)

	assert.Equal(t, 25+18, points["Alice"])
	assert.Equal(t, 18+25, points["Bob"])
}

func TestRankPoints_TiedBlockConsumesOnePosition(t *testing.T) {
	best := []domain.BestTimeRow{
		{Map: "X", Player: "a", Time: 10.0},
		{Map: "X", Player: "b", Time: 10.0},
		{Map: "X", Player: "c", Time: 10.0},
		{Map: "X", Player: "d", Time: 11.0},
	}

	points := RankPoints(best)

	// three players tied at position 1; the next distinct time is position 2,
	// not position 4
	assert.Equal(t, 25, points["a"])
	assert.Equal(t, 25, points["b"])
	assert.Equal(t, 25, points["c"])
	assert.Equal(t, 18, points["d"])
}

func TestRankPoints_EmptyInput(t *testing.T) {
	assert.Empty(t, RankPoints(nil))
}
