package service

import (
	"testing"

	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTime(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.FinishStats
		want  float64
	}{
		{"plain", domain.FinishStats{BestTime: 43.567, HasTime: true}, 43.57},
		{"already two decimals", domain.FinishStats{BestTime: 40.0, HasTime: true}, 40.0},
		// exact halves round to the even cent
		{"half rounds down to even", domain.FinishStats{BestTime: 2.125, HasTime: true}, 2.12},
		{"half rounds up to even", domain.FinishStats{BestTime: 2.375, HasTime: true}, 2.38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roundTime(tt.stats)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestRoundTime_NoRecordedTime(t *testing.T) {
	assert.Nil(t, roundTime(domain.FinishStats{}))
}

func TestFirstFinish(t *testing.T) {
	a, b := "2024-01-01 10:00:00", "2024-01-05 10:00:00"

	tests := []struct {
		name       string
		solo, team string
		want       *string
	}{
		{"both present takes earlier", b, a, &a},
		{"solo only", a, "", &a},
		{"team only", "", b, &b},
		{"neither", "", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstFinish(tt.solo, tt.team)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
