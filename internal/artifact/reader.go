package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoPlayers means the leaderboard artifact exists but has no entries.
var ErrNoPlayers = errors.New("leaderboard artifact has no entries")

// ReadLeaderboardNames loads an existing leaderboard artifact and returns its
// player names in rank order. The profile stage iterates exactly this list.
func ReadLeaderboardNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard artifact: %w", err)
	}

	var lb Leaderboard
	if err := json.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("failed to parse leaderboard artifact: %w", err)
	}
	if len(lb.Entries) == 0 {
		return nil, ErrNoPlayers
	}

	names := make([]string, len(lb.Entries))
	for i, e := range lb.Entries {
		names[i] = e.Name
	}
	return names, nil
}
