package service

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/GumbaTW/DDNet-LB/internal/artifact"
	"github.com/GumbaTW/DDNet-LB/internal/constants"
	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/GumbaTW/DDNet-LB/internal/repository"
	"github.com/GumbaTW/DDNet-LB/internal/scoring"
)

// ProfileSummary counts per-player outcomes of one profile run.
type ProfileSummary struct {
	Written int
	Skipped int
	Failed  int
}

// GenerateProfiles writes one document per leaderboard player. A failed write
// is isolated to that player: the temp file is cleaned up, a warning is
// logged, and the batch continues.
func (s *GeneratorService) GenerateProfiles(ctx context.Context) (ProfileSummary, error) {
	log := s.stageLogger("profiles")
	log.Info().
		Str("db", s.cfg.DBPath).
		Str("players_file", s.cfg.PlayersFile).
		Str("output_dir", s.cfg.OutputDir).
		Msg("generating profiles")

	var summary ProfileSummary

	names, err := artifact.ReadLeaderboardNames(s.cfg.PlayersFile)
	if err != nil {
		return summary, fmt.Errorf("failed to load player list: %w", err)
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to read categories: %w", err)
	}

	mapRows, err := s.repo.MapRows(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to read map metadata: %w", err)
	}
	mapsByCat := make(map[string][]artifact.CategoryMap)
	for _, row := range mapRows {
		mapsByCat[row.Category] = append(mapsByCat[row.Category], artifact.CategoryMap{
			Map:    row.Map,
			Points: scoring.MapRowPoints(row),
		})
	}

	soloStats, err := s.repo.FinishStats(ctx, repository.TableSolo)
	if err != nil {
		return summary, fmt.Errorf("failed to read solo finish stats: %w", err)
	}
	teamStats, err := s.repo.FinishStats(ctx, repository.TableTeam)
	if err != nil {
		return summary, fmt.Errorf("failed to read team finish stats: %w", err)
	}

	generatedAt := time.Now().UTC().Format(constants.GeneratedAtLayout)

	for _, name := range names {
		doc := buildProfile(name, categories, mapsByCat, soloStats, teamStats, generatedAt)
		if doc == nil {
			summary.Skipped++
			continue
		}

		path := filepath.Join(s.cfg.OutputDir, artifact.EncodePlayerName(name)+".json")
		if err := s.writer.WriteJSON(path, doc); err != nil {
			log.Warn().Err(err).Str("player", name).Msg("failed to write profile")
			summary.Failed++
			continue
		}
		summary.Written++
	}

	log.Info().
		Int("written", summary.Written).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("profiles written")
	return summary, nil
}

// buildProfile assembles one player's document, or nil when no category
// qualifies for them.
func buildProfile(name string, categories []string, mapsByCat map[string][]artifact.CategoryMap, soloStats, teamStats map[domain.MapPlayer]domain.FinishStats, generatedAt string) *artifact.Profile {
	profile := make(map[string]artifact.ProfileCategory)

	for _, category := range categories {
		maps := mapsByCat[category]
		rows := []artifact.ProfileMap{}
		for _, m := range maps {
			solo := soloStats[domain.MapPlayer{Map: m.Map, Player: name}]
			team := teamStats[domain.MapPlayer{Map: m.Map, Player: name}]

			finishes := solo.Finishes + team.Finishes
			if finishes == 0 {
				continue
			}

			rows = append(rows, artifact.ProfileMap{
				Map:          m.Map,
				Points:       m.Points,
				RankTime:     roundTime(solo),
				TeamRankTime: roundTime(team),
				Finishes:     finishes,
				FirstFinish:  firstFinish(solo.FirstFinish, team.FirstFinish),
			})
		}

		if len(maps) > 0 || len(rows) > 0 {
			profile[category] = artifact.ProfileCategory{
				TotalMaps: len(maps),
				Finished:  len(rows),
				Maps:      rows,
			}
		}
	}

	if len(profile) == 0 {
		return nil
	}
	return &artifact.Profile{
		SchemaVersion: constants.ProfileSchemaVersion,
		GeneratedAt:   generatedAt,
		Profile:       profile,
	}
}

// roundTime presents a best time with two decimals (half to even), or null
// when the side has no recorded time.
func roundTime(stats domain.FinishStats) *float64 {
	if !stats.HasTime {
		return nil
	}
	t := math.RoundToEven(stats.BestTime*100) / 100
	return &t
}

// firstFinish merges the two sides' first-seen timestamps: the earlier one
// when both exist, whichever exists otherwise, nil when neither does.
func firstFinish(solo, team string) *string {
	switch {
	case solo != "" && team != "":
		if team < solo {
			return &team
		}
		return &solo
	case solo != "":
		return &solo
	case team != "":
		return &team
	default:
		return nil
	}
}
