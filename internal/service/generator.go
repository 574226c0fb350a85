package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GumbaTW/DDNet-LB/internal/artifact"
	"github.com/GumbaTW/DDNet-LB/internal/config"
	"github.com/GumbaTW/DDNet-LB/internal/constants"
	"github.com/GumbaTW/DDNet-LB/internal/repository"
	"github.com/GumbaTW/DDNet-LB/internal/scoring"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GeneratorService runs the batch stages: each one reads what it needs,
// aggregates in memory, and publishes an artifact. Nothing is mutated in the
// source database and nothing carries over between runs.
type GeneratorService struct {
	repo   *repository.StatsRepository
	writer *artifact.Writer
	cfg    *config.Config
	logger zerolog.Logger
}

func NewGeneratorService(repo *repository.StatsRepository, writer *artifact.Writer, cfg *config.Config, logger zerolog.Logger) *GeneratorService {
	return &GeneratorService{repo: repo, writer: writer, cfg: cfg, logger: logger}
}

func (s *GeneratorService) stageLogger(stage string) zerolog.Logger {
	return s.logger.With().
		Str("run_id", uuid.New().String()).
		Str("stage", stage).
		Logger()
}

// GenerateLeaderboard computes the three point metrics for every player and
// writes the ordered leaderboard artifact.
func (s *GeneratorService) GenerateLeaderboard(ctx context.Context) error {
	log := s.stageLogger("leaderboard")
	log.Info().Str("db", s.cfg.DBPath).Str("output", s.cfg.OutputPath).Msg("generating leaderboard")

	mapRows, err := s.repo.MapRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read map metadata: %w", err)
	}
	scores := scoring.BuildMapScores(mapRows)

	completions, err := s.repo.Completions(ctx)
	if err != nil {
		return fmt.Errorf("failed to read completions: %w", err)
	}
	completionPoints := scoring.CompletionPoints(completions, scores)

	soloBest, err := s.repo.BestTimes(ctx, repository.TableSolo)
	if err != nil {
		return fmt.Errorf("failed to read solo best times: %w", err)
	}
	rankPoints := scoring.RankPoints(soloBest)

	teamBest, err := s.repo.BestTimes(ctx, repository.TableTeam)
	if err != nil {
		return fmt.Errorf("failed to read team best times: %w", err)
	}
	teamRankPoints := scoring.RankPoints(teamBest)

	regionCounts, err := s.repo.RegionCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to read region counts: %w", err)
	}
	regions := scoring.ResolveRegions(regionCounts)

	entries := scoring.BuildLeaderboard(completionPoints, teamRankPoints, rankPoints, regions, s.cfg.Top)

	doc := artifact.Leaderboard{
		SchemaVersion: constants.LeaderboardSchemaVersion,
		GeneratedAt:   time.Now().UTC().Format(constants.GeneratedAtLayout),
		Entries:       make([]artifact.LeaderboardEntry, len(entries)),
	}
	for i, e := range entries {
		doc.Entries[i] = artifact.LeaderboardEntry{
			Rank:             e.Rank,
			Name:             e.Name,
			Points:           e.Points,
			CompletionPoints: e.CompletionPoints,
			TeamRankPoints:   e.TeamRankPoints,
			RankPoints:       e.RankPoints,
			Region:           e.Region,
		}
	}

	if err := s.writer.WriteJSON(s.cfg.OutputPath, doc); err != nil {
		return fmt.Errorf("failed to write leaderboard: %w", err)
	}

	log.Info().
		Int("entries", len(doc.Entries)).
		Int("maps", len(scores)).
		Msg("leaderboard written")
	return nil
}

// GenerateCategoryIndex writes the category -> maps index artifact.
func (s *GeneratorService) GenerateCategoryIndex(ctx context.Context) error {
	log := s.stageLogger("maps")
	log.Info().Str("db", s.cfg.DBPath).Str("output", s.cfg.OutputPath).Msg("generating category index")

	mapRows, err := s.repo.MapRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read map metadata: %w", err)
	}

	index := make(artifact.CategoryIndex)
	for _, row := range mapRows {
		index[row.Category] = append(index[row.Category], artifact.CategoryMap{
			Map:    row.Map,
			Points: scoring.MapRowPoints(row),
		})
	}

	if err := s.writer.WriteJSON(s.cfg.OutputPath, index); err != nil {
		return fmt.Errorf("failed to write category index: %w", err)
	}

	log.Info().Int("categories", len(index)).Msg("category index written")
	return nil
}
