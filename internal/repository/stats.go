package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/GumbaTW/DDNet-LB/internal/constants"
	"github.com/GumbaTW/DDNet-LB/internal/domain"
	"github.com/rs/zerolog"
)

// FinishTable selects which finish table a query runs against. The two tables
// share a shape but are never merged at this layer.
type FinishTable string

const (
	TableSolo FinishTable = "race"
	TableTeam FinishTable = "teamrace"
)

// StatsRepository reads the source tables (maps, race, teamrace). All access
// is read-only; every method fully materializes its rows before returning.
type StatsRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewStatsRepository(sqlDB *sql.DB, logger zerolog.Logger) *StatsRepository {
	return &StatsRepository{db: sqlDB, logger: logger}
}

// HasPointsColumn reports whether the maps table carries a precomputed Points
// column. Older dumps only have Stars; the check runs once per generation,
// before any map row is read.
func (r *StatsRepository) HasPointsColumn(ctx context.Context) (bool, error) {
	rows, err := r.db.QueryContext(ctx, "PRAGMA table_info(maps)")
	if err != nil {
		return false, fmt.Errorf("failed to inspect maps schema: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return false, fmt.Errorf("failed to scan column info: %w", err)
		}
		if strings.EqualFold(name, "Points") {
			return true, nil
		}
	}
	return false, rows.Err()
}

// MapRows returns every maps record ordered by (category, map). The Points
// column is preferred when present; otherwise rows carry the star rating and
// the caller computes points.
func (r *StatsRepository) MapRows(ctx context.Context) ([]domain.MapRow, error) {
	direct, err := r.HasPointsColumn(ctx)
	if err != nil {
		return nil, err
	}

	column := "Stars"
	if direct {
		column = "Points"
	}
	r.logger.Debug().Str("column", column).Msg("reading map metadata")

	// order by the trimmed label so padded values sort as they present
	query := fmt.Sprintf("SELECT Map, Server, %s FROM maps ORDER BY TRIM(Server), Map", column)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query maps: %w", err)
	}
	defer rows.Close()

	var result []domain.MapRow
	for rows.Next() {
		var (
			mapName, category string
			value             sql.NullInt64
		)
		if err := rows.Scan(&mapName, &category, &value); err != nil {
			return nil, fmt.Errorf("failed to scan map row: %w", err)
		}
		row := domain.MapRow{
			Map:      mapName,
			Category: strings.TrimSpace(category),
			Direct:   direct,
		}
		// NULL ratings read as zero.
		if direct {
			row.Points = int(value.Int64)
		} else {
			row.Stars = int(value.Int64)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Completions returns the distinct (map, player) pairs across both finish
// tables. A map finished solo and in team appears once.
func (r *StatsRepository) Completions(ctx context.Context) ([]domain.CompletionRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT Map, Name FROM (
			SELECT Map, Name FROM race UNION SELECT Map, Name FROM teamrace
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var result []domain.CompletionRow
	for rows.Next() {
		var mapName, name string
		if err := rows.Scan(&mapName, &name); err != nil {
			return nil, fmt.Errorf("failed to scan completion row: %w", err)
		}
		result = append(result, domain.CompletionRow{Map: mapName, Player: strings.TrimSpace(name)})
	}
	return result, rows.Err()
}

// BestTimes returns each player's best time per map within one finish table.
func (r *StatsRepository) BestTimes(ctx context.Context, table FinishTable) ([]domain.BestTimeRow, error) {
	query := fmt.Sprintf("SELECT Map, Name, MIN(Time) FROM %s GROUP BY Map, Name", table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query best times from %s: %w", table, err)
	}
	defer rows.Close()

	var result []domain.BestTimeRow
	for rows.Next() {
		var (
			mapName, name string
			best          sql.NullFloat64
		)
		if err := rows.Scan(&mapName, &name, &best); err != nil {
			return nil, fmt.Errorf("failed to scan best time row: %w", err)
		}
		result = append(result, domain.BestTimeRow{
			Map:    mapName,
			Player: strings.TrimSpace(name),
			Time:   best.Float64,
		})
	}
	return result, rows.Err()
}

// RegionCounts returns, per player and category label, the number of distinct
// maps finished in the solo table.
func (r *StatsRepository) RegionCounts(ctx context.Context) ([]domain.RegionCountRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT Name, Server, COUNT(DISTINCT Map)
		FROM race GROUP BY Name, Server`)
	if err != nil {
		return nil, fmt.Errorf("failed to query region counts: %w", err)
	}
	defer rows.Close()

	var result []domain.RegionCountRow
	for rows.Next() {
		var (
			name, category string
			count          int
		)
		if err := rows.Scan(&name, &category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan region count row: %w", err)
		}
		result = append(result, domain.RegionCountRow{
			Player:   strings.TrimSpace(name),
			Category: strings.TrimSpace(category),
			Maps:     count,
		})
	}
	return result, rows.Err()
}

// Categories returns the distinct category labels, ascending.
func (r *StatsRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT TRIM(Server) FROM maps ORDER BY 1")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		result = append(result, strings.TrimSpace(category))
	}
	return result, rows.Err()
}

// FinishStats returns per-(map, player) aggregates from one finish table:
// best time, first finish timestamp, finish count.
func (r *StatsRepository) FinishStats(ctx context.Context, table FinishTable) (map[domain.MapPlayer]domain.FinishStats, error) {
	query := fmt.Sprintf("SELECT Map, Name, MIN(Time), MIN(Timestamp), COUNT(*) FROM %s GROUP BY Map, Name", table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query finish stats from %s: %w", table, err)
	}
	defer rows.Close()

	result := make(map[domain.MapPlayer]domain.FinishStats)
	for rows.Next() {
		var (
			mapName, name string
			best          sql.NullFloat64
			first         sql.NullString
			count         int
		)
		if err := rows.Scan(&mapName, &name, &best, &first, &count); err != nil {
			return nil, fmt.Errorf("failed to scan finish stats row: %w", err)
		}
		key := domain.MapPlayer{Map: mapName, Player: strings.TrimSpace(name)}
		result[key] = domain.FinishStats{
			BestTime:    best.Float64,
			HasTime:     best.Valid,
			FirstFinish: normalizeTimestamp(first.String),
			Finishes:    count,
		}
	}
	return result, rows.Err()
}

// normalizeTimestamp drops the "current_timestamp" placeholder some rows
// carry instead of a real date.
func normalizeTimestamp(ts string) string {
	s := strings.TrimSpace(ts)
	if s == "" || s == constants.TimestampPlaceholder {
		return ""
	}
	return s
}
