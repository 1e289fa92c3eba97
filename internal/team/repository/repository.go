// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/database/dberr"
	"github.com/pixelpirates/leaderboard/internal/scoring"
	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// Update applies column updates to a team and returns the stored row.
	Update(ctx context.Context, id string, fields map[string]any) (*teamModel.Team, error)

	// SetOwner links the team to its owner account.
	SetOwner(ctx context.Context, teamID, ownerID string) error

	// SetIconPlayer points the team at technocratID, or clears it when nil.
	SetIconPlayer(ctx context.Context, teamID string, technocratID *string) error

	// ClearIconPlayerRef removes technocratID from any team referencing it.
	ClearIconPlayerRef(ctx context.Context, technocratID string) error

	// AdjustScore adds delta to the team's total, flooring the result at zero.
	AdjustScore(ctx context.Context, teamID string, delta int) error

	// ListByScore returns all teams, highest score first, oldest first on ties.
	ListByScore(ctx context.Context) ([]teamModel.Team, error)

	// ListByName returns all teams ordered by name.
	ListByName(ctx context.Context) ([]teamModel.Team, error)

	// IconPlayers resolves icon player summaries keyed by technocrat id.
	IconPlayers(ctx context.Context, technocratIDs []string) (map[string]teamModel.IconPlayer, error)

	// RecomputeRanks derives every team's rank from its score and persists changes.
	RecomputeRanks(ctx context.Context) ([]scoring.Standing, error)

	// LockStandings serializes score and rank writers until the surrounding transaction ends.
	// It must be the first statement of the transaction.
	LockStandings(ctx context.Context) error
}

// standingsLockKey is the advisory lock id shared by every score and rank writer.
const standingsLockKey = 7405261

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if dberr.IsDuplicateKey(err) {
			return teamModel.ErrTeamCodeExists
		}
		return err
	}

	r.logger.Debugw("team created", "team_id", team.ID, "team_code", team.TeamCode)
	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Update applies column updates to a team and returns the stored row.
func (r *repository) Update(ctx context.Context, id string, fields map[string]any) (*teamModel.Team, error) {
	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", id).
		UpdateColumns(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, teamModel.ErrTeamNotFound
	}
	return r.GetByID(ctx, id)
}

// SetOwner links the team to its owner account.
func (r *repository) SetOwner(ctx context.Context, teamID, ownerID string) error {
	return r.updateColumn(ctx, teamID, "owner_id", ownerID)
}

// SetIconPlayer points the team at technocratID, or clears it when nil.
func (r *repository) SetIconPlayer(ctx context.Context, teamID string, technocratID *string) error {
	return r.updateColumn(ctx, teamID, "icon_player_id", technocratID)
}

func (r *repository) updateColumn(ctx context.Context, teamID, column string, value any) error {
	res := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", teamID).
		UpdateColumns(map[string]any{column: value, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// ClearIconPlayerRef removes technocratID from any team referencing it.
func (r *repository) ClearIconPlayerRef(ctx context.Context, technocratID string) error {
	return r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("icon_player_id = ?", technocratID).
		UpdateColumns(map[string]any{"icon_player_id": nil, "updated_at": time.Now()}).Error
}

// AdjustScore adds delta to the team's total, flooring the result at zero.
// The arithmetic runs in the database so concurrent adjustments do not
// overwrite each other.
func (r *repository) AdjustScore(ctx context.Context, teamID string, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", teamID).
		UpdateColumns(map[string]any{
			"total_score": gorm.Expr("CASE WHEN total_score + ? < 0 THEN 0 ELSE total_score + ? END", delta, delta),
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}

	r.logger.Debugw("team score adjusted", "team_id", teamID, "delta", delta)
	return nil
}

// ListByScore returns all teams, highest score first, oldest first on ties.
func (r *repository) ListByScore(ctx context.Context) ([]teamModel.Team, error) {
	return r.list(ctx, "total_score DESC, created_at ASC, id ASC")
}

// ListByName returns all teams ordered by name.
func (r *repository) ListByName(ctx context.Context) ([]teamModel.Team, error) {
	return r.list(ctx, "team_name ASC, id ASC")
}

func (r *repository) list(ctx context.Context, order string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	if err := r.db.WithContext(ctx).Order(order).Find(&teams).Error; err != nil {
		return nil, err
	}
	if teams == nil {
		return []teamModel.Team{}, nil
	}
	return teams, nil
}

// IconPlayers resolves icon player summaries keyed by technocrat id.
func (r *repository) IconPlayers(ctx context.Context, technocratIDs []string) (map[string]teamModel.IconPlayer, error) {
	players := make(map[string]teamModel.IconPlayer, len(technocratIDs))
	if len(technocratIDs) == 0 {
		return players, nil
	}

	var rows []teamModel.IconPlayer
	err := r.db.WithContext(ctx).
		Table("technocrats").
		Select("id, name, enrollment_number, semester").
		Where("id IN ?", technocratIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, p := range rows {
		players[p.ID] = p
	}
	return players, nil
}

// RecomputeRanks derives every team's rank from its score and persists changes.
// Ranks come from scoring.Rank over the store's score order.
func (r *repository) RecomputeRanks(ctx context.Context) ([]scoring.Standing, error) {
	var before []scoring.Standing
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Select("id AS team_id, total_score, rank").
		Order("total_score DESC, created_at ASC, id ASC").
		Scan(&before).Error
	if err != nil {
		return nil, err
	}

	ranked := scoring.Rank(before)
	changed := scoring.Changed(before, ranked)
	for _, s := range changed {
		err := r.db.WithContext(ctx).
			Model(&teamModel.Team{}).
			Where("id = ?", s.TeamID).
			UpdateColumn("rank", s.Rank).Error
		if err != nil {
			return nil, err
		}
	}

	r.logger.Debugw("ranks recomputed", "teams", len(ranked), "changed", len(changed))
	return ranked, nil
}

// LockStandings takes a transaction-scoped advisory lock on PostgreSQL.
// SQLite serializes writers on its own, so other dialects are a no-op.
func (r *repository) LockStandings(ctx context.Context) error {
	if r.db.Dialector.Name() != "postgres" {
		return nil
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", standingsLockKey).Error
}
