// Package service applies results to team scores. Every mutation adjusts the
// team total in the store and recomputes ranks inside the same transaction.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	eventRepository "github.com/pixelpirates/leaderboard/internal/event/repository"
	"github.com/pixelpirates/leaderboard/internal/metrics"
	resultModel "github.com/pixelpirates/leaderboard/internal/result/model"
	"github.com/pixelpirates/leaderboard/internal/result/repository"
	"github.com/pixelpirates/leaderboard/internal/scoring"
	teamRepository "github.com/pixelpirates/leaderboard/internal/team/repository"
	technocratRepository "github.com/pixelpirates/leaderboard/internal/technocrat/repository"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Service defines the interface for the scoring engine.
type Service interface {
	// Apply records a placement and adds its points to the team.
	Apply(ctx context.Context, actor access.Actor, req *resultModel.CreateResultRequest) (*resultModel.Mutation, error)

	// Revise changes a result's position or technocrats. A position change
	// moves the team total by the difference in points.
	Revise(ctx context.Context, actor access.Actor, id string, req *resultModel.UpdateResultRequest) (*resultModel.Mutation, error)

	// Retract deletes a result and subtracts its points, never below zero.
	Retract(ctx context.Context, actor access.Actor, id string) (*resultModel.Mutation, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new result service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, db: db, logger: logger}
}

// stores groups the repositories bound to one transaction.
type stores struct {
	results     repository.Repository
	events      eventRepository.Repository
	teams       teamRepository.Repository
	technocrats technocratRepository.Repository
}

func (s *service) inTx(ctx context.Context, fn func(st stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		st := stores{
			results:     repository.New(tx, s.logger),
			events:      eventRepository.New(tx, s.logger),
			teams:       teamRepository.New(tx, s.logger),
			technocrats: technocratRepository.New(tx, s.logger),
		}
		if err := st.teams.LockStandings(ctx); err != nil {
			return err
		}
		return fn(st)
	})
}

// Apply records a placement and adds its points to the team.
func (s *service) Apply(ctx context.Context, actor access.Actor, req *resultModel.CreateResultRequest) (mut *resultModel.Mutation, err error) {
	defer func(start time.Time) { metrics.ObserveScoring(metrics.OpApply, start, err) }(time.Now())

	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	position, err := scoring.ParsePosition(req.Position)
	if err != nil {
		return nil, err
	}
	technocratIDs := dedupe(req.TechnocratIDs)

	err = s.inTx(ctx, func(st stores) error {
		event, err := st.events.GetByID(ctx, req.EventID)
		if err != nil {
			return err
		}
		if _, err := st.teams.GetByID(ctx, req.TeamID); err != nil {
			return err
		}
		if err := checkMembers(ctx, st, req.TeamID, technocratIDs); err != nil {
			return err
		}

		taken, err := st.results.Exists(ctx, event.ID, req.TeamID, position, "")
		if err != nil {
			return err
		}
		if taken {
			return resultModel.ErrDuplicateResult
		}

		points, err := event.Points.PointsFor(position)
		if err != nil {
			return err
		}
		result := &resultModel.Result{
			EventID:       event.ID,
			TeamID:        req.TeamID,
			Position:      position,
			PointsAwarded: points,
		}
		if err := st.results.Create(ctx, result); err != nil {
			return err
		}
		if err := st.results.ReplaceTechnocrats(ctx, result.ID, technocratIDs); err != nil {
			return err
		}
		if err := st.teams.AdjustScore(ctx, req.TeamID, points); err != nil {
			return err
		}

		mut, err = settle(ctx, st, req.TeamID, result.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("result applied",
		"result_id", mut.Result.ID,
		"event_id", req.EventID,
		"team_id", req.TeamID,
		"position", position,
		"points", mut.Result.PointsAwarded,
	)
	return mut, nil
}

// Revise changes a result's position or technocrats.
func (s *service) Revise(ctx context.Context, actor access.Actor, id string, req *resultModel.UpdateResultRequest) (mut *resultModel.Mutation, err error) {
	defer func(start time.Time) { metrics.ObserveScoring(metrics.OpRevise, start, err) }(time.Now())

	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return nil, err
	}
	if req.Position == nil && req.TechnocratIDs == nil {
		return nil, resultModel.ErrNothingToUpdate
	}
	var position scoring.Position
	if req.Position != nil {
		if position, err = scoring.ParsePosition(*req.Position); err != nil {
			return nil, err
		}
	}

	err = s.inTx(ctx, func(st stores) error {
		result, err := st.results.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if position != "" && position != result.Position {
			taken, err := st.results.Exists(ctx, result.EventID, result.TeamID, position, result.ID)
			if err != nil {
				return err
			}
			if taken {
				return resultModel.ErrDuplicateResult
			}

			event, err := st.events.GetByID(ctx, result.EventID)
			if err != nil {
				return err
			}
			points, err := event.Points.PointsFor(position)
			if err != nil {
				return err
			}
			if err := st.results.UpdatePlacement(ctx, result.ID, position, points); err != nil {
				return err
			}
			if delta := scoring.Delta(result.PointsAwarded, points); delta != 0 {
				if err := st.teams.AdjustScore(ctx, result.TeamID, delta); err != nil {
					return err
				}
			}
		}

		if req.TechnocratIDs != nil {
			ids := dedupe(req.TechnocratIDs)
			if err := checkMembers(ctx, st, result.TeamID, ids); err != nil {
				return err
			}
			if err := st.results.ReplaceTechnocrats(ctx, result.ID, ids); err != nil {
				return err
			}
		}

		mut, err = settle(ctx, st, result.TeamID, result.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("result revised", "result_id", id, "position", mut.Result.Position, "points", mut.Result.PointsAwarded)
	return mut, nil
}

// Retract deletes a result and subtracts its points.
func (s *service) Retract(ctx context.Context, actor access.Actor, id string) (mut *resultModel.Mutation, err error) {
	defer func(start time.Time) { metrics.ObserveScoring(metrics.OpRetract, start, err) }(time.Now())

	if err := actor.RequireRole(access.RoleCoordinator); err != nil {
		return nil, err
	}

	var teamID string
	err = s.inTx(ctx, func(st stores) error {
		result, err := st.results.GetByID(ctx, id)
		if err != nil {
			return err
		}
		teamID = result.TeamID

		if err := st.results.Delete(ctx, result.ID); err != nil {
			return err
		}
		if err := st.teams.AdjustScore(ctx, result.TeamID, -result.PointsAwarded); err != nil {
			return err
		}

		mut, err = settle(ctx, st, result.TeamID, "")
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("result retracted", "result_id", id, "team_id", teamID, "team_total", mut.TeamTotalScore)
	return mut, nil
}

// settle recomputes ranks and reports the team's new standing, with the
// result view when resultID is set.
func settle(ctx context.Context, st stores, teamID, resultID string) (*resultModel.Mutation, error) {
	standings, err := st.teams.RecomputeRanks(ctx)
	if err != nil {
		return nil, err
	}
	metrics.SetRankedTeams(len(standings))

	mut := &resultModel.Mutation{}
	for _, standing := range standings {
		if standing.TeamID == teamID {
			mut.TeamTotalScore = standing.TotalScore
			mut.TeamRank = standing.Rank
			break
		}
	}

	if resultID != "" {
		views, err := st.results.Views(ctx, repository.Filter{ResultID: resultID})
		if err != nil {
			return nil, err
		}
		if len(views) == 0 {
			return nil, resultModel.ErrResultNotFound
		}
		mut.Result = &views[0]
	}
	return mut, nil
}

// checkMembers fails unless every id is a technocrat of teamID.
func checkMembers(ctx context.Context, st stores, teamID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := st.technocrats.CountInTeam(ctx, teamID, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return resultModel.ErrTechnocratNotInTeam
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
