// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/metrics"
	"github.com/pixelpirates/leaderboard/internal/scoring"
	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
	"github.com/pixelpirates/leaderboard/internal/team/repository"
	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
	technocratRepository "github.com/pixelpirates/leaderboard/internal/technocrat/repository"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// Leaderboard returns every team with its score rank in the requested display order.
	Leaderboard(ctx context.Context, sortBy string) ([]teamModel.LeaderboardEntry, error)

	// AllTeams returns every team in score order with the total count.
	AllTeams(ctx context.Context) (*teamModel.TeamsResponse, error)

	// Profile returns the actor's team with its roster.
	Profile(ctx context.Context, actor access.Actor) (*teamModel.TeamProfile, error)

	// UpdateTeam edits the actor's team name or owner contact.
	UpdateTeam(ctx context.Context, actor access.Actor, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error)

	// RecomputeRanks re-derives and persists every team's rank.
	RecomputeRanks(ctx context.Context) ([]scoring.Standing, error)
}

type service struct {
	repo        repository.Repository
	technocrats technocratRepository.Repository
	db          *gorm.DB
	logger      *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:        repo,
		technocrats: technocratRepository.New(db, logger),
		db:          db,
		logger:      logger,
	}
}

// Leaderboard ranks teams by score. Sorting by name only changes the display
// order; each entry keeps its score rank.
func (s *service) Leaderboard(ctx context.Context, sortBy string) ([]teamModel.LeaderboardEntry, error) {
	order, err := teamModel.ParseSortBy(sortBy)
	if err != nil {
		return nil, err
	}

	byScore, err := s.repo.ListByScore(ctx)
	if err != nil {
		return nil, err
	}
	ranks := rankIndex(byScore)

	teams := byScore
	if order == teamModel.SortByName {
		if teams, err = s.repo.ListByName(ctx); err != nil {
			return nil, err
		}
	}

	return s.entries(ctx, teams, ranks)
}

// AllTeams returns every team in score order with the total count.
func (s *service) AllTeams(ctx context.Context) (*teamModel.TeamsResponse, error) {
	teams, err := s.repo.ListByScore(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries(ctx, teams, rankIndex(teams))
	if err != nil {
		return nil, err
	}
	return &teamModel.TeamsResponse{TotalTeams: len(entries), Teams: entries}, nil
}

// Profile returns the actor's team with its roster and assigned events.
func (s *service) Profile(ctx context.Context, actor access.Actor) (*teamModel.TeamProfile, error) {
	if err := actor.RequireRole(access.RoleOwner); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(ctx, actor.TeamID)
	if err != nil {
		return nil, err
	}

	roster, err := s.technocrats.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(roster))
	for i, tc := range roster {
		ids[i] = tc.ID
	}
	assigned, err := s.technocrats.Assignments(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]technocratModel.TechnocratView, len(roster))
	var icon *teamModel.IconPlayer
	for i, tc := range roster {
		events := assigned[tc.ID]
		if events == nil {
			events = []technocratModel.AssignedEvent{}
		}
		views[i] = technocratModel.TechnocratView{Technocrat: tc, AssignedEvents: events}
		if team.IconPlayerID != nil && *team.IconPlayerID == tc.ID {
			icon = &teamModel.IconPlayer{
				ID:               tc.ID,
				Name:             tc.Name,
				EnrollmentNumber: tc.EnrollmentNumber,
				Semester:         tc.Semester,
			}
		}
	}

	return &teamModel.TeamProfile{
		Team:             team,
		IconPlayer:       icon,
		Technocrats:      views,
		TechnocratsCount: len(views),
	}, nil
}

// UpdateTeam edits the actor's team name or owner contact.
func (s *service) UpdateTeam(ctx context.Context, actor access.Actor, req *teamModel.UpdateTeamRequest) (*teamModel.Team, error) {
	if err := actor.RequireRole(access.RoleOwner); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.TeamName != nil {
		name := strings.TrimSpace(*req.TeamName)
		if name == "" {
			return nil, teamModel.ErrInvalidTeamName
		}
		fields["team_name"] = name
	}
	if req.OwnerContact != nil {
		fields["owner_contact"] = *req.OwnerContact
	}
	if len(fields) == 0 {
		return nil, teamModel.ErrNothingToUpdate
	}

	team, err := s.repo.Update(ctx, actor.TeamID, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team updated", "team_id", team.ID)
	return team, nil
}

// RecomputeRanks re-derives and persists every team's rank in one transaction.
func (s *service) RecomputeRanks(ctx context.Context) (standings []scoring.Standing, err error) {
	defer func(start time.Time) { metrics.ObserveScoring(metrics.OpRecompute, start, err) }(time.Now())

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := txRepo.LockStandings(ctx); err != nil {
			return err
		}
		var txErr error
		standings, txErr = txRepo.RecomputeRanks(ctx)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	metrics.SetRankedTeams(len(standings))
	s.logger.Infow("ranks recomputed", "teams", len(standings))
	return standings, nil
}

// rankIndex derives score ranks for teams listed in store score order.
func rankIndex(byScore []teamModel.Team) map[string]int {
	standings := make([]scoring.Standing, len(byScore))
	for i, t := range byScore {
		standings[i] = scoring.Standing{TeamID: t.ID, TotalScore: t.TotalScore}
	}

	ranks := make(map[string]int, len(standings))
	for _, st := range scoring.Rank(standings) {
		ranks[st.TeamID] = st.Rank
	}
	return ranks
}

func (s *service) entries(ctx context.Context, teams []teamModel.Team, ranks map[string]int) ([]teamModel.LeaderboardEntry, error) {
	var iconIDs []string
	for _, t := range teams {
		if t.IconPlayerID != nil {
			iconIDs = append(iconIDs, *t.IconPlayerID)
		}
	}
	icons, err := s.repo.IconPlayers(ctx, iconIDs)
	if err != nil {
		return nil, err
	}

	entries := make([]teamModel.LeaderboardEntry, len(teams))
	for i, t := range teams {
		entries[i] = teamModel.LeaderboardEntry{
			Rank:         ranks[t.ID],
			TeamID:       t.ID,
			TeamName:     t.TeamName,
			TeamCode:     t.TeamCode,
			OwnerName:    t.OwnerName,
			OwnerContact: t.OwnerContact,
			TotalScore:   t.TotalScore,
		}
		if t.IconPlayerID != nil {
			if p, ok := icons[*t.IconPlayerID]; ok {
				entries[i].IconPlayer = &p
			}
		}
	}
	return entries, nil
}
