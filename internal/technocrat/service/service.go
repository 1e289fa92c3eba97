// Package service provides business logic layer for technocrat module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	eventRepository "github.com/pixelpirates/leaderboard/internal/event/repository"
	resultRepository "github.com/pixelpirates/leaderboard/internal/result/repository"
	teamRepository "github.com/pixelpirates/leaderboard/internal/team/repository"
	technocratModel "github.com/pixelpirates/leaderboard/internal/technocrat/model"
	"github.com/pixelpirates/leaderboard/internal/technocrat/repository"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Service defines the interface for roster management.
type Service interface {
	// Add creates a technocrat on the actor's team.
	Add(ctx context.Context, actor access.Actor, req *technocratModel.AddTechnocratRequest) (*technocratModel.Technocrat, error)

	// Edit partially updates a technocrat of the actor's team.
	Edit(ctx context.Context, actor access.Actor, id string, req *technocratModel.EditTechnocratRequest) (*technocratModel.Technocrat, error)

	// Delete removes a technocrat with its assignments and result links.
	Delete(ctx context.Context, actor access.Actor, id string) error

	// AssignEvents replaces a technocrat's assigned events.
	AssignEvents(ctx context.Context, actor access.Actor, req *technocratModel.AssignEventsRequest) (*technocratModel.TechnocratView, error)

	// RemoveEventAssignment unassigns one event from a technocrat.
	RemoveEventAssignment(ctx context.Context, actor access.Actor, technocratID, eventID string) (*technocratModel.TechnocratView, error)

	// SetIconPlayer makes a technocrat the icon player of its team.
	SetIconPlayer(ctx context.Context, actor access.Actor, technocratID string) (*technocratModel.Technocrat, error)

	// ListAll returns every technocrat with its team name and events.
	ListAll(ctx context.Context) ([]technocratModel.TechnocratView, error)
}

type service struct {
	repo   repository.Repository
	events eventRepository.Repository
	teams  teamRepository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new technocrat service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		events: eventRepository.New(db, logger),
		teams:  teamRepository.New(db, logger),
		db:     db,
		logger: logger,
	}
}

// Add creates a technocrat on the actor's team.
func (s *service) Add(ctx context.Context, actor access.Actor, req *technocratModel.AddTechnocratRequest) (*technocratModel.Technocrat, error) {
	if err := actor.RequireRole(access.RoleOwner); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, technocratModel.ErrInvalidName
	}
	enrollment := technocratModel.NormalizeEnrollment(req.EnrollmentNumber)
	if enrollment == "" {
		return nil, technocratModel.ErrInvalidEnrollment
	}

	taken, err := s.repo.EnrollmentTaken(ctx, enrollment, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, technocratModel.ErrEnrollmentExists
	}

	tc := &technocratModel.Technocrat{
		Name:             name,
		EnrollmentNumber: enrollment,
		Semester:         req.Semester,
		MobileNumber:     req.MobileNumber,
		TeamID:           actor.TeamID,
	}
	if err := s.repo.Create(ctx, tc); err != nil {
		return nil, err
	}

	s.logger.Infow("technocrat added", "technocrat_id", tc.ID, "team_id", tc.TeamID)
	return tc, nil
}

// Edit partially updates a technocrat of the actor's team.
func (s *service) Edit(
	ctx context.Context,
	actor access.Actor,
	id string,
	req *technocratModel.EditTechnocratRequest,
) (*technocratModel.Technocrat, error) {
	if _, err := s.owned(ctx, s.repo, actor, id); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, technocratModel.ErrNothingToUpdate
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, technocratModel.ErrInvalidName
		}
		fields["name"] = name
	}
	if req.EnrollmentNumber != nil {
		enrollment := technocratModel.NormalizeEnrollment(*req.EnrollmentNumber)
		if enrollment == "" {
			return nil, technocratModel.ErrInvalidEnrollment
		}
		taken, err := s.repo.EnrollmentTaken(ctx, enrollment, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, technocratModel.ErrEnrollmentExists
		}
		fields["enrollment_number"] = enrollment
	}
	if req.Semester != nil {
		fields["semester"] = *req.Semester
	}
	if req.MobileNumber != nil {
		fields["mobile_number"] = *req.MobileNumber
	}

	tc, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("technocrat updated", "technocrat_id", id)
	return tc, nil
}

// Delete removes a technocrat with its assignments and result links, and
// clears the team's icon player when it pointed at the technocrat.
func (s *service) Delete(ctx context.Context, actor access.Actor, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTeams := teamRepository.New(tx, s.logger)
		if err := txTeams.LockStandings(ctx); err != nil {
			return err
		}
		if _, err := s.owned(ctx, txRepo, actor, id); err != nil {
			return err
		}
		if err := resultRepository.New(tx, s.logger).DeleteTechnocratLinks(ctx, id); err != nil {
			return err
		}
		if err := txTeams.ClearIconPlayerRef(ctx, id); err != nil {
			return err
		}
		return txRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("technocrat deleted", "technocrat_id", id)
	return nil
}

// AssignEvents replaces a technocrat's assigned events. On any failure the
// previous assignment is left unchanged.
func (s *service) AssignEvents(
	ctx context.Context,
	actor access.Actor,
	req *technocratModel.AssignEventsRequest,
) (*technocratModel.TechnocratView, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if len(req.EventIDs) == 0 {
		return nil, technocratModel.ErrNoEvents
	}
	if len(req.EventIDs) > technocratModel.MaxAssignedEvents {
		return nil, technocratModel.ErrTooManyEvents
	}
	eventIDs := dedupe(req.EventIDs)
	if len(eventIDs) == 0 {
		return nil, technocratModel.ErrNoEvents
	}

	var tc *technocratModel.Technocrat
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		var err error
		if tc, err = s.owned(ctx, txRepo, actor, req.TechnocratID); err != nil {
			return err
		}

		found, err := eventRepository.New(tx, s.logger).CountExisting(ctx, eventIDs)
		if err != nil {
			return err
		}
		if found != int64(len(eventIDs)) {
			return technocratModel.ErrEventNotFound
		}

		return txRepo.ReplaceAssignments(ctx, tc.ID, eventIDs)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("events assigned", "technocrat_id", tc.ID, "events", len(eventIDs))
	return s.view(ctx, tc)
}

// RemoveEventAssignment unassigns one event. Removing an event that was not
// assigned succeeds.
func (s *service) RemoveEventAssignment(
	ctx context.Context,
	actor access.Actor,
	technocratID, eventID string,
) (*technocratModel.TechnocratView, error) {
	tc, err := s.owned(ctx, s.repo, actor, technocratID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveAssignment(ctx, technocratID, eventID); err != nil {
		return nil, err
	}

	s.logger.Infow("event assignment removed", "technocrat_id", technocratID, "event_id", eventID)
	return s.view(ctx, tc)
}

// SetIconPlayer flags the technocrat, clears the previous icon player and
// points the team at the new one in a single transaction.
func (s *service) SetIconPlayer(ctx context.Context, actor access.Actor, technocratID string) (*technocratModel.Technocrat, error) {
	var tc *technocratModel.Technocrat
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTeams := teamRepository.New(tx, s.logger)
		if err := txTeams.LockStandings(ctx); err != nil {
			return err
		}
		owned, err := s.owned(ctx, txRepo, actor, technocratID)
		if err != nil {
			return err
		}
		if err := txRepo.SetIconFlag(ctx, owned.TeamID, owned.ID); err != nil {
			return err
		}
		if err := txTeams.SetIconPlayer(ctx, owned.TeamID, &owned.ID); err != nil {
			return err
		}
		tc, err = txRepo.GetByID(ctx, owned.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("icon player set", "technocrat_id", tc.ID, "team_id", tc.TeamID)
	return tc, nil
}

// ListAll returns every technocrat with its team name and events.
func (s *service) ListAll(ctx context.Context) ([]technocratModel.TechnocratView, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.ListByName(ctx)
	if err != nil {
		return nil, err
	}
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.TeamName
	}

	ids := make([]string, len(all))
	for i, tc := range all {
		ids[i] = tc.ID
	}
	assigned, err := s.repo.Assignments(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]technocratModel.TechnocratView, len(all))
	for i, tc := range all {
		views[i] = technocratModel.TechnocratView{
			Technocrat:     tc,
			TeamName:       teamNames[tc.TeamID],
			AssignedEvents: orEmpty(assigned[tc.ID]),
		}
	}
	return views, nil
}

// owned loads a technocrat and checks that the actor may manage it.
func (s *service) owned(
	ctx context.Context,
	repo repository.Repository,
	actor access.Actor,
	id string,
) (*technocratModel.Technocrat, error) {
	if err := actor.RequireRole(access.RoleOwner); err != nil {
		return nil, err
	}
	tc, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.AuthorizeTeam(tc.TeamID); err != nil {
		return nil, technocratModel.ErrNotTeamMember
	}
	return tc, nil
}

func (s *service) view(ctx context.Context, tc *technocratModel.Technocrat) (*technocratModel.TechnocratView, error) {
	assigned, err := s.repo.Assignments(ctx, []string{tc.ID})
	if err != nil {
		return nil, err
	}
	return &technocratModel.TechnocratView{Technocrat: *tc, AssignedEvents: orEmpty(assigned[tc.ID])}, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func orEmpty(events []technocratModel.AssignedEvent) []technocratModel.AssignedEvent {
	if events == nil {
		return []technocratModel.AssignedEvent{}
	}
	return events
}
