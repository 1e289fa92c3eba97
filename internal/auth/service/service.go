// Package service provides registration, login and token authentication.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pixelpirates/leaderboard/internal/access"
	"github.com/pixelpirates/leaderboard/internal/apperr"
	authModel "github.com/pixelpirates/leaderboard/internal/auth/model"
	"github.com/pixelpirates/leaderboard/internal/auth/password"
	"github.com/pixelpirates/leaderboard/internal/auth/repository"
	"github.com/pixelpirates/leaderboard/internal/auth/token"
	teamModel "github.com/pixelpirates/leaderboard/internal/team/model"
	teamRepository "github.com/pixelpirates/leaderboard/internal/team/repository"
	"github.com/pixelpirates/leaderboard/internal/validation"
)

// Service defines the interface for authentication operations.
type Service interface {
	// RegisterOwner creates a team and its owner account together.
	RegisterOwner(ctx context.Context, req *authModel.RegisterOwnerRequest) (*authModel.Session, error)

	// RegisterCoordinator creates a coordinator account.
	RegisterCoordinator(ctx context.Context, req *authModel.RegisterCoordinatorRequest) (*authModel.Session, error)

	// Login checks credentials for an account of the given role.
	Login(ctx context.Context, role access.Role, req *authModel.LoginRequest) (*authModel.Session, error)

	// Authenticate resolves a bearer token to the current actor.
	Authenticate(ctx context.Context, bearer string) (access.Actor, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	db     *gorm.DB
	hasher *password.Hasher
	tokens *token.Manager
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(
	repo repository.Repository,
	db *gorm.DB,
	hasher *password.Hasher,
	tokens *token.Manager,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teamRepository.New(db, logger),
		db:     db,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// RegisterOwner creates a team and its owner account in one transaction.
func (s *service) RegisterOwner(ctx context.Context, req *authModel.RegisterOwnerRequest) (*authModel.Session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, authModel.ErrInvalidName
	}
	teamName := strings.TrimSpace(req.TeamName)
	if teamName == "" {
		return nil, teamModel.ErrInvalidTeamName
	}
	teamCode := teamModel.NormalizeCode(req.TeamCode)
	if teamCode == "" {
		return nil, teamModel.ErrInvalidTeamCode
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var (
		account *authModel.Account
		team    *teamModel.Team
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTeams := teamRepository.New(tx, s.logger)
		if err := txTeams.LockStandings(ctx); err != nil {
			return err
		}

		if _, err := txRepo.GetByEmail(ctx, req.Email); err == nil {
			return authModel.ErrEmailExists
		} else if !errors.Is(err, authModel.ErrAccountNotFound) {
			return err
		}

		team = &teamModel.Team{
			TeamName:     teamName,
			TeamCode:     teamCode,
			OwnerName:    name,
			OwnerEmail:   authModel.NormalizeEmail(req.Email),
			OwnerContact: req.OwnerContact,
		}
		if err := txTeams.Create(ctx, team); err != nil {
			return err
		}

		account = &authModel.Account{
			Name:         name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         access.RoleOwner,
			TeamID:       &team.ID,
		}
		if err := txRepo.Create(ctx, account); err != nil {
			return err
		}
		if err := txTeams.SetOwner(ctx, team.ID, account.ID); err != nil {
			return err
		}
		team.OwnerID = &account.ID

		_, err := txTeams.RecomputeRanks(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("owner registered", "account_id", account.ID, "team_id", team.ID)
	return s.session(ctx, account)
}

// RegisterCoordinator creates a coordinator account.
func (s *service) RegisterCoordinator(ctx context.Context, req *authModel.RegisterCoordinatorRequest) (*authModel.Session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, authModel.ErrInvalidName
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	account := &authModel.Account{
		Name:         name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         access.RoleCoordinator,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Infow("coordinator registered", "account_id", account.ID)
	return s.session(ctx, account)
}

// Login checks credentials. Unknown email, wrong password and wrong role all
// fail with the same error.
func (s *service) Login(ctx context.Context, role access.Role, req *authModel.LoginRequest) (*authModel.Session, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, authModel.ErrAccountNotFound) {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(account.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, authModel.ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Role != role {
		return nil, authModel.ErrInvalidCredentials
	}

	s.logger.Infow("login succeeded", "account_id", account.ID, "role", account.Role)
	return s.session(ctx, account)
}

// Authenticate resolves a bearer token to the current actor. The account is
// reloaded so deleted accounts lose access immediately.
func (s *service) Authenticate(ctx context.Context, bearer string) (access.Actor, error) {
	claims, err := s.tokens.Parse(bearer)
	if err != nil {
		return access.Actor{}, apperr.Wrap(apperr.KindAuthentication, "invalid token", err)
	}

	account, err := s.repo.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, authModel.ErrAccountNotFound) {
			return access.Actor{}, authModel.ErrAccountGone
		}
		return access.Actor{}, err
	}
	if account.Role != claims.Role {
		return access.Actor{}, apperr.New(apperr.KindAuthentication, "token role does not match account")
	}

	return account.Actor(), nil
}

func (s *service) session(ctx context.Context, account *authModel.Account) (*authModel.Session, error) {
	signed, err := s.tokens.Issue(account.ID, account.Role, account.Email)
	if err != nil {
		return nil, err
	}

	session := &authModel.Session{Token: signed, Account: account.View()}
	if account.TeamID == nil {
		return session, nil
	}

	team, err := s.teams.GetByID(ctx, *account.TeamID)
	if err != nil {
		return nil, err
	}
	session.Team = &authModel.TeamSummary{
		ID:         team.ID,
		TeamName:   team.TeamName,
		TeamCode:   team.TeamCode,
		TotalScore: team.TotalScore,
		Rank:       team.Rank,
	}
	return session, nil
}
