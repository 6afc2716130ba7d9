package commands

import (
	"context"
	"log/slog"

	"github.com/angelgmx/reservaIA/internal/domain/user"
	reqdto "github.com/angelgmx/reservaIA/internal/handler/dto/request"
	"github.com/angelgmx/reservaIA/internal/infra"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
	"github.com/angelgmx/reservaIA/internal/pkg/jwt"
	"github.com/angelgmx/reservaIA/internal/pkg/password"
	"github.com/angelgmx/reservaIA/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	SignUp(ctx context.Context, req reqdto.SignUpRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, req reqdto.SignUpRequest) (*LoginResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if _, err := user.NewPassword(req.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(email, hash, displayName)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, tx.DB(), newUser); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyTaken)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(newUser.ID(), newUser.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: newUser.ID(), AccessToken: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", snap.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{UserID: snap.ID, AccessToken: token}, nil
}
