package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/crypto"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo repository.UserRepository
}

func NewAuthDomain(userRepo repository.UserRepository) *authDomain {
	return &authDomain{userRepo: userRepo}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	if req.Account == "" || req.Email == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty account, email, or password")
	}

	if req.Password != req.CheckPassword {
		return nil, errorx.New(errorx.BadRequest, "Passwords do not match!")
	}

	// A best-effort pre-check against the persisted set. Two registrations
	// racing past it are finally resolved by the unique indexes on account and
	// email.
	var accountTaken, emailTaken bool
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		_, err := d.userRepo.GetByAccount(egCtx, req.Account)
		if err == nil {
			accountTaken = true
			return nil
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	})
	eg.Go(func() error {
		_, err := d.userRepo.GetByEmail(egCtx, req.Email)
		if err == nil {
			emailTaken = true
			return nil
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}

		return err
	})

	if err := eg.Wait(); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check account and email uniqueness: %v", err)
		return nil, errorx.Unknown
	}

	if accountTaken {
		return nil, errorx.New(errorx.AlreadyExists, "Account already exists!")
	}

	if emailTaken {
		return nil, errorx.New(errorx.AlreadyExists, "Email already exists!")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash the password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Account:  req.Account,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     entity.UserRole,
		Avatar:   fmt.Sprintf("https://loremflickr.com/320/240/cat?random=%d", crypto.RandIntn(100)),
		Cover:    fmt.Sprintf("https://loremflickr.com/820/312/space?random=%d", crypto.RandIntn(100)),
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Account already exists!")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{User: model.ConvertUser(user, true)}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	user, err := d.userRepo.GetByAccount(ctx, req.Account)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Account or password is wrong")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by account: %v", err)
		return nil, errorx.Unknown
	}

	if err := crypto.ComparePassword(user.Password, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Account or password is wrong")
	}

	// The token payload is the full non-credential projection of the user.
	payload := model.ConvertUser(user, true)
	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration, payload)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{Token: token, User: payload}, nil
}
