// Package services contains the async operations of the SNS client.
// This file defines the auth service: credential exchange, registration and
// the operations on my profile and the profile directory.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snsclone/internal/client/async"
	"github.com/dmitrijs2005/snsclone/internal/client/client"
	"github.com/dmitrijs2005/snsclone/internal/client/models"
	"github.com/dmitrijs2005/snsclone/internal/client/state"
)

// TokenStore persists the session credential obtained at login.
type TokenStore interface {
	Save(ctx context.Context, token, email string) error
}

// AuthService defines the auth slice operations.
//
// Contract:
//   - Login: exchange credentials for a token and persist it. Profile state
//     is not touched.
//   - Register: create an account. The caller is not logged in.
//   - CreateMyProfile: create my profile with the given nickname.
//   - UpdateMyProfile: send an edit; the result replaces my profile and
//     its directory entry.
//   - FetchMyProfile: load my profile. Rejection means the stored
//     credential is no longer usable.
//   - FetchAllProfiles: replace the directory.
//
// Each call settles to a Result; state changes only on fulfilment.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) async.Result[models.TokenPair]
	Register(ctx context.Context, creds models.Credentials) async.Result[models.Account]
	CreateMyProfile(ctx context.Context, nickName string) async.Result[models.Profile]
	UpdateMyProfile(ctx context.Context, upd models.ProfileUpdate) async.Result[models.Profile]
	FetchMyProfile(ctx context.Context) async.Result[models.Profile]
	FetchAllProfiles(ctx context.Context) async.Result[[]models.Profile]
}

type authService struct {
	client  client.Client
	gateway *async.Gateway
	slice   *state.AuthSlice
	tokens  TokenStore
}

// NewAuthService constructs an AuthService bound to the API client, the
// lifecycle gateway, the auth slice and the credential store.
func NewAuthService(c client.Client, g *async.Gateway, slice *state.AuthSlice, tokens TokenStore) AuthService {
	return &authService{client: c, gateway: g, slice: slice, tokens: tokens}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) async.Result[models.TokenPair] {
	return async.Do(ctx, a.gateway, "auth/login", func(ctx context.Context) (models.TokenPair, error) {
		pair, err := a.client.CreateToken(ctx, creds)
		if err != nil {
			return models.TokenPair{}, fmt.Errorf("login error: %w", err)
		}
		if err := a.tokens.Save(ctx, pair.Access, creds.Email); err != nil {
			return models.TokenPair{}, fmt.Errorf("token saving error: %w", err)
		}
		return *pair, nil
	}, nil)
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) async.Result[models.Account] {
	return async.Do(ctx, a.gateway, "auth/register", func(ctx context.Context) (models.Account, error) {
		acc, err := a.client.Register(ctx, creds)
		if err != nil {
			return models.Account{}, fmt.Errorf("register error: %w", err)
		}
		return *acc, nil
	}, nil)
}

func (a *authService) CreateMyProfile(ctx context.Context, nickName string) async.Result[models.Profile] {
	return async.Do(ctx, a.gateway, "profile/create", func(ctx context.Context) (models.Profile, error) {
		p, err := a.client.CreateProfile(ctx, nickName)
		if err != nil {
			return models.Profile{}, fmt.Errorf("create profile error: %w", err)
		}
		return *p, nil
	}, a.slice.SetMyProfile)
}

func (a *authService) UpdateMyProfile(ctx context.Context, upd models.ProfileUpdate) async.Result[models.Profile] {
	return async.Do(ctx, a.gateway, "profile/update", func(ctx context.Context) (models.Profile, error) {
		p, err := a.client.UpdateProfile(ctx, upd)
		if err != nil {
			return models.Profile{}, fmt.Errorf("update profile error: %w", err)
		}
		return *p, nil
	}, a.slice.MergeProfile)
}

// FetchMyProfile consumes the first element of the backend's collection.
// An empty collection is rejected with client.ErrProfileNotFound.
func (a *authService) FetchMyProfile(ctx context.Context) async.Result[models.Profile] {
	return async.Do(ctx, a.gateway, "profile/fetchMine", func(ctx context.Context) (models.Profile, error) {
		ps, err := a.client.GetMyProfile(ctx)
		if err != nil {
			return models.Profile{}, fmt.Errorf("fetch my profile error: %w", err)
		}
		if len(ps) == 0 {
			return models.Profile{}, client.ErrProfileNotFound
		}
		return ps[0], nil
	}, a.slice.SetMyProfile)
}

func (a *authService) FetchAllProfiles(ctx context.Context) async.Result[[]models.Profile] {
	return async.Do(ctx, a.gateway, "profile/fetchAll", func(ctx context.Context) ([]models.Profile, error) {
		ps, err := a.client.ListProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch profiles error: %w", err)
		}
		return ps, nil
	}, a.slice.ReplaceProfiles)
}
