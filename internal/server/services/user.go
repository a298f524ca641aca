// Package services implements the use cases of the server on top of the
// repositories and the auth primitives. Handlers call services; services
// never see HTTP.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// PasswordHasher is satisfied by *auth.PasswordHasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// TokenIssuer is satisfied by *auth.TokenManager.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// Revoker is satisfied by *auth.Denylist.
type Revoker interface {
	Revoke(tokenID string) error
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token string
	User  *models.User
}

type UserService struct {
	users   users.Repository
	hasher  PasswordHasher
	tokens  TokenIssuer
	revoker Revoker

	// decoy is verified against when the email is unknown so both login
	// failure paths cost one hash verification.
	decoyOnce sync.Once
	decoy     string
}

// NewUserService wires the credential store with the hasher and token
// issuer. revoker may be nil, in which case Logout has no server effect.
func NewUserService(repo users.Repository, hasher PasswordHasher, tokens TokenIssuer, revoker Revoker) *UserService {
	return &UserService{users: repo, hasher: hasher, tokens: tokens, revoker: revoker}
}

// Register creates a new identity. Empty fields fail with
// common.ErrValidation before the store is touched; a taken email fails with
// common.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if isBlank(username) || isBlank(email) || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &models.User{
		UserName:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login checks the credentials and issues a token. An unknown email and a
// wrong password both fail with common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if isBlank(email) || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrValidation)
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.decoyHash())
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the token id when revocation is enabled. Without a revoker
// it only acknowledges; the client discards the token.
func (s *UserService) Logout(ctx context.Context, tokenID string) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(tokenID); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (s *UserService) decoyHash() string {
	s.decoyOnce.Do(func() {
		s.decoy, _ = s.hasher.Hash(fmt.Sprint("decoy-", time.Now().UnixNano()))
	})
	return s.decoy
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
