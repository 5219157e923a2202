package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown user and a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminStore is the slice of the query layer the auth service needs.
type AdminStore interface {
	CountAdmins(ctx context.Context) (int, error)
	CreateAdmin(ctx context.Context, user *db.AdminUser) (*db.AdminUser, error)
	FindAdminByUsername(ctx context.Context, username string) (*db.AdminUser, error)
	FindAdminByID(ctx context.Context, id int64) (*db.AdminUser, error)
	UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type AuthService struct {
	store   AdminStore
	tokens  *TokenService
	compare func(hash, password []byte) error
}

func NewAuthService(store AdminStore, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens, compare: bcrypt.CompareHashAndPassword}
}

var (
	unknownUserHashOnce sync.Once
	unknownUserHash     []byte
)

// unknownUserPasswordHash is compared against when the username does not
// exist, so both failed-login paths pay for one bcrypt comparison.
func unknownUserPasswordHash() []byte {
	unknownUserHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), bcrypt.DefaultCost)
		if err != nil {
			log.Errorf("Error hashing placeholder password: %v", err)
			return
		}
		unknownUserHash = hash
	})
	return unknownUserHash
}

// Login checks the credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)

	user, err := s.store.FindAdminByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.compare(unknownUserPasswordHash(), []byte(password))
		log.Debugf("Login: admin '%s' not found.", username)
		return nil, ErrInvalidCredentials
	}

	if err := s.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debugf("Login: invalid password for admin '%s'.", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	log.Infof("Admin %s logged in successfully.", user.Username)
	return &LoginResult{ID: user.ID, Username: user.Username, Token: token}, nil
}

// Authenticate resolves a bearer token to the admin it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*db.AdminUser, error) {
	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	user, err := s.store.FindAdminByID(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Warnf("Authenticate: token for deleted admin ID '%d'.", claims.ID)
		return nil, ErrInvalidToken
	}
	return user, nil
}

// EnsureDefaultAdmin creates the configured account when no admin exists yet.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, username, password string) error {
	count, err := s.store.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.store.CreateAdmin(ctx, &db.AdminUser{Username: username, PasswordHash: hash}); err != nil {
		return err
	}
	log.Warnf("Created default admin '%s'. Change its password with `portfolio-api admin reset-password`.", username)
	return nil
}

// ResetPassword sets the password of username, creating the account if needed.
// It reports whether a new account was created.
func (s *AuthService) ResetPassword(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, errors.New("username and password are required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, err
	}

	user, err := s.store.FindAdminByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		if _, err := s.store.CreateAdmin(ctx, &db.AdminUser{Username: username, PasswordHash: hash}); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, s.store.UpdateAdminPassword(ctx, user.ID, hash)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("Error hashing password: %v", err)
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
