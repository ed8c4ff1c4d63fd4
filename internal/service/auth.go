package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifeline-salud/backend/internal/config"
	"github.com/lifeline-salud/backend/internal/db"
	"github.com/lifeline-salud/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenCookieName = "token"
	tokenTTL        = time.Hour
	bcryptCost      = 10
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidSession     = errors.New("invalid session")
	ErrNotFound           = errors.New("not found")
	ErrMisconfigured      = errors.New("auth config invalid")
)

// AuthStore is the slice of the credential store the auth service needs.
type AuthStore interface {
	CreateUserAndAccount(ctx context.Context, req model.SignupRequest, passwordHash string) (*model.SignupResult, error)
	GetUserCredentialsByEmail(ctx context.Context, email string) (*model.UserCredentials, error)
	CreateSession(ctx context.Context, userID int64, token, ip, userAgent string) error
	GetActiveSession(ctx context.Context, userID int64, token string) (*model.Session, error)
	EndSession(ctx context.Context, userID int64, token string) error
	GetUserData(ctx context.Context, userID int64) (*model.UserProfile, error)
}

type CookieConfig struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

type AuthService struct {
	store     AuthStore
	logger    *zap.Logger
	jwtSecret []byte
	cookieCfg CookieConfig
}

type authClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func NewAuthService(store AuthStore, logger *zap.Logger, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	return &AuthService{
		store:     store,
		logger:    logger,
		jwtSecret: []byte(cfg.JWTSecret),
		cookieCfg: CookieConfig{
			Name:     tokenCookieName,
			Path:     "/",
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   int(tokenTTL.Seconds()),
		},
	}, nil
}

func (s *AuthService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

// Signup hashes the password and hands everything else to the
// create_user_and_account procedure, which creates the account and user
// rows atomically. Store rejections (duplicate email, bad references)
// come back as pg errors and are surfaced to the handler untouched.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("password hashing failed", zap.Error(err))
		return nil, err
	}

	res, err := s.store.CreateUserAndAccount(ctx, req, string(hash))
	if err != nil {
		s.logger.Error("signup rejected by store", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	return res, nil
}

// Login verifies credentials, issues a token and persists the session.
// Unknown email and wrong password both map to ErrInvalidCredentials;
// only the server-side log distinguishes them.
func (s *AuthService) Login(ctx context.Context, email, password, ip, userAgent string) (*model.LoginResult, error) {
	user, err := s.store.GetUserCredentialsByEmail(ctx, email)
	if err != nil {
		if db.IsNoRows(err) {
			s.logger.Warn("login attempt for unknown email", zap.String("email", email))
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("credential lookup failed", zap.Error(err))
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("login attempt with wrong password", zap.Int64("userId", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, user.Email)
	if err != nil {
		s.logger.Error("token signing failed", zap.Error(err))
		return nil, err
	}

	if err := s.store.CreateSession(ctx, user.ID, token, ip, userAgent); err != nil {
		s.logger.Error("session creation failed", zap.Int64("userId", user.ID), zap.Error(err))
		return nil, err
	}

	return &model.LoginResult{
		Token: token,
		User: model.UserProfile{
			ID:             user.ID,
			AccountID:      user.AccountID,
			Username:       user.Username,
			Email:          user.Email,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			AccountTypeID:  user.AccountTypeID,
			UserTypeID:     user.UserTypeID,
			SubscriptionID: user.SubscriptionID,
		},
	}, nil
}

// Logout revokes the session for (userID, token). Revoking an already
// revoked or unknown session is not an error.
func (s *AuthService) Logout(ctx context.Context, userID int64, token string) error {
	if err := s.store.EndSession(ctx, userID, token); err != nil {
		s.logger.Error("session revocation failed", zap.Int64("userId", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	profile, err := s.store.GetUserData(ctx, userID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		s.logger.Error("profile lookup failed", zap.Int64("userId", userID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// ValidateSession confirms an active (non-revoked) session row exists for
// the pair. Token validity alone is not enough: a revoked session must be
// rejected even while its token is still unexpired.
func (s *AuthService) ValidateSession(ctx context.Context, userID int64, token string) error {
	if _, err := s.store.GetActiveSession(ctx, userID, token); err != nil {
		if db.IsNoRows(err) {
			return ErrInvalidSession
		}
		s.logger.Error("session lookup failed", zap.Int64("userId", userID), zap.Error(err))
		return err
	}
	return nil
}

// ParseToken checks signature and expiry and recovers the embedded
// identity. It never consults the store; session validity is a separate
// check.
func (s *AuthService) ParseToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &model.AuthUser{
		ID:    claims.UserID,
		Email: claims.Email,
	}, nil
}

func (s *AuthService) issueToken(userID int64, email string) (string, error) {
	now := time.Now()
	claims := authClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
