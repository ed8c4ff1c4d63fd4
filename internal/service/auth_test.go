package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lifeline-salud/backend/internal/config"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

type fakeAuthStore struct {
	users    map[string]*model.UserCredentials
	sessions map[string]*model.Session
	profiles map[int64]*model.UserProfile
	lastHash string
	nextID   int64
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{
		users:    make(map[string]*model.UserCredentials),
		sessions: make(map[string]*model.Session),
		profiles: make(map[int64]*model.UserProfile),
	}
}

func (f *fakeAuthStore) CreateUserAndAccount(ctx context.Context, req model.SignupRequest, passwordHash string) (*model.SignupResult, error) {
	if _, exists := f.users[req.Email]; exists {
		return nil, &pgconn.PgError{
			Code:    "23505",
			Message: "duplicate key value violates unique constraint",
			Detail:  "Key (email)=(" + req.Email + ") already exists.",
		}
	}
	f.nextID++
	userID := f.nextID
	f.nextID++
	accountID := f.nextID
	f.lastHash = passwordHash
	f.users[req.Email] = &model.UserCredentials{
		ID:           userID,
		AccountID:    accountID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}
	f.profiles[userID] = &model.UserProfile{
		ID:        userID,
		AccountID: accountID,
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	return &model.SignupResult{AccountID: accountID, UserID: userID}, nil
}

func (f *fakeAuthStore) GetUserCredentialsByEmail(ctx context.Context, email string) (*model.UserCredentials, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeAuthStore) CreateSession(ctx context.Context, userID int64, token, ip, userAgent string) error {
	f.sessions[token] = &model.Session{
		UserID:    userID,
		Token:     token,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeAuthStore) GetActiveSession(ctx context.Context, userID int64, token string) (*model.Session, error) {
	s, ok := f.sessions[token]
	if !ok || s.UserID != userID || s.RevokedAt != nil {
		return nil, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeAuthStore) EndSession(ctx context.Context, userID int64, token string) error {
	if s, ok := f.sessions[token]; ok && s.UserID == userID && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (f *fakeAuthStore) GetUserData(ctx context.Context, userID int64) (*model.UserProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func newTestAuthService(t *testing.T, store AuthStore) *AuthService {
	t.Helper()
	svc, err := NewAuthService(store, zap.NewNop(), config.AuthConfig{JWTSecret: testSecret})
	require.NoError(t, err)
	return svc
}

func signupAna(t *testing.T, svc *AuthService) *model.SignupResult {
	t.Helper()
	res, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "ana",
		Email:    "ana@x.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return res
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService(newFakeAuthStore(), zap.NewNop(), config.AuthConfig{})
	assert.ErrorIs(t, err, ErrMisconfigured)
}

func TestSignupHashesPassword(t *testing.T) {
	store := newFakeAuthStore()
	svc := newTestAuthService(t, store)

	res := signupAna(t, svc)
	assert.NotZero(t, res.UserID)
	assert.NotZero(t, res.AccountID)

	assert.NotEqual(t, "secret123", store.lastHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.lastHash), []byte("secret123")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(store.lastHash), []byte("other")))
}

func TestSignupDuplicateEmailSurfacesStoreError(t *testing.T) {
	store := newFakeAuthStore()
	svc := newTestAuthService(t, store)

	signupAna(t, svc)
	_, err := svc.Signup(context.Background(), model.SignupRequest{Username: "ana2", Email: "ana@x.com", Password: "secret123"})

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())

	_, err := svc.Login(context.Background(), "nobody@x.com", "whatever", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeAuthStore()
	svc := newTestAuthService(t, store)
	signupAna(t, svc)

	_, err := svc.Login(context.Background(), "ana@x.com", "not-the-password", "127.0.0.1", "test")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesTokenAndPersistsSession(t *testing.T) {
	store := newFakeAuthStore()
	svc := newTestAuthService(t, store)
	res := signupAna(t, svc)

	login, err := svc.Login(context.Background(), "ana@x.com", "secret123", "10.0.0.5", "go-test")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "ana@x.com", login.User.Email)

	user, err := svc.ParseToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, res.UserID, user.ID)
	assert.Equal(t, "ana@x.com", user.Email)

	session, ok := store.sessions[login.Token]
	require.True(t, ok)
	assert.Equal(t, res.UserID, session.UserID)
	assert.Equal(t, "10.0.0.5", session.IPAddress)
	assert.Equal(t, "go-test", session.UserAgent)
	assert.Nil(t, session.RevokedAt)

	assert.NoError(t, svc.ValidateSession(context.Background(), res.UserID, login.Token))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())

	token, err := svc.issueToken(7, "ana@x.com")
	require.NoError(t, err)

	user, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ana@x.com", user.Email)
}

func TestParseTokenExpired(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())

	claims := authClaims{
		UserID: 7,
		Email:  "ana@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseTokenTamperedSignature(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())

	claims := authClaims{
		UserID: 7,
		Email:  "ana@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-even-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesSessionImmediately(t *testing.T) {
	store := newFakeAuthStore()
	svc := newTestAuthService(t, store)
	res := signupAna(t, svc)

	login, err := svc.Login(context.Background(), "ana@x.com", "secret123", "127.0.0.1", "test")
	require.NoError(t, err)
	require.NoError(t, svc.ValidateSession(context.Background(), res.UserID, login.Token))

	require.NoError(t, svc.Logout(context.Background(), res.UserID, login.Token))
	assert.ErrorIs(t, svc.ValidateSession(context.Background(), res.UserID, login.Token), ErrInvalidSession)

	// Revoking again is a no-op, not an error.
	assert.NoError(t, svc.Logout(context.Background(), res.UserID, login.Token))
}

func TestValidateSessionUnknownToken(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())
	assert.ErrorIs(t, svc.ValidateSession(context.Background(), 1, "missing"), ErrInvalidSession)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newTestAuthService(t, newFakeAuthStore())

	_, err := svc.GetProfile(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
