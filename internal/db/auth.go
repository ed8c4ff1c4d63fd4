package db

import (
	"context"

	"github.com/lifeline-salud/backend/internal/model"
)

// CreateUserAndAccount runs the all-or-nothing signup procedure. The
// procedure creates the account and user rows in one transaction and
// returns both ids through its OUT parameters.
func (db *Postgres) CreateUserAndAccount(ctx context.Context, req model.SignupRequest, passwordHash string) (*model.SignupResult, error) {
	query := `CALL create_user_and_account($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULL, NULL)`

	var res model.SignupResult
	err := db.Pool.QueryRow(ctx, query,
		req.Username,
		req.Email,
		passwordHash,
		req.FirstName,
		req.LastName,
		req.AccountTypeID,
		req.UserTypeID,
		req.SubscriptionID,
		req.CompanyName,
		req.Address,
		req.Phone,
		req.TaxID,
		req.Website,
	).Scan(&res.AccountID, &res.UserID)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (db *Postgres) GetUserCredentialsByEmail(ctx context.Context, email string) (*model.UserCredentials, error) {
	query := `
		SELECT id, account_id, username, email, password,
		       first_name, last_name, account_type_id, user_type_id, subscription_id
		FROM verify_user_credentials($1)
	`
	var user model.UserCredentials
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.AccountID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.AccountTypeID,
		&user.UserTypeID,
		&user.SubscriptionID,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) CreateSession(ctx context.Context, userID int64, token, ip, userAgent string) error {
	query := `CALL create_user_session($1, $2, $3, $4, NULL)`
	_, err := db.Pool.Exec(ctx, query, userID, token, ip, userAgent)
	return err
}

// GetActiveSession returns the non-revoked session row for (userID, token).
// Called once per protected request; there is deliberately no cache in
// front of it so revocation is observed immediately.
func (db *Postgres) GetActiveSession(ctx context.Context, userID int64, token string) (*model.Session, error) {
	query := `
		SELECT id, user_id, token, ip_address, user_agent, created_at, revoked_at
		FROM user_sessions
		WHERE user_id = $1 AND token = $2 AND revoked_at IS NULL
	`
	var s model.Session
	err := db.Pool.QueryRow(ctx, query, userID, token).Scan(
		&s.ID,
		&s.UserID,
		&s.Token,
		&s.IPAddress,
		&s.UserAgent,
		&s.CreatedAt,
		&s.RevokedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// EndSession stamps revoked_at on the matching session. The procedure is
// a no-op when the session is already revoked or does not exist.
func (db *Postgres) EndSession(ctx context.Context, userID int64, token string) error {
	query := `CALL end_user_session($1, $2)`
	_, err := db.Pool.Exec(ctx, query, userID, token)
	return err
}

func (db *Postgres) GetUserData(ctx context.Context, userID int64) (*model.UserProfile, error) {
	query := `
		SELECT user_id, account_id, username, email,
		       first_name, last_name, account_type_id, user_type_id, subscription_id
		FROM get_user_data($1)
	`
	var p model.UserProfile
	err := db.Pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.AccountID,
		&p.Username,
		&p.Email,
		&p.FirstName,
		&p.LastName,
		&p.AccountTypeID,
		&p.UserTypeID,
		&p.SubscriptionID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
