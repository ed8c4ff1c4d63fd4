package model

import "time"

type SignupRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	AccountTypeID  *int64 `json:"accountTypeId"`
	UserTypeID     *int64 `json:"userTypeId"`
	SubscriptionID *int64 `json:"subscriptionId"`
	CompanyName    string `json:"companyName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	TaxID          string `json:"taxId"`
	Website        string `json:"website"`
}

type SignupResult struct {
	AccountID int64 `json:"accountId"`
	UserID    int64 `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserProfile is the public subset of a user row. It never carries the
// password hash.
type UserProfile struct {
	ID             int64  `json:"id"`
	AccountID      int64  `json:"accountId"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	AccountTypeID  *int64 `json:"accountTypeId"`
	UserTypeID     *int64 `json:"userTypeId"`
	SubscriptionID *int64 `json:"subscriptionId"`
}

// UserCredentials is the row shape returned by verify_user_credentials.
type UserCredentials struct {
	ID             int64
	AccountID      int64
	Username       string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	AccountTypeID  *int64
	UserTypeID     *int64
	SubscriptionID *int64
}

// Session is one authenticated login. A session is active iff RevokedAt
// is null; rows are never deleted, only revoked.
type Session struct {
	ID        int64
	UserID    int64
	Token     string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	RevokedAt *time.Time
}

// AuthUser is the identity the session guard attaches to the request
// context once every token and session check has passed.
type AuthUser struct {
	ID    int64
	Email string
}
