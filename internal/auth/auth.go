// Package auth handles platform accounts: bcrypt password verification
// against the users table and HS256 session tokens for the profile
// endpoints.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gaia.climateintel.org/climatedb"
)

// DefaultTokenTTL bounds session token lifetime.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Claims are the session token claims.
type Claims struct {
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Session is a successful login: the signed token and the account it
// identifies.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Admin     bool      `json:"admin"`
}

// Service issues and validates session tokens.
type Service struct {
	queries  *climatedb.Queries
	secret   []byte
	tokenTTL time.Duration
}

func NewService(queries *climatedb.Queries, secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		queries:  queries,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login verifies the password and issues a session token. A failed
// lookup and a failed password check are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	user, err := s.queries.GetUserByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	if err := s.queries.RecordLogin(ctx, user.ID); err != nil {
		return Session{}, fmt.Errorf("error recording login: %w", err)
	}

	return s.issueSession(user)
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, username, email, password string) (Session, error) {
	if _, err := s.queries.GetUserByUsername(ctx, username); err == nil {
		return Session{}, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("error hashing password: %w", err)
	}

	_, err = s.queries.CreateUser(ctx, climatedb.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
	})
	if err != nil {
		return Session{}, fmt.Errorf("error creating user: %w", err)
	}

	user, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		return Session{}, fmt.Errorf("error loading new user: %w", err)
	}

	return s.issueSession(user)
}

// ValidateToken parses and verifies a session token.
func (s *Service) ValidateToken(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func (s *Service) issueSession(user climatedb.User) (Session, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.tokenTTL)
	admin := user.Role == "admin"

	claims := Claims{
		Username: user.Username,
		Admin:    admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("error signing token: %w", err)
	}

	return Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Admin:     admin,
	}, nil
}
