package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/AlenaMolokova/checks/internal/apperrors"
	"github.com/AlenaMolokova/checks/internal/constants"
	"github.com/AlenaMolokova/checks/internal/models"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// The two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid email and/or password", apperrors.ErrUnauthorized)

type UserView struct {
	UserID    int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type TokenPair struct {
	UserID             int64     `json:"user_id"`
	AccessToken        string    `json:"access_token"`
	RefreshToken       string    `json:"refresh_token"`
	AccessTokenExpiry  time.Time `json:"access_token_expiry_date"`
	RefreshTokenExpiry time.Time `json:"refresh_token_expiry_date"`
}

// Connector orchestrates registration, login and token refresh on top of the
// user storage and the token handler.
type Connector struct {
	users  models.UserStorage
	tokens *TokenHandler
}

func NewConnector(users models.UserStorage, tokens *TokenHandler) *Connector {
	return &Connector{users: users, tokens: tokens}
}

func (c *Connector) Register(ctx context.Context, firstName, lastName, email, password string) (UserView, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return UserView{}, apperrors.Internal("failed to hash password: %v", err)
	}

	userID, err := c.users.CreateUser(ctx, firstName, lastName, email, hash)
	if err != nil {
		return UserView{}, err
	}

	log.Printf("User %s registered, user_id: %d", email, userID)
	return UserView{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}, nil
}

func (c *Connector) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := c.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return TokenPair{}, ErrInvalidCredentials
	}

	return c.generateTokens(user.ID)
}

// Refresh validates a refresh token and rotates the whole pair: the caller
// gets a new access token and a new refresh token every time.
func (c *Connector) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	userID, err := c.tokens.Parse(refreshToken, constants.TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := c.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, apperrors.ErrNotFound) {
			return TokenPair{}, apperrors.Unauthorized("token subject no longer exists")
		}
		return TokenPair{}, err
	}

	return c.generateTokens(user.ID)
}

func (c *Connector) generateTokens(userID int64) (TokenPair, error) {
	access, accessExpiry, err := c.tokens.Issue(constants.TokenTypeAccess, userID)
	if err != nil {
		return TokenPair{}, apperrors.Internal("failed to issue access token: %v", err)
	}
	refresh, refreshExpiry, err := c.tokens.Issue(constants.TokenTypeRefresh, userID)
	if err != nil {
		return TokenPair{}, apperrors.Internal("failed to issue refresh token: %v", err)
	}

	return TokenPair{
		UserID:             userID,
		AccessToken:        access,
		RefreshToken:       refresh,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}
