package identity

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/pkg/logx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result is the outcome of a signup or login attempt. Failures carry a fixed
// user-facing message; no raw provider error ever reaches a caller.
type Result struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

// CartResetter clears a user's persisted cart. Wired to the cart registry so
// logout never leaks a cart between accounts on a shared device.
type CartResetter interface {
	Reset(userID string)
}

// Service wraps the remote account store: signup, login, logout and profile
// maintenance. Validation runs locally before any store access.
type Service struct {
	store     UserStore
	carts     CartResetter
	jwtSecret []byte
}

func NewService(store UserStore, carts CartResetter, jwtSecret string) *Service {
	return &Service{store: store, carts: carts, jwtSecret: []byte(jwtSecret)}
}

func (s *Service) Signup(ctx context.Context, name, email, password string) Result {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if len(name) < 2 {
		return failure("Name must be at least 2 characters long.")
	}
	if !emailPattern.MatchString(email) {
		return failure("Please enter a valid email address.")
	}
	if len(password) < 6 {
		return failure("Password must be at least 6 characters long.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logx.Error().Err(err).Msg("password hashing failed")
		return failure(genericError)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.store.Create(ctx, user); err != nil {
		logx.Error().Err(err).Str("email", email).Msg("signup failed")
		return failure(errorMessage(err))
	}

	token, err := s.issueToken(user)
	if err != nil {
		logx.Error().Err(err).Msg("token generation failed")
		return failure(genericError)
	}
	return Result{Success: true, User: &user, Token: token}
}

func (s *Service) Login(ctx context.Context, email, password string) Result {
	email = strings.TrimSpace(email)

	if !emailPattern.MatchString(email) {
		return failure("Please enter a valid email address.")
	}
	if len(password) < 6 {
		return failure("Password must be at least 6 characters long.")
	}

	user, err := s.store.ByEmail(ctx, email)
	if err != nil {
		logx.Error().Err(err).Str("email", email).Msg("login failed")
		return failure(errorMessage(err))
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return failure("Incorrect password. Please try again.")
	}

	token, err := s.issueToken(user)
	if err != nil {
		logx.Error().Err(err).Msg("token generation failed")
		return failure(genericError)
	}
	return Result{Success: true, User: &user, Token: token}
}

// Logout clears the user's persisted cart before the session ends. With
// stateless tokens there is nothing else to revoke server-side.
func (s *Service) Logout(ctx context.Context, userID string) {
	s.carts.Reset(userID)
	logx.Info().Str("user_id", userID).Msg("user logged out, cart cleared")
}

func (s *Service) Profile(ctx context.Context, userID string) (models.User, error) {
	return s.store.ByID(ctx, userID)
}

// UpdateProfile applies a partial update to the user's profile document.
func (s *Service) UpdateProfile(ctx context.Context, userID string, name *string) (models.User, error) {
	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if len(trimmed) < 2 {
			return models.User{}, errors.New("name must be at least 2 characters long")
		}
		updates["name"] = trimmed
	}
	if len(updates) > 0 {
		if err := s.store.Update(ctx, userID, updates); err != nil {
			return models.User{}, err
		}
	}
	return s.store.ByID(ctx, userID)
}

func (s *Service) issueToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

const genericError = "An error occurred. Please try again."

// errorMessage maps store failures onto the small fixed set of user-facing
// messages. Anything unrecognized gets the generic one.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "No account found with this email address."
	case errors.Is(err, ErrEmailExists):
		return "An account with this email already exists."
	default:
		return genericError
	}
}
