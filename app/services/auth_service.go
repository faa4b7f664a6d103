package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ibomiri431-oss/metra-feer/app/models"
	"github.com/ibomiri431-oss/metra-feer/app/repositories"
	"github.com/ibomiri431-oss/metra-feer/pkg/auth"
)

// ErrInvalidCredentials covers both unknown-user and wrong-password so the
// login response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles registration and login.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns the account. There is no
// session or token; the client keeps the returned user object.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Register creates a regular account with a random id and a hashed
// password. Returns repositories.ErrDuplicateUsername when the name is
// taken.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:        NewUserID(),
		Username:  username,
		Password:  hash,
		Role:      "user",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// NewUserID returns 8 lowercase hex characters from a CSPRNG.
func NewUserID() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
