package user

import (
	"regexp"
	"time"

	userRepo "arenaslot/database/repository/user"
	"arenaslot/models"
	"arenaslot/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse contains the authenticated user's identity and bearer token.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// UserService handles registration, authentication and profile lookups.
type UserService interface {
	Register(user models.User) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

const tokenDuration = 7 * 24 * time.Hour

var whatsappPattern = regexp.MustCompile(`^\d{10}$`)

// Register creates a new user and returns a signed token for it.
func (s *DefaultUserService) Register(user models.User) (*AuthResponse, error) {
	switch {
	case user.FullName == "":
		return nil, utils.NewValidationError("full name is required")
	case user.GameID == "":
		return nil, utils.NewValidationError("game id is required")
	case user.GameName == "":
		return nil, utils.NewValidationError("game name is required")
	case user.Email == "":
		return nil, utils.NewValidationError("email is required")
	case !whatsappPattern.MatchString(user.Whatsapp):
		return nil, utils.NewValidationError("enter a valid 10-digit WhatsApp number")
	case len(user.Password) < 6:
		return nil, utils.NewValidationError("password must be at least 6 characters long")
	}

	existing, err := s.Repo.GetByEmailWithProjection(user.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing user", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}
	if existing != nil {
		return nil, utils.NewValidationError("a user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}
	user.PasswordHash = string(hashedPassword)
	user.Password = ""

	user.ID = uuid.New().String()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("Failed to create user", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}

	token, err := utils.GenerateToken(user.ID, user.FullName, user.Email, user.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, utils.NewDependencyError("registration failed, please try again", err)
	}

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Authenticate checks the credentials and returns a fresh token. Failures
// are reported uniformly so probing cannot distinguish a bad email from a
// bad password.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("email and password are required")
	}

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user for login", zap.Error(err))
		return nil, utils.NewDependencyError("login failed, please try again", err)
	}
	if user == nil {
		return nil, utils.NewAuthError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAuthError("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.FullName, user.Email, user.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, utils.NewDependencyError("login failed, please try again", err)
	}

	return &AuthResponse{
		ID:       user.ID,
		Token:    token,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// GetUserByID fetches a user's profile.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewNotFoundError("user not found")
	}
	return user, nil
}
