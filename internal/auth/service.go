package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the minimal user store the auth service needs.
type UserRepository interface {
	CreateUser(username, passwordHash string) error
	GetPasswordHash(username string) (string, error)
	UserExists(username string) (bool, error)
}

// CategorySeeder installs the default category set for a fresh account.
type CategorySeeder interface {
	SeedDefaults(username string) error
}

type Service struct {
	users      UserRepository
	seeder     CategorySeeder
	tokens     TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

func NewService(users UserRepository, seeder CategorySeeder, tokens TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		seeder:     seeder,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup creates the account and seeds the default categories. The explicit
// existence probe gives a friendlier error than the unique-constraint path,
// which stays in place as the backstop against races.
func (s *Service) Signup(dto SignupDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	exists, err := s.users.UserExists(dto.Username)
	if err != nil {
		s.logger.Error("signup: existence probe failed", "username", dto.Username, "error", err)
		return err
	}
	if exists {
		return ErrUsernameTaken
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("signup: password hashing failed", "error", err)
		return err
	}

	if err := s.users.CreateUser(dto.Username, hash); err != nil {
		s.logger.Error("signup: user insert failed", "username", dto.Username, "error", err)
		return err
	}

	if err := s.seeder.SeedDefaults(dto.Username); err != nil {
		s.logger.Error("signup: default category seeding failed", "username", dto.Username, "error", err)
		return err
	}

	s.logger.Info("signup: account created", "username", dto.Username)
	return nil
}

// Authenticate validates credentials and returns a token pair. Unknown
// username and wrong password collapse into the same error so callers
// cannot enumerate accounts.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	storedHash, err := s.users.GetPasswordHash(dto.Username)
	if err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(storedHash, dto.Password); err != nil {
		return AuthTokens{}, ErrInvalidCredentials
	}

	return s.issueTokens(dto.Username)
}

// RefreshTokens validates the refresh token and rotates the pair.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	return s.issueTokens(claims.Username)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

func (s *Service) issueTokens(username string) (AuthTokens, error) {
	accessToken, err := s.tokens.GenerateAccessToken(username)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(username)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
