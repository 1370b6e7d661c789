package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/limpanome/crm_backend/internal/apperrors"
	"github.com/limpanome/crm_backend/internal/core/domain"
	"github.com/limpanome/crm_backend/internal/core/services"
	"github.com/limpanome/crm_backend/internal/platform/config"
	"github.com/limpanome/crm_backend/internal/utils"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID string, name string, email string, now time.Time) error {
	args := m.Called(ctx, userID, name, email, now)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, now)
	return args.Error(0)
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.AuthService
	cfg      *config.Config
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test-issuer",
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

func (suite *AuthServiceTestSuite) testUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Ana Operadora",
		Email:        "ana@example.com",
		PasswordHash: hash,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := suite.testUser("s3nh4-boa")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, token, expiresAt, err := suite.service.Login(ctx, user.Email, "s3nh4-boa")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal("test-issuer", claims.Issuer)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	user := suite.testUser("s3nh4-boa")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, _, _, err := suite.service.Login(ctx, user.Email, "errada")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailCollapsesToUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, _, err := suite.service.Login(ctx, "nobody@example.com", "qualquer")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_RepoErrorCollapsesToUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(nil, assert.AnError).Once()

	_, _, _, err := suite.service.Login(ctx, "ana@example.com", "s3nh4-boa")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "novo@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "novo@example.com" && u.PasswordHash != "" && u.PasswordHash != "segredo123"
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, "Novo Operador", "novo@example.com", "segredo123")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash("segredo123", user.PasswordHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := suite.testUser("s3nh4-boa")

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	_, err := suite.service.Register(ctx, "Outro", existing.Email, "segredo123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
