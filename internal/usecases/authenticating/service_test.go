package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repositorymocks "github.com/sectorres/vendas-insights-wa/infrastructure/repository/mocks"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

func newTestService(t *testing.T) (Authenticator, *repositorymocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := repositorymocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Secret = "segredo-de-teste"

	return NewService(repo, cfg), repo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Operador",
		Email:        "operador@lojas.com.br",
		PasswordHash: string(hash),
		Active:       true,
	}
}

func TestLoginUser(t *testing.T) {
	service, repo := newTestService(t)
	user := activeUser(t, "senha-forte")

	repo.EXPECT().GetUserByEmail("operador@lojas.com.br").Return(user, nil)

	token, err := service.LoginUser("  Operador@Lojas.com.br ", "senha-forte")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "operador@lojas.com.br", claims.Email)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	service, repo := newTestService(t)
	user := activeUser(t, "senha-forte")

	repo.EXPECT().GetUserByEmail("operador@lojas.com.br").Return(user, nil)

	_, err := service.LoginUser("operador@lojas.com.br", "senha-errada")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_DisabledUser(t *testing.T) {
	service, repo := newTestService(t)
	user := activeUser(t, "senha-forte")
	user.Active = false

	repo.EXPECT().GetUserByEmail("operador@lojas.com.br").Return(user, nil)

	_, err := service.LoginUser("operador@lojas.com.br", "senha-forte")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_NotFound(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail("ninguem@lojas.com.br").Return(nil, nil)

	_, err := service.LoginUser("ninguem@lojas.com.br", "qualquer")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginUser_MissingData(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.LoginUser("", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_Invalid(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token-invalido")

	require.Error(t, err)
}

func TestCreateUser_GeneratesInitialPassword(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail("novo@lojas.com.br").Return(nil, nil)
	repo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.NotEmpty(t, user.PasswordHash)
			assert.True(t, user.Active)
			user.ID = 7
			return user, nil
		})

	created, err := service.CreateUser(&domain.User{Name: "Novo", Email: "Novo@Lojas.com.br"})

	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.NotEmpty(t, created.Password)

	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(created.Password)))
}

func TestCreateUser_AlreadyExists(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail("operador@lojas.com.br").Return(activeUser(t, "x"), nil)

	_, err := service.CreateUser(&domain.User{Name: "Operador", Email: "operador@lojas.com.br"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestGetUserProfile_StripsPasswordHash(t *testing.T) {
	service, repo := newTestService(t)
	user := activeUser(t, "senha-forte")

	repo.EXPECT().GetUserByID(1).Return(user, nil)

	profile, err := service.GetUserProfile(1)

	require.NoError(t, err)
	assert.Empty(t, profile.PasswordHash)
}
