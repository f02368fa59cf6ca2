package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/request_models"
	"wanderplan/pkg/utils"
)

type fakeAccountRepository struct {
	accounts map[string]*db_models.Account
	err      error
}

func newFakeAccountRepository() *fakeAccountRepository {
	return &fakeAccountRepository{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepository) InsertAccount(ctx context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	account.ID = uuid.New()
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[email], nil
}

func TestCreateAccount(t *testing.T) {
	signUp := request_models.SignUpRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
	}

	t.Run("StoresHashedPassword", func(t *testing.T) {
		repo := newFakeAccountRepository()
		service := NewAccountService(repo)

		require.NoError(t, service.CreateAccount(context.Background(), signUp))

		account := repo.accounts["alex@example.com"]
		require.NotNil(t, account)
		assert.NotEqual(t, "secret123", account.PasswordHash)
		assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "secret123"))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := newFakeAccountRepository()
		service := NewAccountService(repo)

		require.NoError(t, service.CreateAccount(context.Background(), signUp))
		err := service.CreateAccount(context.Background(), signUp)
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := newFakeAccountRepository()
		repo.err = errors.New("connection refused")
		service := NewAccountService(repo)

		err := service.CreateAccount(context.Background(), signUp)
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepository()
	service := NewAccountService(repo)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret123",
	}))

	t.Run("ValidCredentials", func(t *testing.T) {
		token, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "alex@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		claims, err := utils.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, repo.accounts["alex@example.com"].ID.String(), claims.UserID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "alex@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := service.Login(context.Background(), request_models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}
