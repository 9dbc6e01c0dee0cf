package auth_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/mrxguptaa/payroll/internal/auth"
	autherrors "github.com/mrxguptaa/payroll/internal/auth/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	withTxFn         func(tx *sql.Tx) auth.Repository
	createFn         func(ctx context.Context, user *auth.User) error
	findByUsernameFn func(ctx context.Context, username string) (*auth.User, error)
	findByIDFn       func(ctx context.Context, id string) (*auth.User, error)
}

func (f *fakeAuthRepository) WithTx(tx *sql.Tx) auth.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	if f.findByUsernameFn != nil {
		return f.findByUsernameFn(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	_ = os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { _ = os.Unsetenv("JWT_SECRET") })

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &auth.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
	}

	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := &fakeAuthRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
			if username == "admin" {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := auth.NewService(db, repo)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "correct-horse"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, auth.RoleAdmin, resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	repo := &fakeAuthRepository{
		findByUsernameFn: func(ctx context.Context, username string) (*auth.User, error) {
			return &auth.User{ID: uuid.New(), Username: username}, nil
		},
	}
	svc := auth.NewService(db, repo)

	_, err = svc.Register(ctx, auth.RegisterRequest{Username: "admin", Password: "long-enough-pw"})
	assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
