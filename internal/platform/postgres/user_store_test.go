package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/store"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func validUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Ada", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)
	return user
}

func TestPostgresUserStore_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface, user *domain.User)
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface, user *domain.User) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(user.ID, user.Name, user.Email, user.HashedPassword).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate email maps to ErrEmailExists",
			setupMock: func(mock pgxmock.PgxPoolIface, user *domain.User) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(user.ID, user.Name, user.Email, user.HashedPassword).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: store.ErrEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			user := validUser(t)
			tt.setupMock(mock, user)

			s := NewPostgresUserStore(mock, nil)
			err := s.Create(context.Background(), user)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresUserStore_CreateRejectsInvalidUser(t *testing.T) {
	mock := newMockPool(t)
	s := NewPostgresUserStore(mock, nil)

	// Bypass the constructor to produce an invalid user; no query expected.
	err := s.Create(context.Background(), &domain.User{ID: uuid.New()})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserStore_GetByEmail(t *testing.T) {
	cols := []string{"id", "name", "email", "password"}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface, user *domain.User)
		wantErr   error
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface, user *domain.User) {
				rows := pgxmock.NewRows(cols).
					AddRow(user.ID, user.Name, user.Email, user.HashedPassword)
				mock.ExpectQuery(`SELECT id, name, email, password`).
					WithArgs(user.Email).
					WillReturnRows(rows)
			},
		},
		{
			name: "missing row maps to ErrUserNotFound",
			setupMock: func(mock pgxmock.PgxPoolIface, user *domain.User) {
				mock.ExpectQuery(`SELECT id, name, email, password`).
					WithArgs(user.Email).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: store.ErrUserNotFound,
		},
		{
			name: "driver error is passed through",
			setupMock: func(mock pgxmock.PgxPoolIface, user *domain.User) {
				mock.ExpectQuery(`SELECT id, name, email, password`).
					WithArgs(user.Email).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			user := validUser(t)
			tt.setupMock(mock, user)

			s := NewPostgresUserStore(mock, nil)
			got, err := s.GetByEmail(context.Background(), user.Email)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, store.ErrUserNotFound) {
					require.ErrorIs(t, err, store.ErrUserNotFound)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.Email, got.Email)
				assert.Equal(t, user.HashedPassword, got.HashedPassword)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
