package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/worldradio/newsroom-go/internal/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (username, email, auth_hash) VALUES (?, ?, ?)`)).
		WithArgs("alice", "a@x.com", "hash").
		WillReturnResult(sqlmock.NewResult(7, 1))

	user := &model.User{Username: "alice", Email: "a@x.com", AuthHash: "hash"}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != 7 {
		t.Errorf("ID = %d, want 7", user.ID)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("alice", "a@x.com", "hash").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_users_username'"})

	err := NewUserRepository(db).Create(context.Background(), &model.User{Username: "alice", Email: "a@x.com", AuthHash: "hash"})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("Create error = %v, want ErrDuplicateUser", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, username, email, auth_hash, created_at FROM users WHERE email = \?`).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "auth_hash", "created_at"}).
			AddRow(1, "alice", "a@x.com", "hash", created))

	user, err := NewUserRepository(db).GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.ID != 1 || user.Username != "alice" || user.AuthHash != "hash" || !user.CreatedAt.Equal(created) {
		t.Errorf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, username, email, auth_hash, created_at FROM users WHERE id = \?`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := NewUserRepository(db).GetByID(context.Background(), 999)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("GetByID error = %v, want ErrUserNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUserRepository_Count(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewUserRepository(db).Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found", ErrUserNotFound, false},
		{"other mysql error", &mysql.MySQLError{Number: 1045}, false},
		{"duplicate", &mysql.MySQLError{Number: 1062}, true},
		{"wrapped duplicate", errors.Join(errors.New("insert"), &mysql.MySQLError{Number: 1062}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateEntryError(tt.err); got != tt.want {
				t.Errorf("isDuplicateEntryError() = %v, want %v", got, tt.want)
			}
		})
	}
}
