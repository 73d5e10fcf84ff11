package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginSuccess(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("dom@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "password_hash"}).AddRow("user-1", string(hash)))

	svc := NewService("secret", mock)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "dom@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.ExpiresAt.IsZero() {
		t.Fatalf("expected token response")
	}

	userID, err := svc.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("unexpected user id %q", userID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("dom@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "password_hash"}).AddRow("user-1", string(hash)))

	svc := NewService("secret", mock)
	if _, err := svc.Login(context.Background(), LoginRequest{Email: "dom@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, password_hash FROM users`).
		WithArgs("nobody@example.com").
		WillReturnError(errors.New("no rows in result set"))

	svc := NewService("secret", mock)
	if _, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	other := NewService("other-secret", nil)
	resp, err := other.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc := NewService("secret", nil)
	if _, err := svc.ValidateToken(resp.Token); err == nil {
		t.Fatalf("expected validation failure")
	}
	if _, err := svc.ValidateToken("garbage"); err == nil {
		t.Fatalf("expected garbage token failure")
	}
}

func TestSeedOwnerInsertsWhenEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "dom@example.com", "dom", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("secret", mock)
	if err := svc.SeedOwner(context.Background(), "dom@example.com", "hunter2"); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedOwnerSkipsWhenPresent(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	svc := NewService("secret", mock)
	if err := svc.SeedOwner(context.Background(), "dom@example.com", "hunter2"); err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeedOwnerSkipsWithoutCredentials(t *testing.T) {
	svc := NewService("secret", nil)
	if err := svc.SeedOwner(context.Background(), "", ""); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if err := svc.SeedOwner(context.Background(), "dom@example.com", ""); err != nil {
		t.Fatalf("expected no-op without password, got %v", err)
	}
}

func TestSeedOwnerCountError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(errors.New("db down"))

	svc := NewService("secret", mock)
	if err := svc.SeedOwner(context.Background(), "dom@example.com", "hunter2"); err == nil {
		t.Fatalf("expected error")
	}
}
