package service

import (
	"errors"
	"testing"

	"fintrack/internal/models"
)

// --- SignUp tests ---

func TestAuthService_SignUp_HashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(name, username, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock)

	id, err := svc.SignUp("Alice", "alice", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.username != "alice" || call.name != "Alice" {
		t.Errorf("unexpected identity fields: %+v", call)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_EmptyFields(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(name, username, hash string) (int, error) {
			t.Fatal("Create should not be called for invalid input")
			return 0, nil
		},
	}
	svc := NewAuthService(mock)

	cases := []struct {
		desc     string
		name     string
		username string
		password string
	}{
		{"empty name", "  ", "bob", "pw"},
		{"empty username", "Bob", "", "pw"},
		{"empty password", "Bob", "bob", "   "},
	}
	for _, tc := range cases {
		_, err := svc.SignUp(tc.name, tc.username, tc.password)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.desc, err)
		}
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	mock := &mockUsers{
		CreateFn: func(name, username, hash string) (int, error) {
			return 0, errors.New("db down")
		},
	}
	svc := NewAuthService(mock)

	if _, err := svc.SignUp("Carl", "carl", "pass123"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	stored := &models.User{ID: 7, Name: "Diana", Username: "diana", PasswordHash: hash}

	mock := &mockUsers{
		GetByUsernameFn: func(username string) (*models.User, error) {
			if username != "diana" {
				t.Fatalf("expected username 'diana', got %q", username)
			}
			return stored, nil
		},
	}
	svc := NewAuthService(mock)

	u, err := svc.Login("diana", "letmein")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if u.ID != 7 || u.Name != "Diana" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := hashPassword("right")
	mock := &mockUsers{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return &models.User{ID: 1, Username: "eve", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Login("eve", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mock := &mockUsers{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(mock)

	// Unknown user and wrong password look the same to the caller.
	_, err := svc.Login("ghost", "anything")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_RepoError(t *testing.T) {
	mock := &mockUsers{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(mock)

	_, err := svc.Login("any", "pw")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected passthrough repo error, got %v", err)
	}
}
