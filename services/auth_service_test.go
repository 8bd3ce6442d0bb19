package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"kickconnect.net/models"

	"golang.org/x/crypto/bcrypt"
)

func newAuthTestService(repo *stubUserRepo) *AuthService {
	return &AuthService{
		userRepo: repo,
		secret:   []byte("test-signing-key"),
		now:      time.Now,
	}
}

func seedLogin(t *testing.T, repo *stubUserRepo, email, password string, isActive int) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	user := &models.User{
		AccountID: 1, Name: "Pat Jones", Email: email,
		Password: string(hash), IsActive: isActive,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	user := seedLogin(t, repo, "pat@example.com", "opensesame", 1)
	svc := newAuthTestService(repo)

	result, err := svc.Login(context.Background(), "pat@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("empty token")
	}

	claims, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.UserID != user.UserID || claims.AccountID != 1 {
		t.Errorf("claims = %+v, want userId=%d accountId=1", claims, user.UserID)
	}
	if remaining := time.Until(claims.ExpiresAt.Time); remaining < 23*time.Hour || remaining > 25*time.Hour {
		t.Errorf("token lifetime = %v, want about 24h", remaining)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newStubUserRepo()
	seedLogin(t, repo, "pat@example.com", "opensesame", 1)
	svc := newAuthTestService(repo)

	tests := []struct {
		name            string
		email, password string
	}{
		{"wrong password", "pat@example.com", "guess"},
		{"unknown email", "nobody@example.com", "opensesame"},
		{"empty password", "pat@example.com", ""},
		{"empty email", "", "opensesame"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("err = %v, want %v", err, ErrInvalidCredentials)
			}
		})
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	repo := newStubUserRepo()
	seedLogin(t, repo, "pat@example.com", "opensesame", -1)
	svc := newAuthTestService(repo)

	_, err := svc.Login(context.Background(), "pat@example.com", "opensesame")
	if !errors.Is(err, ErrUserNotActive) {
		t.Errorf("err = %v, want %v", err, ErrUserNotActive)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	repo := newStubUserRepo()
	seedLogin(t, repo, "pat@example.com", "opensesame", 1)
	svc := newAuthTestService(repo)

	result, err := svc.Login(context.Background(), "pat@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	other := newAuthTestService(repo)
	other.secret = []byte("a-different-key")
	if _, err := other.VerifyToken(result.Token); err == nil {
		t.Errorf("token signed with another key verified")
	}
	if _, err := svc.VerifyToken(result.Token + "x"); err == nil {
		t.Errorf("tampered token verified")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	repo := newStubUserRepo()
	seedLogin(t, repo, "pat@example.com", "opensesame", 1)
	svc := newAuthTestService(repo)
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	result, err := svc.Login(context.Background(), "pat@example.com", "opensesame")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.VerifyToken(result.Token); err == nil {
		t.Errorf("expired token verified")
	}
}
