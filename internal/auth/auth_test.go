package auth

import (
	"testing"
	"time"

	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/config"
)

func newTestService(ttl time.Duration) *Service {
	return NewService(&config.AuthConfig{
		JWTSecret:  "test-secret",
		TokenTTL:   ttl,
		BcryptCost: 4,
	})
}

func TestHashAndCheckPassword(t *testing.T) {
	svc := newTestService(time.Hour)

	hash, err := svc.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pw" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if !svc.CheckPassword(hash, "pw") {
		t.Error("Correct password should verify")
	}
	if svc.CheckPassword(hash, "nope") {
		t.Error("Wrong password must not verify")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 42, Username: "a", Role: models.RoleAdmin}

	token, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "a" || claims.Role != models.RoleAdmin {
		t.Errorf("Claims do not match the user: %+v", claims)
	}
}

func TestVerifyTokenRejections(t *testing.T) {
	svc := newTestService(time.Hour)
	user := &models.User{ID: 1, Username: "a", Role: models.RoleUser}

	valid, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	expired, err := newTestService(-time.Minute).IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	otherSecret := NewService(&config.AuthConfig{
		JWTSecret:  "other-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	})
	foreign, err := otherSecret.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "expired", token: expired},
		{name: "wrong signature", token: foreign},
		{name: "tampered", token: valid + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.VerifyToken(tt.token); err == nil {
				t.Error("Expected verification to fail")
			}
		})
	}
}
