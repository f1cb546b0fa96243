package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Yojipoji28/control-escolar-desit-api/config"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/dto"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/pkg/jwt"
)

// ── Mock TokenBlacklist ──

type mockBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{revoked: make(map[string]time.Duration)}
}

func (m *mockBlacklist) BlacklistToken(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = ttl
	return nil
}

func (m *mockBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[jti]
	return ok, nil
}

// ── test helpers ──

func setupTestAuthService(t *testing.T) (AuthService, *mockRepos, *jwt.Manager, *mockBlacklist) {
	t.Helper()
	repos := newMockRepos()
	jwtMgr := jwt.NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-0123456789",
		AccessTokenTTL: time.Hour,
	})
	blacklist := newMockBlacklist()
	svc := NewAuthService(repos.repo, jwtMgr, blacklist, zap.NewNop())

	maestros := NewMaestroService(repos.repo, zap.NewNop())
	if _, err := maestros.Create(context.Background(), &dto.CreateMaestroRequest{
		UserFields:    dto.UserFields{FirstName: "Ana", LastName: "López", Email: "ana@escuela.mx"},
		Password:      "secreto123",
		MaestroFields: dto.MaestroFields{IDTrabajador: "T-1"},
	}); err != nil {
		t.Fatalf("seed maestro: %v", err)
	}
	return svc, repos, jwtMgr, blacklist
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, jwtMgr, _ := setupTestAuthService(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ANA@escuela.mx", Password: "secreto123"})
	if err != nil {
		t.Fatalf("Login should succeed: %v", err)
	}
	if resp.Rol != "maestro" {
		t.Errorf("expected rol=maestro, got %s", resp.Rol)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected expires_in=3600, got %d", resp.ExpiresIn)
	}
	if resp.User.Email != "ana@escuela.mx" {
		t.Errorf("unexpected user %+v", resp.User)
	}

	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token should parse: %v", err)
	}
	if claims.UserID != resp.User.ID || claims.Role != "maestro" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _, _ := setupTestAuthService(t)

	tests := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "ana@escuela.mx", "incorrecta"},
		{"unknown email", "nadie@escuela.mx", "secreto123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.pass})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Login_UserWithoutProfile(t *testing.T) {
	svc, repos, _, _ := setupTestAuthService(t)

	hash, err := hashPassword("secreto123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repos.users.Create(context.Background(), &model.User{
		FirstName:    "Sin",
		LastName:     "Perfil",
		Email:        "sinperfil@escuela.mx",
		PasswordHash: hash,
	})

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "sinperfil@escuela.mx", Password: "secreto123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ── Logout ──

func TestAuthService_Logout(t *testing.T) {
	svc, _, _, blacklist := setupTestAuthService(t)
	ctx := context.Background()

	if err := svc.Logout(ctx, "jti-1", time.Now().Add(30*time.Minute)); err != nil {
		t.Fatalf("Logout should succeed: %v", err)
	}
	ttl, ok := blacklist.revoked["jti-1"]
	if !ok {
		t.Fatal("token id should be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Errorf("revocation ttl should track the token expiry, got %v", ttl)
	}

	// already expired tokens need no revocation
	if err := svc.Logout(ctx, "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Logout should succeed: %v", err)
	}
	if _, ok := blacklist.revoked["jti-2"]; ok {
		t.Error("expired token should not be stored")
	}
}

func TestAuthService_Logout_NoBlacklist(t *testing.T) {
	svc := NewAuthService(newMockRepos().repo, nil, nil, zap.NewNop())

	if err := svc.Logout(context.Background(), "jti", time.Now().Add(time.Hour)); err != nil {
		t.Errorf("Logout without a blacklist should be a no-op, got %v", err)
	}
}
