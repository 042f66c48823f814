package auth

import (
	"testing"

	"stocktrack/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken(secret, 7, "keeper", model.RoleShopkeeper)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Username != "keeper" {
		t.Errorf("expected username keeper, got %q", claims.Username)
	}
	if claims.Role != model.RoleShopkeeper {
		t.Errorf("expected role %q, got %q", model.RoleShopkeeper, claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected non-empty JTI")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", 1, "admin", model.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken("secret-b", token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestTokensHaveUniqueJTIs(t *testing.T) {
	a, _ := GenerateToken("s", 1, "admin", model.RoleAdmin)
	b, _ := GenerateToken("s", 1, "admin", model.RoleAdmin)

	ca, err := ValidateToken("s", a)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	cb, err := ValidateToken("s", b)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if ca.ID == cb.ID {
		t.Errorf("expected distinct JTIs, both were %q", ca.ID)
	}
}
