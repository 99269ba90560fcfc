package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTGenerateValidate(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	jwtToken, err := manager.Generate(1, "alice", "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := manager.Validate(jwtToken)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "alice" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestJWTGenerateInvalid(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	if _, err := manager.Generate(0, "alice", "user"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := manager.Generate(1, "", "user"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateMissing(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	if _, err := manager.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestJWTValidateExpired(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute, "issuer")
	token, err := manager.Generate(1, "alice", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestJWTValidateWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour, "issuer").Generate(1, "alice", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	manager := NewJWTManager("secret-b", time.Hour, "issuer")
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateRejectsWrongAlgorithm(t *testing.T) {
	// Tokens signed with "none" must never validate, even when the
	// signature check would trivially pass.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:   1,
		Username: "alice",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	manager := NewJWTManager("secret", time.Hour, "issuer")
	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestTokenFromHeader(t *testing.T) {
	if _, err := TokenFromHeader(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	if token, err := TokenFromHeader("raw-token"); err != nil || token != "raw-token" {
		t.Fatalf("expected raw token, got %q err %v", token, err)
	}
	if token, err := TokenFromHeader("Bearer some-token"); err != nil || token != "some-token" {
		t.Fatalf("expected bearer token, got %q err %v", token, err)
	}
	if _, err := TokenFromHeader("Basic dXNlcjpwYXNz extra"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}
