package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := "round-trip-secret"
	tok, err := Encode("alice", []string{"ROLE_USER_2"}, secret, time.Hour)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	claims, err := Decode(tok, secret)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject mismatch: got %q want %q", claims.Subject, "alice")
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "ROLE_USER_2" {
		t.Fatalf("roles mismatch: got %v", claims.Roles)
	}
	if claims.ID == "" {
		t.Fatal("expected a token ID claim")
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	tok, err := Encode("alice", nil, "secret", -time.Second)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = Decode(tok, "secret")
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Encode("alice", nil, "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = Decode(tok, "wrong-secret")
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not.a.jwt", "onesegment", "a.b"} {
		_, err := Decode(tok, "secret")
		if !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestDecode_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := "tamper-secret"
	tokA, err := Encode("alice", nil, secret, time.Hour)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	tokB, err := Encode("mallory", nil, secret, time.Hour)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	partsA := strings.Split(tokA, ".")
	partsB := strings.Split(tokB, ".")

	// splice mallory's payload under alice's signature
	forged := partsA[0] + "." + partsB[1] + "." + partsA[2]
	_, err = Decode(forged, secret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid for forged payload, got %v", err)
	}
}

func TestDecode_TamperedSignature(t *testing.T) {
	t.Parallel()

	secret := "tamper-secret"
	tok, err := Encode("alice", nil, secret, time.Hour)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	// flip the first character of the signature segment
	parts := strings.Split(tok, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	forged := parts[0] + "." + parts[1] + "." + string(sig)
	_, err = Decode(forged, secret)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid for flipped signature, got %v", err)
	}
}

func TestDecode_NotYetValid(t *testing.T) {
	t.Parallel()

	secret := "nbf-secret"
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now.Add(time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(2 * time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	_, err = Decode(tok, secret)
	if !errors.Is(err, ErrTokenNotYetValid) {
		t.Fatalf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestDecode_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{Subject: "alice"},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := Decode(tok, "secret"); err == nil {
		t.Fatal("expected error for alg=none token, got nil")
	}
}

func TestDecodeAllowExpired(t *testing.T) {
	t.Parallel()

	secret := "grace-secret"
	tok, err := Encode("alice", nil, secret, -time.Minute)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	claims, err := DecodeAllowExpired(tok, secret)
	if err != nil {
		t.Fatalf("DecodeAllowExpired error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}

	// signature is still enforced
	if _, err := DecodeAllowExpired(tok, "wrong-secret"); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
}
