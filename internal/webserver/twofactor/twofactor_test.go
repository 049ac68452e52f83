package twofactor_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/nbrandao/equidade/internal/webserver/twofactor"
	"github.com/pquerna/otp/totp"
)

func TestGenerateSecretAndValidate(t *testing.T) {
	secret, err := twofactor.GenerateSecret("Equidade", "someone@example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if secret == "" {
		t.Fatal("Expected a non-empty secret")
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if !twofactor.Validate(code, secret) {
		t.Error("Expected a current code to validate")
	}

	stale, err := totp.GenerateCode(secret, time.Now().Add(-5*time.Minute))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if twofactor.Validate(stale, secret) {
		t.Error("Expected a code from an old time step to be rejected")
	}
}

func TestProvisioningURI(t *testing.T) {
	uri := twofactor.ProvisioningURI("SECRET", "Equidade", "someone@example.com")

	if !strings.HasPrefix(uri, "otpauth://totp/Equidade:someone@example.com?") {
		t.Errorf("Unexpected URI label: %s", uri)
	}
	if !strings.Contains(uri, "secret=SECRET") {
		t.Errorf("Expected the secret in the URI, got %s", uri)
	}
	if !strings.Contains(uri, "issuer=Equidade") {
		t.Errorf("Expected the issuer in the URI, got %s", uri)
	}
}

func TestQRCode(t *testing.T) {
	secret, err := twofactor.GenerateSecret("Equidade", "someone@example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	encoded, err := twofactor.QRCode(secret, "Equidade", "someone@example.com")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Errorf("Expected a decodable PNG, got: %v", err)
	}
}

func TestBackupCodes(t *testing.T) {
	codes, stored, err := twofactor.NewBackupCodes()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}

	if len(codes) != 10 {
		t.Fatalf("Expected 10 codes, got %d", len(codes))
	}
	for _, code := range codes {
		if len(code) != 8 {
			t.Errorf("Expected an 8-character code, got %q", code)
		}
		if strings.Contains(stored, code) {
			t.Error("Plaintext codes must not appear in the stored set")
		}
	}

	remaining, ok := twofactor.ConsumeBackupCode(stored, codes[3])
	if !ok {
		t.Fatal("Expected an unused code to be accepted")
	}
	if _, ok = twofactor.ConsumeBackupCode(remaining, codes[3]); ok {
		t.Error("Expected a consumed code to be rejected")
	}
	if _, ok = twofactor.ConsumeBackupCode(remaining, codes[4]); !ok {
		t.Error("Expected the other codes to stay usable")
	}

	if _, ok = twofactor.ConsumeBackupCode(stored, "ffffffff"); ok {
		t.Error("Expected an unknown code to be rejected")
	}
}
