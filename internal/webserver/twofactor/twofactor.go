// Package twofactor wraps TOTP secret provisioning, code validation and
// backup code management for the two-factor enrollment flow.
package twofactor

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image/png"
	"net/url"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

const backupCodeCount = 10

// GenerateSecret creates a new random base32 TOTP secret for the given
// account, labelled with the issuer shown by authenticator apps.
func GenerateSecret(issuer, account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: account,
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// Validate checks a submitted code against the secret for the current time
// window, with the standard 30-second step and one step of skew tolerance.
func Validate(code, secret string) bool {
	return totp.Validate(code, secret)
}

// ProvisioningURI rebuilds the otpauth URI for an already stored secret, in
// the format authenticator apps expect.
func ProvisioningURI(secret, issuer, account string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", issuer)

	return fmt.Sprintf("otpauth://totp/%s:%s?%s",
		url.PathEscape(issuer),
		url.PathEscape(account),
		v.Encode(),
	)
}

// QRCode renders the provisioning URI as a base64-encoded PNG suitable for an
// inline img tag.
func QRCode(secret, issuer, account string) (string, error) {
	key, err := otp.NewKeyFromURL(ProvisioningURI(secret, issuer, account))
	if err != nil {
		return "", err
	}

	img, err := key.Image(200, 200)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// NewBackupCodes returns 10 single-use backup codes in plaintext, to be shown
// exactly once, plus a JSON array with their bcrypt hashes for storage.
func NewBackupCodes() ([]string, string, error) {
	codes := make([]string, backupCodeCount)
	hashes := make([]string, backupCodeCount)

	for i := range codes {
		b := make([]byte, 4)
		if _, err := rand.Read(b); err != nil {
			return nil, "", err
		}
		codes[i] = hex.EncodeToString(b)

		hash, err := bcrypt.GenerateFromPassword([]byte(codes[i]), bcrypt.DefaultCost)
		if err != nil {
			return nil, "", err
		}
		hashes[i] = string(hash)
	}

	stored, err := json.Marshal(hashes)
	if err != nil {
		return nil, "", err
	}
	return codes, string(stored), nil
}

// ConsumeBackupCode checks the submitted code against the stored hashes and,
// on a match, returns the stored set with that hash removed so the code
// cannot be used again. ok is false when no hash matches.
func ConsumeBackupCode(stored, code string) (remaining string, ok bool) {
	var hashes []string
	if err := json.Unmarshal([]byte(stored), &hashes); err != nil {
		return stored, false
	}

	for i, hash := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil {
			hashes = append(hashes[:i], hashes[i+1:]...)
			updated, err := json.Marshal(hashes)
			if err != nil {
				return stored, false
			}
			return string(updated), true
		}
	}
	return stored, false
}
