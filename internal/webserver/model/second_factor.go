package model

import "github.com/nbrandao/equidade/internal/webserver/twofactor"

// VerifySecondFactor accepts either a current TOTP code or an unused backup
// code. An accepted TOTP code is remembered so it cannot be replayed within
// its time step; a matched backup code is removed from the stored set. The
// caller must persist the user on success.
func (u *User) VerifySecondFactor(code string) bool {
	if u.TwoFactorSecret != "" && twofactor.Validate(code, u.TwoFactorSecret) {
		if code == u.LastOTPCode {
			return false
		}
		u.LastOTPCode = code
		return true
	}

	if remaining, ok := twofactor.ConsumeBackupCode(u.BackupCodes, code); ok {
		u.BackupCodes = remaining
		return true
	}
	return false
}
