package infrastructure

// NoEmail is used when no SMTP configuration is provided. Invite links are
// then only shown in the admin interface instead of being emailed.
type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
