package infrastructure

import "sync"

type SMTPMock struct {
	calledSend  bool
	lastBody    string
	lastAddress string
	mu          sync.Mutex
	Wg          sync.WaitGroup
}

func (s *SMTPMock) Send(address, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	s.calledSend = true
	s.lastAddress = address
	s.lastBody = body
	s.mu.Unlock()
	return nil
}

func (s *SMTPMock) From() string {
	return "test@example.com"
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SMTPMock) LastBody() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody
}
