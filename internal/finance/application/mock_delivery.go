package application

import (
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
)

type MockRenderer struct {
	Err      error
	Rendered []domain.Report
}

func (m *MockRenderer) Render(report domain.Report) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.Rendered = append(m.Rendered, report)
	return []byte("%PDF-1.4 mock"), nil
}

type SentEmail struct {
	To         string
	Subject    string
	Body       string
	Filename   string
	Attachment []byte
}

type MockEmailSender struct {
	Err  error
	Sent []SentEmail
}

func (m *MockEmailSender) SendWithAttachment(to, subject, body, filename string, attachment []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, Body: body, Filename: filename, Attachment: attachment})
	return nil
}
