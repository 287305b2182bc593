package emailService

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"

	"github.com/badoux/checkmail"
	"github.com/joho/godotenv"
)

type EmailService struct {
	from     string
	password string
	smtpHost string
	smtpPort string
}

// NewEmailService builds the SMTP collaborator from environment configuration.
// It is constructed once at startup and passed by reference to its callers.
func NewEmailService() (*EmailService, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	email := os.Getenv("EMAIL_ADDRESS")
	if email == "" {
		return nil, fmt.Errorf("EMAIL_ADDRESS is not set")
	}
	password := os.Getenv("EMAIL_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("EMAIL_PASSWORD is not set")
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	return &EmailService{
		from:     email,
		password: password,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
	}, nil
}

// SendWithAttachment sends a plain-text message with a single attached file.
// The send is synchronous, the caller decides what a dispatch failure means.
func (s *EmailService) SendWithAttachment(to, subject, body, filename string, attachment []byte) error {
	if err := checkmail.ValidateFormat(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %v", to, err)
	}

	message, err := s.buildMessage(to, subject, body, filename, attachment)
	if err != nil {
		return fmt.Errorf("error building email message: %v", err)
	}

	auth := smtp.PlainAuth("", s.from, s.password, s.smtpHost)
	if err := smtp.SendMail(s.smtpHost+":"+s.smtpPort, auth, s.from, []string{to}, message); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

func (s *EmailService) buildMessage(to, subject, body, filename string, attachment []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", s.from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", writer.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", `text/plain; charset="UTF-8"`)
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	attachmentHeader := textproto.MIMEHeader{}
	attachmentHeader.Set("Content-Type", "application/pdf")
	attachmentHeader.Set("Content-Transfer-Encoding", "base64")
	attachmentHeader.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	attachmentPart, err := writer.CreatePart(attachmentHeader)
	if err != nil {
		return nil, err
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(attachment)))
	base64.StdEncoding.Encode(encoded, attachment)
	if _, err := attachmentPart.Write(encoded); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
