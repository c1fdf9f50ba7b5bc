// Package email sends alert notifications to care team members. The
// sender is disabled by default; the portal works fully without SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/lifechef-health/careportal-api/internal/model"
)

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type EmailService interface {
	SendAlertNotification(to []string, patientName string, alert *model.Alert) error
}

type Service struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewService(cfg Config) *Service {
	s := &Service{cfg: cfg}
	if cfg.Enabled {
		s.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return s
}

// SendAlertNotification emails the care team about a new alert. A
// disabled sender or empty recipient list is a no-op.
func (s *Service) SendAlertNotification(to []string, patientName string, alert *model.Alert) error {
	if s.dialer == nil || len(to) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", fmt.Sprintf("[%s] Alert for %s", alert.Severity, patientName))
	m.SetBody("text/plain", fmt.Sprintf(
		"A new %s severity alert was raised for %s at %s.\n\n%s\n",
		alert.Severity, patientName, alert.Timestamp.Format("Jan 2 15:04 MST"), alert.Message,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send alert notification: %w", err)
	}
	return nil
}
