package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
)

// OverdueCredit is one line of the reminder summary
type OverdueCredit struct {
	ClientName  string
	EndDate     string
	Remaining   string
	DaysOverdue int
}

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendOverdueSummary mails the operator a summary of every overdue
// credit. Called by the daily reminder job; never called when the list
// is empty.
func (s *Sender) SendOverdueSummary(to string, asOf time.Time, overdue []OverdueCredit) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Overdue credits summary: %d open", len(overdue))

	body := fmt.Sprintf("Overdue credits as of %s:\n\n", asOf.Format("02/01/2006"))
	for _, c := range overdue {
		body += fmt.Sprintf(
			"- %s: %s outstanding, due %s (%d days overdue)\n",
			c.ClientName, c.Remaining, c.EndDate, c.DaysOverdue,
		)
	}
	body += "\nBest regards,\nFinanciera App"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send reminder to %s: %v", to, err)
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
