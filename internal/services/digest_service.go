package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"sponsorcrm/internal/logger"
	"sponsorcrm/internal/models"
	"sponsorcrm/internal/repositories"
)

// DigestService mails a daily summary of due and overdue follow-ups. It only
// reads; nothing in the digest path ever mutates a record.
type DigestService struct {
	dialer    *gomail.Dialer
	from      string
	recipient string
	leads     *repositories.LeadRepository
}

func NewDigestService(smtpHost string, smtpPort int, smtpUser, smtpPassword, from, recipient string, leads *repositories.LeadRepository) *DigestService {
	return &DigestService{
		dialer:    gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword),
		from:      from,
		recipient: recipient,
		leads:     leads,
	}
}

// Send builds and sends one digest for "now". Returns nil without sending
// when there is nothing due.
func (s *DigestService) Send(now time.Time) error {
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	due, err := s.leads.ListFollowUpsDue(tomorrow)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	var overdue, dueToday []*models.Lead
	for _, l := range due {
		if l.NextFollowUp != nil && l.NextFollowUp.Before(today) {
			overdue = append(overdue, l)
		} else {
			dueToday = append(dueToday, l)
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", fmt.Sprintf("Follow-up digest: %d due, %d overdue", len(dueToday), len(overdue)))
	m.SetBody("text/html", digestBody(dueToday, overdue))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send follow-up digest: %w", err)
	}
	return nil
}

func digestBody(dueToday, overdue []*models.Lead) string {
	var b strings.Builder
	b.WriteString("<h2>Follow-up digest</h2>")
	writeSection(&b, "Due today", dueToday)
	writeSection(&b, "Overdue", overdue)
	return b.String()
}

func writeSection(b *strings.Builder, title string, leads []*models.Lead) {
	if len(leads) == 0 {
		return
	}
	fmt.Fprintf(b, "<h3>%s (%d)</h3><ul>", title, len(leads))
	for _, l := range leads {
		label := l.Contact.Name
		if l.Contact.Company != nil && *l.Contact.Company != "" {
			label = fmt.Sprintf("%s (%s)", l.Contact.Name, *l.Contact.Company)
		}
		item := html.EscapeString(label)
		if l.NextFollowUp != nil {
			item += ", follow up " + l.NextFollowUp.Format("2006-01-02")
		}
		fmt.Fprintf(b, "<li>%s</li>", item)
	}
	b.WriteString("</ul>")
}

// Run sends a digest once per interval until stop closes. Intended to be
// started as a goroutine from app wiring.
func (s *DigestService) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			if err := s.Send(now); err != nil {
				logger.L().Error("follow-up digest failed", zap.Error(err))
			}
		}
	}
}
