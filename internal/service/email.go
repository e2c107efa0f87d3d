package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendEventApprovedNotification(ctx context.Context, email, name, eventTitle string) error {
	body := fmt.Sprintf("Hello %s,\n\nGood news! Your event %q has been approved and your invitation card is ready.\n\nYou can now start sending invitations to your guests.\n\nBest regards,\nThe Dawati Team", name, eventTitle)
	return s.send(email, fmt.Sprintf("Your event %q was approved", eventTitle), body)
}

func (s *emailService) SendEventRejectedNotification(ctx context.Context, email, name, eventTitle, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your event %q could not be approved.\n\nReason: %s\n\nPlease review the details and contact support if you have questions.\n\nBest regards,\nThe Dawati Team", name, eventTitle, reason)
	return s.send(email, fmt.Sprintf("Your event %q needs attention", eventTitle), body)
}

func (s *emailService) SendOutreachReminder(ctx context.Context, email, name, eventTitle string, undispatched int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYour event %q is approved but %d guest(s) have not received their invitation yet.\n\nOpen your guest list to send the remaining invitations.\n\nBest regards,\nThe Dawati Team", name, eventTitle, undispatched)
	return s.send(email, fmt.Sprintf("Reminder: %d invitations still to send for %q", undispatched, eventTitle), body)
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
