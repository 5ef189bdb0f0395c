package email

import (
	"context"
	"errors"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/nexus-desk/nexus/internal/domain/client"
	sharedConfig "github.com/nexus-desk/nexus/internal/shared/config"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/utils/logutil"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPConfigFrom converts the application email section.
func SMTPConfigFrom(cfg sharedConfig.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

var _ client.InviteSender = (*SMTPEmailService)(nil)

type SMTPEmailService struct {
	config SMTPConfig
	dialer dialer
	logger logger.Interface
}

func NewSMTPEmailService(config SMTPConfig, logger logger.Interface) *SMTPEmailService {
	s := &SMTPEmailService{
		config: config,
		logger: logger,
	}
	// Without a host every send fails with ErrEmailServiceNotConfigured.
	if config.Host != "" {
		s.dialer = gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	}
	return s
}

func (s *SMTPEmailService) SendPortalInvite(ctx context.Context, invite client.PortalInvite) error {
	if s.dialer == nil {
		s.logger.Warnw("email service not configured, cannot send portal invite", "to", logutil.MaskEmail(invite.To))
		return ErrEmailServiceNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s support portal", invite.Organization)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hello %s,</h2>
			<p>%s has opened a support portal for %s.</p>
			<p>Use the link below to file tickets, follow their progress and talk to our AI support specialist:</p>
			<p><a href="%s">Open the %s Enterprise Portal</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>Anyone holding this link can act for your company, so please do not share it. Questions go to %s.</p>
		</body>
		</html>
	`,
		html.EscapeString(invite.Name),
		html.EscapeString(invite.Organization),
		html.EscapeString(invite.Company),
		html.EscapeString(invite.PortalURL),
		html.EscapeString(invite.Company),
		html.EscapeString(invite.PortalURL),
		html.EscapeString(invite.SupportEmail),
	)

	plainBody := fmt.Sprintf(`
Hello %s,

%s has opened a support portal for %s.

Visit the following URL to file tickets, follow their progress and talk to our AI support specialist:
%s

Anyone holding this link can act for your company, so please do not share it. Questions go to %s.
	`, invite.Name, invite.Organization, invite.Company, invite.PortalURL, invite.SupportEmail)

	if err := s.sendEmail(invite.To, subject, htmlBody, plainBody); err != nil {
		s.logger.Errorw("failed to send portal invite", "to", logutil.MaskEmail(invite.To), "error", err)
		return err
	}
	s.logger.Infow("portal invite sent", "to", logutil.MaskEmail(invite.To), "company", invite.Company)
	return nil
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
