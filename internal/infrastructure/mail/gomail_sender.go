// Package mail implementa el transporte SMTP de las alertas.
package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/SarahAbdulmajeed/Stocker/internal/application/notifier"
	"github.com/SarahAbdulmajeed/Stocker/pkg/config"
)

var _ notifier.Mailer = (*GomailSender)(nil)

// GomailSender envía correos de alerta vía SMTP usando gomail.
// Abre una conexión por envío; el volumen de alertas es bajo y no
// justifica mantener un daemon de conexión.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender construye el transporte a partir de la configuración.
func NewGomailSender(cfg config.AlertsConfig) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.From,
	}
}

// Send envía un correo de texto plano a los destinatarios indicados.
func (s *GomailSender) Send(to []string, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail.Send: %w", err)
	}
	return nil
}
