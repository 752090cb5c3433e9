// Package mail delivers password reset links over SMTP.
package mail

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(host, port, user, pass, from string) *Mailer {
	p, err := strconv.Atoi(port)
	if err != nil {
		p = 587
	}
	return &Mailer{dialer: gomail.NewDialer(host, p, user, pass), from: from}
}

func (m *Mailer) SendReset(to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Réinitialisation de votre mot de passe - MoreFix")
	msg.SetBody("text/html", fmt.Sprintf(`
<p>Bonjour,</p>
<p>Vous avez demandé la réinitialisation de votre mot de passe MoreFix.
Cliquez sur le lien ci-dessous pour choisir un nouveau mot de passe :</p>
<p><a href="%s">%s</a></p>
<p><strong>Ce lien expire dans une heure.</strong></p>
<p>Si vous n'êtes pas à l'origine de cette demande, ignorez simplement cet email.</p>
<p>L'équipe MoreFix</p>`, link, link))
	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when SMTP is not configured: the link is written
// to the application log instead of being sent.
type LogMailer struct{}

func (LogMailer) SendReset(to, link string) error {
	log.Printf("[mail] reset link for %s: %s", to, link)
	return nil
}
