// file: internals/platform/mailer/console.go
package mailer

import "log"

// consoleMailer mencetak email ke log. Dipakai di lokal/dev.
type consoleMailer struct{}

func NewConsole() Service {
	return consoleMailer{}
}

func (consoleMailer) Send(msg Message) error {
	log.Printf("📧 [MAIL] to=%s subject=%q\n%s", msg.To, msg.Subject, msg.PlainText)
	return nil
}
