// file: internals/platform/mailer/mailer.go
package mailer

import (
	"log"

	"tutorhub_backend/internals/configs"
)

// Message adalah email sederhana (verifikasi akun dsb).
type Message struct {
	To        string
	Subject   string
	PlainText string
	HTML      string
}

// Service dipanggil di dalam transaksi registrasi; error = rollback.
type Service interface {
	Send(msg Message) error
}

// NewFromEnv memilih implementasi: SendGrid kalau API key ada, console kalau tidak.
func NewFromEnv() Service {
	if configs.SendGridAPIKey != "" {
		return NewSendGrid(configs.SendGridAPIKey, configs.MailFrom)
	}
	log.Println("[INFO] Mailer: pakai console mailer (SENDGRID_API_KEY kosong)")
	return NewConsole()
}
