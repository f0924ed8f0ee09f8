// file: internals/platform/sms/sms.go
package sms

import "log"

// Sender mengirim SMS OTP. Error = transaksi OTP di-rollback.
type Sender interface {
	Send(tel, message string) error
}

// ConsoleSender mensimulasikan pengiriman SMS dengan mencetak ke log.
// Ganti dengan provider asli (Termii/Twilio) saat integrasi.
type ConsoleSender struct{}

func NewConsole() Sender {
	return ConsoleSender{}
}

// NewFromEnv memilih sender berdasarkan env. Saat ini SMS masih
// disimulasikan, semua provider jatuh ke console.
func NewFromEnv() Sender {
	return NewConsole()
}

func (ConsoleSender) Send(tel, message string) error {
	log.Printf("📱 [SMS] to=%s: %s", tel, message)
	return nil
}
