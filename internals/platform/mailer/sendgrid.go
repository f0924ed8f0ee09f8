// file: internals/platform/mailer/sendgrid.go
package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sgHost     = "https://api.sendgrid.com"
	sgEndpoint = "/v3/mail/send"
)

type sendGridMailer struct {
	key  string
	from *sgmail.Email
}

func NewSendGrid(key, fromEmail string) Service {
	return &sendGridMailer{
		key:  key,
		from: sgmail.NewEmail("TutorHub", fromEmail),
	}
}

func (m *sendGridMailer) Send(msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(
		sgmail.NewContent("text/plain", msg.PlainText),
		sgmail.NewContent("text/html", msg.HTML),
	)

	req := sendgrid.GetRequest(m.key, sgEndpoint, sgHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(v3)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
