package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/practicas-api/internal/application/ports"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// sendTimeout tope de cada llamada a la API, aunque el contexto no tenga deadline.
const sendTimeout = 5 * time.Second

var _ ports.Mailer = (*SendgridMailer)(nil)

// SendgridMailer envía los correos a través de la API v3 de SendGrid.
type SendgridMailer struct {
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
	client     *rest.Client
}

// NewSendgridMailer construye el adaptador. appName se antepone al asunto entre corchetes.
func NewSendgridMailer(key, appName, fromName, fromAddress string) *SendgridMailer {
	prefix := ""
	if appName != "" {
		prefix = "[" + appName + "] "
	}
	return &SendgridMailer{
		key:        key,
		host:       host,
		from:       sgmail.NewEmail(fromName, fromAddress),
		subjPrefix: prefix,
		client:     &rest.Client{HTTPClient: &http.Client{Timeout: sendTimeout}},
	}
}

// Send hace una única petición atada a ctx; un status >= 400 se devuelve como error.
func (m *SendgridMailer) Send(ctx context.Context, msg ports.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := sendgrid.GetRequest(m.key, endpoint, m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := m.client.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (m *SendgridMailer) prepare(msg ports.Email) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.To.Name, msg.To.Address))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)
	v3.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		v3.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return v3
}
