// Outbound mail through the Resend API.
//
// Configuration:
//   - RESEND_API_KEY: Resend API key (re_...)
//   - EMAIL_FROM: fixed sender address

package client

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type ResendClient struct {
	client *resend.Client
	from   string
}

func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (c *ResendClient) Send(ctx context.Context, to, subject, html string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", err
	}
	return sent.Id, nil
}
