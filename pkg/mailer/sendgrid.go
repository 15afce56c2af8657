package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// SendGridMailer sends mail through the SendGrid v3 REST API.
type SendGridMailer struct {
	BaseURL string
	apiKey  string
	from    string
	client  *http.Client
}

func NewSendGrid(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{
		BaseURL: "https://api.sendgrid.com",
		apiKey:  apiKey,
		from:    from,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *SendGridMailer) Enabled() bool {
	return m.apiKey != ""
}

func (m *SendGridMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.apiKey == "" {
		return ErrDisabled
	}
	body := map[string]interface{}{
		"personalizations": []map[string]interface{}{
			{"to": []map[string]string{{"email": to}}},
		},
		"from":    map[string]string{"email": m.from},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/html", "value": htmlBody},
		},
	}
	bodyBytes, _ := json.Marshal(body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/v3/mail/send", bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("[mail] sendgrid status=%d body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("sendgrid: %d %s", resp.StatusCode, string(respBody))
	}
	return nil
}
