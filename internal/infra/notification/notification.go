package notification

import "context"

// WebhookClient forwards lead payloads to the downstream automation webhook.
type WebhookClient interface {
	Forward(ctx context.Context, payload any) error
}

// SMSClient sends plain text messages, used for internal lead alerts.
type SMSClient interface {
	Send(ctx context.Context, to, body string) error
}
