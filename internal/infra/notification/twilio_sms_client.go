package notification

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var _ SMSClient = (*TwilioSMSClient)(nil)

type TwilioSMSClient struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSMSClient(accountSid, authToken, from string) *TwilioSMSClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioSMSClient{
		client: client,
		from:   from,
	}
}

func (c *TwilioSMSClient) Send(_ context.Context, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending sms: %w", err)
	}

	return nil
}
