package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"havenground-server/internal/funnel/usecases"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	verify "github.com/twilio/twilio-go/rest/verify/v2"
)

const _statusApproved = "approved"

var _ usecases.VerificationProvider = (*TwilioProvider)(nil)

// TwilioProvider drives Twilio Verify. The provider owns the challenge
// lifecycle; a new verification for the same number supersedes the prior one.
type TwilioProvider struct {
	client     *twilio.RestClient
	serviceSid string
}

func NewTwilioProvider(accountSid, authToken, serviceSid string) *TwilioProvider {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioProvider{
		client:     client,
		serviceSid: serviceSid,
	}
}

func (p *TwilioProvider) SendCode(_ context.Context, e164 string) error {
	params := &verify.CreateVerificationParams{}
	params.SetTo(e164)
	params.SetChannel("sms")

	resp, err := p.client.VerifyV2.CreateVerification(p.serviceSid, params)
	if err != nil {
		return mapProviderError("sending verification", err)
	}

	status := ""
	if resp.Status != nil {
		status = *resp.Status
	}
	slog.Debug("verification code sent", slog.String("phone", e164), slog.String("status", status))

	return nil
}

func (p *TwilioProvider) CheckCode(_ context.Context, e164, code string) (bool, error) {
	params := &verify.CreateVerificationCheckParams{}
	params.SetTo(e164)
	params.SetCode(code)

	resp, err := p.client.VerifyV2.CreateVerificationCheck(p.serviceSid, params)
	if err != nil {
		return false, mapProviderError("checking verification", err)
	}

	// Acceptance comes only from the explicit status field, never from the
	// call succeeding.
	approved := resp.Status != nil && *resp.Status == _statusApproved
	return approved, nil
}

// mapProviderError separates an explicit API rejection (invalid number, rate
// limit) from a transport failure.
func mapProviderError(operation string, err error) error {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return fmt.Errorf("%s: %s: %w", operation, restErr.Message, usecases.ErrProviderRejected)
	}

	return fmt.Errorf("%s: %w", operation, err)
}
