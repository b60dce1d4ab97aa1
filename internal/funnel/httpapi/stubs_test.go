package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/classifier"
	"havenground-server/internal/infra/httpserver"
	"havenground-server/internal/infra/regrid"
)

func serveJSON(t *testing.T, controller httpserver.Controller, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	router := http.NewServeMux()
	controller.AddRoutes(router)

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	if err := json.Unmarshal(recorder.Body.Bytes(), &value); err != nil {
		t.Fatalf("decoding response body %q: %v", recorder.Body.String(), err)
	}
	return value
}

type stubSessionService struct {
	createFn  func(context.Context, domain.Step) (domain.QualificationSession, error)
	getFn     func(context.Context, domain.ID) (domain.QualificationSession, error)
	advanceFn func(context.Context, domain.ID, domain.Field, string) (domain.QualificationSession, error)
	retreatFn func(context.Context, domain.ID) (domain.QualificationSession, error)
	restartFn func(context.Context, domain.ID) (domain.QualificationSession, error)
}

var _ usecases.SessionService = (*stubSessionService)(nil)

func (s *stubSessionService) Create(ctx context.Context, step domain.Step) (domain.QualificationSession, error) {
	return s.createFn(ctx, step)
}

func (s *stubSessionService) Get(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	if s.getFn == nil {
		return domain.QualificationSession{}, usecases.ErrSessionNotFound
	}
	return s.getFn(ctx, id)
}

func (s *stubSessionService) Advance(ctx context.Context, id domain.ID, field domain.Field, value string) (domain.QualificationSession, error) {
	return s.advanceFn(ctx, id, field, value)
}

func (s *stubSessionService) Retreat(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	return s.retreatFn(ctx, id)
}

func (s *stubSessionService) Restart(ctx context.Context, id domain.ID) (domain.QualificationSession, error) {
	return s.restartFn(ctx, id)
}

type stubVerificationService struct {
	requestFn  func(context.Context, string) error
	verifyFn   func(context.Context, string, string) error
	verifiedFn func(context.Context, string) bool
	resetCalls []string
}

var _ usecases.VerificationService = (*stubVerificationService)(nil)

func (s *stubVerificationService) RequestCode(ctx context.Context, e164 string) error {
	return s.requestFn(ctx, e164)
}

func (s *stubVerificationService) VerifyCode(ctx context.Context, e164, code string) error {
	return s.verifyFn(ctx, e164, code)
}

func (s *stubVerificationService) IsVerified(ctx context.Context, e164 string) bool {
	if s.verifiedFn == nil {
		return false
	}
	return s.verifiedFn(ctx, e164)
}

func (s *stubVerificationService) Reset(_ context.Context, e164 string) {
	s.resetCalls = append(s.resetCalls, e164)
}

type stubLeadService struct {
	submitFromSessionFn func(context.Context, domain.ID) (usecases.Submission, error)
	submitDirectFn      func(context.Context, domain.Lead) (usecases.Submission, error)
	allLeadsFn          func(context.Context, usecases.Pagination) ([]domain.Lead, int, error)
}

var _ usecases.LeadService = (*stubLeadService)(nil)

func (s *stubLeadService) SubmitFromSession(ctx context.Context, id domain.ID) (usecases.Submission, error) {
	return s.submitFromSessionFn(ctx, id)
}

func (s *stubLeadService) SubmitDirect(ctx context.Context, lead domain.Lead) (usecases.Submission, error) {
	return s.submitDirectFn(ctx, lead)
}

func (s *stubLeadService) AllLeads(ctx context.Context, pagination usecases.Pagination) ([]domain.Lead, int, error) {
	return s.allLeadsFn(ctx, pagination)
}

type stubReasonService struct {
	result classifier.Result
}

var _ usecases.ReasonService = (*stubReasonService)(nil)

func (s *stubReasonService) ValidateReason(context.Context, string) classifier.Result {
	return s.result
}

type stubParcelClient struct {
	summary regrid.ParcelSummary
	err     error
}

var _ regrid.Client = (*stubParcelClient)(nil)

func (c *stubParcelClient) Lookup(context.Context, regrid.LookupRequest) (regrid.ParcelSummary, error) {
	return c.summary, c.err
}
