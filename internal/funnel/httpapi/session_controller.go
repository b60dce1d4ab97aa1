package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/funnel/httpapi/internal"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/httpserver"
)

const (
	createSessionErrMessage      = "failed to create session"
	sessionNotFoundErrMessage    = "session not found"
	sessionDisqualifiedMessage   = "session is disqualified"
	sessionCompleteMessage       = "session already completed all steps"
	unknownStepErrMessage        = "unknown step"
	unexpectedFieldErrMessage    = "answer does not belong to the current step"
	reasonTooShortErrMessage     = "selling reason below minimum length"
	atFirstStepErrMessage        = "already at the first step"
	sessionNotReadyErrMessage    = "session has not completed all qualifying steps"
	phoneNotVerifiedErrMessage   = "phone number is not verified"
	fallbackThankYouRedirect     = "/thank-you"
)

func NewSessionController(
	sessions usecases.SessionService,
	leads usecases.LeadService,
	verification usecases.VerificationService,
) *SessionController {
	return &SessionController{
		sessions:     sessions,
		leads:        leads,
		verification: verification,
	}
}

var _ httpserver.Controller = &SessionController{}

type SessionController struct {
	sessions     usecases.SessionService
	leads        usecases.LeadService
	verification usecases.VerificationService
}

func (c *SessionController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/sessions", c.createSession())
	router.Handle("GET /v1/sessions/{id}", c.getSession())
	router.Handle("POST /v1/sessions/{id}/advance", c.advanceSession())
	router.Handle("POST /v1/sessions/{id}/retreat", c.retreatSession())
	router.Handle("POST /v1/sessions/{id}/restart", c.restartSession())
	router.Handle("POST /v1/sessions/{id}/submit", c.submitSession())
}

func (c *SessionController) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SessionCreateRequest
		if r.ContentLength > 0 {
			err := httpserver.DecodeJSONBody(r, &body)
			if err != nil {
				slog.Error("decoding create session request", slog.String("error", err.Error()))
				http.Error(w, createSessionErrMessage, http.StatusBadRequest)
				return
			}
		}

		session, err := c.sessions.Create(r.Context(), domain.Step(body.Step))
		if errors.Is(err, domain.ErrUnknownStep) {
			http.Error(w, unknownStepErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating session", slog.String("error", err.Error()))
			http.Error(w, createSessionErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSessionResponse(session))
	}
}

func (c *SessionController) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "session id is required", http.StatusBadRequest)
			return
		}

		session, err := c.sessions.Get(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrSessionNotFound) {
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting session", slog.String("error", err.Error()))
			http.Error(w, "failed to get session", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *SessionController) advanceSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "session id is required", http.StatusBadRequest)
			return
		}

		var body internal.SessionAdvanceRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding advance session request", slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		field := domain.Field(body.Field)
		if field == domain.FieldPhone {
			c.resetSupersededVerification(r, domain.ID(id), body.Value)
		}

		session, err := c.sessions.Advance(r.Context(), domain.ID(id), field, body.Value)
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrSessionDisqualified):
			http.Error(w, sessionDisqualifiedMessage, http.StatusConflict)
			return
		case errors.Is(err, domain.ErrSessionComplete):
			http.Error(w, sessionCompleteMessage, http.StatusConflict)
			return
		case errors.Is(err, domain.ErrUnexpectedField):
			http.Error(w, unexpectedFieldErrMessage, http.StatusBadRequest)
			return
		case errors.Is(err, domain.ErrReasonTooShort):
			http.Error(w, reasonTooShortErrMessage, http.StatusUnprocessableEntity)
			return
		case err != nil:
			slog.Error("advancing session", slog.String("error", err.Error()))
			http.Error(w, "failed to advance session", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

// resetSupersededVerification destroys the OTP session tied to a phone number
// the user is editing away from.
func (c *SessionController) resetSupersededVerification(r *http.Request, id domain.ID, newValue string) {
	session, err := c.sessions.Get(r.Context(), id)
	if err != nil {
		return
	}

	oldValue := session.Answers.Get(domain.FieldPhone)
	if oldValue == "" || oldValue == newValue {
		return
	}

	c.verification.Reset(r.Context(), domain.ToE164(oldValue))
}

func (c *SessionController) retreatSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "session id is required", http.StatusBadRequest)
			return
		}

		before, beforeErr := c.sessions.Get(r.Context(), domain.ID(id))

		session, err := c.sessions.Retreat(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrSessionDisqualified):
			http.Error(w, sessionDisqualifiedMessage, http.StatusConflict)
			return
		case errors.Is(err, domain.ErrAtFirstStep):
			http.Error(w, atFirstStepErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("retreating session", slog.String("error", err.Error()))
			http.Error(w, "failed to retreat session", http.StatusInternalServerError)
			return
		}

		if beforeErr == nil {
			c.resetVerificationOnRetreat(r, before)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

// resetVerificationOnRetreat destroys the OTP session when the user navigates
// back out of the verification gate. Re-entering the phone step requires a
// fresh challenge.
func (c *SessionController) resetVerificationOnRetreat(r *http.Request, before domain.QualificationSession) {
	if before.Current != domain.StepPhone && before.Current != domain.StepReadyForOtp {
		return
	}

	phone := before.Answers.Get(domain.FieldPhone)
	if phone == "" {
		return
	}

	c.verification.Reset(r.Context(), domain.ToE164(phone))
}

func (c *SessionController) restartSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "session id is required", http.StatusBadRequest)
			return
		}

		session, err := c.sessions.Restart(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrSessionNotFound) {
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("restarting session", slog.String("error", err.Error()))
			http.Error(w, "failed to restart session", http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *SessionController) submitSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "session id is required", http.StatusBadRequest)
			return
		}

		submission, err := c.leads.SubmitFromSession(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrSessionNotFound):
			http.Error(w, sessionNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrSessionDisqualified):
			http.Error(w, sessionDisqualifiedMessage, http.StatusConflict)
			return
		case errors.Is(err, usecases.ErrSessionNotReady):
			http.Error(w, sessionNotReadyErrMessage, http.StatusConflict)
			return
		case errors.Is(err, usecases.ErrPhoneNotVerified):
			http.Error(w, phoneNotVerifiedErrMessage, http.StatusForbidden)
			return
		case err != nil:
			// A verified lead who finished the wizard always lands on a
			// thank-you page, even when submission broke internally.
			slog.Error("submitting session", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SessionSubmitResponse{
				Success:  true,
				Redirect: fallbackThankYouRedirect,
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SessionSubmitResponse{
			Success:  true,
			Redirect: submission.Redirect,
			LeadID:   submission.LeadID.String(),
		})
	}
}
