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
	invalidPhoneErrMessage        = "a complete 10-digit phone number is required"
	codeNotRequestedErrMessage    = "request a code before verifying"
	providerRejectedErrMessage    = "the verification provider rejected this phone number"
	providerUnavailableErrMessage = "verification is temporarily unavailable, try again"
	codeRejectedErrMessage        = "invalid or expired verification code"

	// "+1" plus ten national digits
	_completeE164Length = 12
)

func NewOtpController(verification usecases.VerificationService) *OtpController {
	return &OtpController{
		verification: verification,
	}
}

var _ httpserver.Controller = &OtpController{}

type OtpController struct {
	verification usecases.VerificationService
}

func (c *OtpController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/send-otp", c.sendOtp())
	router.Handle("POST /api/verify-otp", c.verifyOtp())
}

func (c *OtpController) sendOtp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SendOtpRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding send otp request", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.SendOtpResponse{
				Error: "invalid request body",
			})
			return
		}

		e164 := domain.ToE164(body.Phone)
		if len(e164) != _completeE164Length {
			httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.SendOtpResponse{
				Error: invalidPhoneErrMessage,
			})
			return
		}

		err = c.verification.RequestCode(r.Context(), e164)
		switch {
		case errors.Is(err, usecases.ErrProviderRejected):
			httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.SendOtpResponse{
				Error: providerRejectedErrMessage,
			})
			return
		case err != nil:
			httpserver.ReplyJSONResponse(w, http.StatusBadGateway, internal.SendOtpResponse{
				Error: providerUnavailableErrMessage,
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SendOtpResponse{Success: true})
	}
}

func (c *OtpController) verifyOtp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.VerifyOtpRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding verify otp request", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.VerifyOtpResponse{
				Error: "invalid request body",
			})
			return
		}

		e164 := domain.ToE164(body.Phone)

		err = c.verification.VerifyCode(r.Context(), e164, body.Code)
		switch {
		case errors.Is(err, usecases.ErrCodeNotRequested):
			httpserver.ReplyJSONResponse(w, http.StatusConflict, internal.VerifyOtpResponse{
				Error: codeNotRequestedErrMessage,
			})
			return
		case errors.Is(err, usecases.ErrCodeRejected):
			// The provider answered, it just said no
			httpserver.ReplyJSONResponse(w, http.StatusOK, internal.VerifyOtpResponse{
				Success: true,
				Error:   codeRejectedErrMessage,
			})
			return
		case errors.Is(err, usecases.ErrProviderRejected):
			httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.VerifyOtpResponse{
				Error: providerRejectedErrMessage,
			})
			return
		case err != nil:
			httpserver.ReplyJSONResponse(w, http.StatusBadGateway, internal.VerifyOtpResponse{
				Error: providerUnavailableErrMessage,
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.VerifyOtpResponse{
			Success:  true,
			Verified: true,
		})
	}
}
