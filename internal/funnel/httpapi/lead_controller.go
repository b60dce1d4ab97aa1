package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"havenground-server/internal/funnel/domain"
	"havenground-server/internal/funnel/httpapi/internal"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/httpserver"
)

const (
	submitLeadErrMessage   = "failed to submit lead"
	listLeadsErrMessage    = "failed to list leads"
	leadSubmittedMessage   = "lead submitted successfully"
	phoneUnverifiedMessage = "verify your phone number before submitting"
)

func NewLeadController(leads usecases.LeadService) *LeadController {
	return &LeadController{
		leads: leads,
	}
}

var _ httpserver.Controller = &LeadController{}

type LeadController struct {
	leads usecases.LeadService
}

func (c *LeadController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/submit-lead", c.submitLead())
	router.Handle("GET /v1/leads", c.listLeads())
}

func (c *LeadController) submitLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SubmitLeadRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding submit lead request", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.SubmitLeadResponse{
				Message: "invalid request body",
			})
			return
		}

		if body.Email != "" {
			if validation := domain.ValidateEmail(body.Email); !validation.Valid {
				httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.SubmitLeadResponse{
					Message: fmt.Sprintf("invalid email: %s", validation.Error),
				})
				return
			}
		}

		submission, err := c.leads.SubmitDirect(r.Context(), body.ToDomain())
		if errors.Is(err, usecases.ErrPhoneNotVerified) {
			httpserver.ReplyJSONResponse(w, http.StatusForbidden, internal.SubmitLeadResponse{
				Message: phoneUnverifiedMessage,
			})
			return
		}
		if err != nil {
			slog.Error("submitting lead", slog.String("error", err.Error()))
			httpserver.ReplyJSONResponse(w, http.StatusInternalServerError, internal.SubmitLeadResponse{
				Message: submitLeadErrMessage,
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SubmitLeadResponse{
			Success: true,
			LeadID:  submission.LeadID.String(),
			Message: leadSubmittedMessage,
		})
	}
}

func (c *LeadController) listLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		leads, total, err := c.leads.AllLeads(r.Context(), pagination)
		if err != nil {
			slog.Error("listing leads", slog.String("error", err.Error()))
			http.Error(w, listLeadsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.LeadResponse, len(leads))
		for i, lead := range leads {
			responses[i] = internal.ToLeadResponse(lead)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}
