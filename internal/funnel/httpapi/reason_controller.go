package httpapi

import (
	"log/slog"
	"net/http"

	"havenground-server/internal/funnel/httpapi/internal"
	"havenground-server/internal/funnel/usecases"
	"havenground-server/internal/infra/httpserver"
)

func NewReasonController(reasons usecases.ReasonService) *ReasonController {
	return &ReasonController{
		reasons: reasons,
	}
}

var _ httpserver.Controller = &ReasonController{}

type ReasonController struct {
	reasons usecases.ReasonService
}

func (c *ReasonController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/validate-reason", c.validateReason())
}

func (c *ReasonController) validateReason() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ValidateReasonRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding validate reason request", slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		result := c.reasons.ValidateReason(r.Context(), body.Reason)

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ValidateReasonResponse{
			Result: string(result),
		})
	}
}
