package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"havenground-server/internal/funnel/httpapi/internal"
	"havenground-server/internal/infra/httpserver"
	"havenground-server/internal/infra/regrid"
)

const (
	parcelNotFoundErrMessage = "parcel not found"
	parcelLookupErrMessage   = "parcel lookup failed"
)

func NewParcelController(client regrid.Client) *ParcelController {
	return &ParcelController{
		client: client,
	}
}

var _ httpserver.Controller = &ParcelController{}

type ParcelController struct {
	client regrid.Client
}

func (c *ParcelController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /api/regrid/lookup", c.lookupParcel())
}

func (c *ParcelController) lookupParcel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ParcelLookupRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding parcel lookup request", slog.String("error", err.Error()))
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if body.Address == "" {
			http.Error(w, "address is required", http.StatusBadRequest)
			return
		}

		summary, err := c.client.Lookup(r.Context(), regrid.LookupRequest{
			Address: body.Address,
			City:    body.City,
			State:   body.State,
			County:  body.County,
		})
		if errors.Is(err, regrid.ErrParcelNotFound) {
			http.Error(w, parcelNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("looking up parcel", slog.String("error", err.Error()))
			http.Error(w, parcelLookupErrMessage, http.StatusBadGateway)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, summary)
	}
}
