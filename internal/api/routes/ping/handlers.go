// Package ping contains the liveness handler.
package ping

import (
	"net/http"

	mJson "github.com/matt-dz/cookingpuppy/internal/json"
)

type PingResponse struct {
	Status string `json:"status"`
}

// HandlePing godoc
//
//	@Summary	Liveness probe.
//	@Tags		Ping
//	@Produce	json
//	@Success	200	{object}	PingResponse
//	@Router		/api/ping [GET]
func HandlePing(w http.ResponseWriter, r *http.Request) {
	_ = mJson.EncodeJSON(w, http.StatusOK, PingResponse{Status: "ok"})
}
