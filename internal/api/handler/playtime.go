package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/playtime/internal/api/request"
	"github.com/mcoot/playtime/internal/api/response"
	"github.com/mcoot/playtime/internal/services/playtime"
)

// PlaytimeHandler handles the playtime lookup endpoint
type PlaytimeHandler struct {
	service *playtime.Service
	logger  *slog.Logger
}

// NewPlaytimeHandler creates a new playtime handler
func NewPlaytimeHandler(service *playtime.Service, logger *slog.Logger) *PlaytimeHandler {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &PlaytimeHandler{
		service: service,
		logger:  logger,
	}
}

// Get handles GET /api/{region}/{summoner}?captcha=
func (h *PlaytimeHandler) Get(w http.ResponseWriter, r *http.Request) {
	req := request.PlaytimeFromHTTP(r)

	pt, err := h.service.Lookup(r.Context(), playtime.Request{
		Region:       req.Region,
		SummonerName: req.SummonerName,
		Captcha:      req.Captcha,
		RemoteIP:     req.RemoteIP,
	})
	if err != nil {
		WriteError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlaytimeFromModel(pt))
}
