package handler

import (
	"net/http"

	"github.com/mcoot/playtime/internal/api/response"
	"github.com/mcoot/playtime/internal/model"
)

// MetaHandler serves the static data a client form needs
type MetaHandler struct {
	siteKey string
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(siteKey string) *MetaHandler {
	return &MetaHandler{siteKey: siteKey}
}

// Regions handles GET /api/regions
func (h *MetaHandler) Regions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RegionsFromModel(model.Platforms))
}

// Recaptcha handles GET /api/recaptcha
func (h *MetaHandler) Recaptcha(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RecaptchaResponse{SiteKey: h.siteKey})
}

// Health handles GET /api/health
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
