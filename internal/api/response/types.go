package response

import (
	"github.com/mcoot/playtime/internal/model"
)

// PlaytimeResponse is the body of a successful lookup
type PlaytimeResponse struct {
	Time float64 `json:"time"`
}

// PlaytimeFromModel converts a model.Playtime to a response
func PlaytimeFromModel(p model.Playtime) PlaytimeResponse {
	return PlaytimeResponse{Time: p.Hours}
}

// Region represents a selectable platform
type Region struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

// RegionsResponse lists the known platforms
type RegionsResponse struct {
	Regions []Region `json:"regions"`
}

// RegionsFromModel converts model.Platforms
func RegionsFromModel(platforms []model.Platform) RegionsResponse {
	regions := make([]Region, 0, len(platforms))
	for _, p := range platforms {
		regions = append(regions, Region{Name: p.Name, Platform: string(p.Region)})
	}
	return RegionsResponse{Regions: regions}
}

// RecaptchaResponse carries the public site key for the client widget
type RecaptchaResponse struct {
	SiteKey string `json:"site_key"`
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string `json:"status"`
}
