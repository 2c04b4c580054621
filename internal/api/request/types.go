package request

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"
)

// Route variable and query parameter names
const (
	VarRegion    = "region"
	VarSummoner  = "summoner"
	ParamCaptcha = "captcha"
)

// PlaytimeRequest is the parsed form of GET /api/{region}/{summoner}?captcha=
type PlaytimeRequest struct {
	Region       string
	SummonerName string
	Captcha      string
	RemoteIP     string
}

// PlaytimeFromHTTP extracts the lookup parameters from a routed request
func PlaytimeFromHTTP(r *http.Request) PlaytimeRequest {
	vars := mux.Vars(r)
	return PlaytimeRequest{
		Region:       vars[VarRegion],
		SummonerName: vars[VarSummoner],
		Captcha:      r.URL.Query().Get(ParamCaptcha),
		RemoteIP:     remoteIP(r),
	}
}

// remoteIP is the peer address; forwarding headers are not trusted
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
