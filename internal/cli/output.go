package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// Error codes returned by the API
const (
	CodeRecaptchaInvalid = "RECAPTCHA/INVALID"
	CodeRiotNotFound     = "RIOT/NOT_FOUND"
	CodeRiotServerError  = "RIOT/SERVER_ERROR"
	CodeAPIServerError   = "API/SERVER_ERROR"
)

// grassThreshold is the number of hours above which the player is told to go outside
const grassThreshold = 1000

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer

	bold *color.Color
	red  *color.Color
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer, noColor bool) *Output {
	o := &Output{
		format: format,
		out:    out,
		errOut: errOut,
		bold:   color.New(color.Bold),
		red:    color.New(color.FgRed),
	}
	if noColor {
		o.bold.DisableColor()
		o.red.DisableColor()
	}
	return o
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(o.out, data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error. API errors are shown with a message for their code.
func (o *Output) PrintError(err error) {
	var apiErr *APIError
	isAPIErr := errors.As(err, &apiErr)

	if o.format == "json" {
		errData := map[string]string{"error": err.Error()}
		if isAPIErr {
			errData["error"] = apiErr.Code
		}
		o.printJSON(o.errOut, errData)
		return
	}

	if isAPIErr {
		_, _ = o.red.Fprintln(o.errOut, ErrorMessage(apiErr.Code))
		return
	}
	_, _ = o.red.Fprintf(o.errOut, "Error: %s\n", err)
}

// ErrorMessage is the user-facing message for an API error code
func ErrorMessage(code string) string {
	switch code {
	case CodeRecaptchaInvalid:
		return "Bro, complete the captcha."
	case CodeRiotNotFound:
		return "Yikes that account doesn't exist."
	default:
		return "Welp something went wrong."
	}
}

func (o *Output) printJSON(w io.Writer, data any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case PlaytimeResult:
		o.printPlaytime(v)
	case RegionsResult:
		o.printRegions(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(o.out, data)
	}
}

// PlaytimeResult response type (matches API)
type PlaytimeResult struct {
	Time float64 `json:"time"`
}

// Region response type
type Region struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

// RegionsResult response type
type RegionsResult struct {
	Regions []Region `json:"regions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlaytime(p PlaytimeResult) {
	hours := o.bold.Sprintf("%s hours", strconv.FormatFloat(p.Time, 'f', -1, 64))
	_, _ = fmt.Fprintf(o.out, "You have wasted %s playing League of Legends.", hours)
	if p.Time > grassThreshold {
		_, _ = fmt.Fprint(o.out, " Go touch some grass.")
	}
	_, _ = fmt.Fprintln(o.out)
}

func (o *Output) printRegions(r RegionsResult) {
	for _, region := range r.Regions {
		_, _ = fmt.Fprintf(o.out, "%-5s %s\n", region.Name, region.Platform)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
}
