package postman

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

// ErrNoImportedCollection is returned when the OpenAPI import response has no collection.
var ErrNoImportedCollection = errors.New("openapi import returned no collections")

// StatusError reports a non-2xx response from the vendor API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

func checkResponse(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	se := &StatusError{StatusCode: resp.StatusCode()}
	if req := resp.Request; req != nil {
		se.Method = req.Method
		se.Path = req.URL
		if req.RawRequest != nil && req.RawRequest.URL != nil {
			se.Path = req.RawRequest.URL.Path
		}
	}
	body := strings.TrimSpace(resp.String())
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}
	se.Body = body
	return se
}
