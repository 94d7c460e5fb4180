package request

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"
)

const msgMalformed = "JSON parse error."

// Bind decodes the JSON body of r into payload and validates it. An empty
// body decodes to the zero payload, so missing fields are reported as such.
func Bind(r *http.Request, payload any) map[string][]string {
	if err := render.DecodeJSON(r.Body, payload); err != nil && !errors.Is(err, io.EOF) {
		return map[string][]string{"error": {msgMalformed}}
	}

	return Validate(payload)
}
