// Package docs Dispute Evidence API.
//
// Documentation of the Dispute Evidence verification relay.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://dispute-evidence-api.herokuapp.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/linesmerrill/dispute-evidence-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route POST /turnstile/verify turnstile turnstileVerify
// Checks a Cloudflare Turnstile token before an evidence export.
// responses:
//   200: verifyResponse
//   400: verifyResponse
//   500: verifyResponse

// swagger:parameters turnstileVerify
type verifyRequestWrapper struct {
	// in:body
	Body models.VerifyRequest
}

// ok is true when the token belongs to a human. error names the reason when
// it is not.
// swagger:response verifyResponse
type verifyResponseWrapper struct {
	// in:body
	Body models.VerifyResponse
}
