package api

import (
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
)

// EnvelopeVersion is the envelope schema version. Clients pin against this
// value; bump it only with a coordinated client release.
const EnvelopeVersion = 1

// APIEnvelope wraps every response body in a consistent structure.
type APIEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Version int    `json:"v" doc:"Envelope schema version"`
	Success bool   `json:"success" doc:"Whether the request succeeded"`
	Data    any    `json:"data,omitempty" doc:"Response payload on success"`
	Error   string `json:"error,omitempty" doc:"Error message on failure"`
	Code    string `json:"code,omitempty" doc:"Machine-readable error code"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

// EnvelopeTransformer wraps all huma responses in the API envelope.
// Success responses carry the payload under "data"; errors carry a message,
// code and optional details. The version field is always present.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	statusCode, err := strconv.Atoi(status)
	if err != nil {
		statusCode = http.StatusOK
	}

	if statusCode >= http.StatusBadRequest {
		env := APIEnvelope{Version: EnvelopeVersion, Success: false}
		switch e := v.(type) {
		case *APIError:
			env.Error = e.Message
			env.Code = e.Code
			env.Details = e.Details
		case error:
			env.Error = e.Error()
		default:
			env.Error = http.StatusText(statusCode)
		}
		return env, nil
	}

	return APIEnvelope{
		Version: EnvelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
