package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status with component checks",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// ComponentHealth describes the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status" doc:"Component status: healthy or degraded"`
	Message string `json:"message,omitempty" doc:"Additional status information"`
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status     string                     `json:"status" doc:"Overall status: healthy or degraded"`
	Components map[string]ComponentHealth `json:"components" doc:"Individual component statuses"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(_ context.Context, _ *struct{}) (*HealthOutput, error) {
	components := make(map[string]ComponentHealth)
	overall := "healthy"

	storeHealth := s.checkStore()
	components["store"] = storeHealth
	if storeHealth.Status != "healthy" {
		overall = "degraded"
	}

	sseHealth := s.checkSSEManager()
	components["sse"] = sseHealth
	if sseHealth.Status != "healthy" && overall == "healthy" {
		overall = "degraded"
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:     overall,
			Components: components,
		},
	}, nil
}

// checkStore reports whether the registry is loaded and how many libraries
// it holds. A store awaiting first-time setup is degraded, not broken.
func (s *Server) checkStore() ComponentHealth {
	if s.store == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "store not configured",
		}
	}

	if s.store.SetupRequired() {
		return ComponentHealth{
			Status:  "healthy",
			Message: "setup required",
		}
	}

	names := s.store.LibraryNames()
	return ComponentHealth{
		Status:  "healthy",
		Message: fmt.Sprintf("%d libraries", len(names)),
	}
}

// checkSSEManager reports current SSE connection state.
func (s *Server) checkSSEManager() ComponentHealth {
	if s.sseManager == nil {
		return ComponentHealth{
			Status:  "degraded",
			Message: "SSE manager not configured",
		}
	}

	count := s.sseManager.ClientCount()
	message := "no connected clients"
	if count == 1 {
		message = "1 connected client"
	} else if count > 1 {
		message = fmt.Sprintf("%d connected clients", count)
	}

	return ComponentHealth{
		Status:  "healthy",
		Message: message,
	}
}
