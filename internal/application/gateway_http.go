// internal/application/gateway_http.go
package application

import (
	"context"
	"fmt"
	"time"

	commonhttp "business-registry/internal/common/http"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"
)

// HTTPGateway submits applications to a real registry endpoint. The endpoint
// is expected to accept the application JSON on POST and answer with the
// assigned server id.
type HTTPGateway struct {
	client *commonhttp.Client
	url    string
	logger logger.Logger
}

func NewHTTPGateway(url string, timeout time.Duration, log logger.Logger) *HTTPGateway {
	return &HTTPGateway{
		client: commonhttp.NewClient(timeout),
		url:    url,
		logger: log.WithFields(map[string]interface{}{"component": "gateway"}),
	}
}

type gatewayResponse struct {
	ID string `json:"id"`
}

func (g *HTTPGateway) Submit(ctx context.Context, app models.Application) (Result, error) {
	var resp gatewayResponse
	if err := g.client.PostJSON(ctx, g.url, app, &resp); err != nil {
		g.logger.Warn("registry submission failed", map[string]interface{}{
			"businessName": app.BusinessName,
			"error":        err.Error(),
		})
		return Result{}, err
	}
	if resp.ID == "" {
		return Result{}, fmt.Errorf("registry returned an empty application id")
	}
	return Result{ID: resp.ID}, nil
}
