package realtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/philippseith/signalr"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/cache"
)

// HubConfig holds the hub server configuration
type HubConfig struct {
	Path              string
	KeepAliveInterval time.Duration
	Debug             bool
}

// NewHubServer creates the hub server and maps it on mux
func NewHubServer(
	ctx context.Context,
	sr adapter.SignalR,
	mux *http.ServeMux,
	verifier middleware.TokenVerifier,
	users cache.UserCache,
	cfg HubConfig,
) (adapter.SignalRServer, error) {
	options := []func(signalr.Party) error{
		signalr.HubFactory(NewChatHubFactory(verifier, users)),
		signalr.Logger(NewStructuredLogger(), cfg.Debug),
	}
	if cfg.KeepAliveInterval > 0 {
		options = append(options, signalr.KeepAliveInterval(cfg.KeepAliveInterval))
	}

	server, err := sr.NewServer(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create hub server: %w", err)
	}

	server.MapHTTP(signalr.WithHTTPServeMux(mux), cfg.Path)
	return server, nil
}
