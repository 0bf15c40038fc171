package realtime

import (
	"context"
	"strings"

	"github.com/philippseith/signalr"
	"go.uber.org/zap"

	"github.com/feral-file/realty-crm/internal/api/middleware"
	"github.com/feral-file/realty-crm/internal/cache"
	"github.com/feral-file/realty-crm/internal/domain"
	"github.com/feral-file/realty-crm/internal/logger"
)

// ChatHub is the hub clients connect to for conversation pushes
// A new instance serves every invocation
type ChatHub struct {
	signalr.Hub

	verifier middleware.TokenVerifier
	users    cache.UserCache
}

// NewChatHubFactory returns a factory building hubs that share the token verifier and user cache
func NewChatHubFactory(verifier middleware.TokenVerifier, users cache.UserCache) func() signalr.HubInterface {
	return func() signalr.HubInterface {
		return &ChatHub{verifier: verifier, users: users}
	}
}

// OnConnected logs new connections, they receive nothing until Join succeeds
func (h *ChatHub) OnConnected(connectionID string) {
	logger.Debug("Hub connection opened", zap.String("connectionID", connectionID))
}

// OnDisconnected logs closed connections
func (h *ChatHub) OnDisconnected(connectionID string) {
	logger.Debug("Hub connection closed", zap.String("connectionID", connectionID))
}

// Join authenticates the connection and adds it to the caller's user group
func (h *ChatHub) Join(token string) bool {
	userID, ok := h.authorize(h.requestContext(), token)
	if !ok {
		return false
	}

	h.Groups().AddToGroup(domain.UserGroup(userID), h.ConnectionID())
	logger.Info("Hub connection joined", zap.String("userID", userID), zap.String("connectionID", h.ConnectionID()))
	return true
}

// Leave removes the connection from the caller's user group
func (h *ChatHub) Leave(token string) bool {
	userID, ok := h.authorize(h.requestContext(), token)
	if !ok {
		return false
	}

	h.Groups().RemoveFromGroup(domain.UserGroup(userID), h.ConnectionID())
	return true
}

// authorize resolves the user id of a bearer token, the "Bearer " prefix is optional
func (h *ChatHub) authorize(ctx context.Context, token string) (string, bool) {
	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	if token == "" {
		return "", false
	}

	claims, err := h.verifier.Verify(token)
	if err != nil {
		logger.WarnCtx(ctx, "Hub join rejected", zap.Error(err))
		return "", false
	}

	user, err := h.users.Get(ctx, claims.Subject)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("subject", claims.Subject))
		return "", false
	}
	if user == nil {
		logger.WarnCtx(ctx, "Hub join for unknown user", zap.String("subject", claims.Subject))
		return "", false
	}

	return user.ID, true
}

func (h *ChatHub) requestContext() context.Context {
	if ctx := h.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
