package adapter

import (
	"context"

	"github.com/philippseith/signalr"
)

//go:generate mockgen -destination=../mocks/signalr_clients.go -package=mocks -mock_names=HubClients=MockHubClients,ClientProxy=MockClientProxy github.com/philippseith/signalr HubClients,ClientProxy

// SignalRServer defines the hub server operations used to serve and push to connected clients
//
//go:generate mockgen -source=signalr.go -destination=../mocks/signalr.go -package=mocks -mock_names=SignalRServer=MockSignalRServer
type SignalRServer interface {
	// MapHTTP registers the negotiate and websocket endpoints of the hub under path
	MapHTTP(routerFactory func() signalr.MappableRouter, path string)
	// HubClients returns the client proxies used to push events from outside a hub method
	HubClients() signalr.HubClients
}

// SignalR defines an interface for creating SignalR hub servers
//
//go:generate mockgen -source=signalr.go -destination=../mocks/signalr.go -package=mocks -mock_names=SignalR=MockSignalR
type SignalR interface {
	NewServer(ctx context.Context, options ...func(signalr.Party) error) (SignalRServer, error)
}

// RealSignalR implements SignalR using the signalr package
type RealSignalR struct{}

// NewSignalR creates a new real SignalR
func NewSignalR() SignalR {
	return &RealSignalR{}
}

func (s *RealSignalR) NewServer(ctx context.Context, options ...func(signalr.Party) error) (SignalRServer, error) {
	return signalr.NewServer(ctx, options...)
}
