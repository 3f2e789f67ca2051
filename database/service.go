package database

import (
	"context"
	"database/sql"

	"github.com/godamri/helix-db/app"
	"go.uber.org/dig"
)

// ClientToken is the container name the client handle is registered under.
// Registration code and consumers must agree on this value.
const ClientToken = "helix.database.client"

// Client is the capability set expected from a database handle.
// *sql.DB satisfies it.
type Client interface {
	PingContext(ctx context.Context) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	Close() error
}

// Service exposes an externally owned Client to the rest of the
// application. It never opens, pings or closes the client.
type Service struct {
	Client Client
}

func NewService(client Client) *Service {
	return &Service{Client: client}
}

// serviceIn pulls the client by name; the tag must equal ClientToken.
type serviceIn struct {
	dig.In

	Client Client `name:"helix.database.client"`
}

// ClientProvider registers the host-built client under ClientToken.
func ClientProvider(client Client) app.Provider {
	return app.Provider{
		Name: ClientToken,
		Constructor: func() Client {
			return client
		},
		Options: []dig.ProvideOption{dig.Name(ClientToken)},
	}
}

// ServiceProvider registers *Service, built from the client named ClientToken.
func ServiceProvider() app.Provider {
	return app.Provider{
		Name: "database.Service",
		Constructor: func(in serviceIn) *Service {
			return NewService(in.Client)
		},
	}
}
