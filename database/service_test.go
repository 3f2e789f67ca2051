package database

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/godamri/helix-db/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

type fakeClient struct {
	pings int
}

func (c *fakeClient) PingContext(ctx context.Context) error {
	c.pings++
	return nil
}

func (c *fakeClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, nil
}

func (c *fakeClient) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return nil, nil
}

func (c *fakeClient) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return nil
}

func (c *fakeClient) Close() error {
	return nil
}

func TestNewService_KeepsHandle(t *testing.T) {
	client := &fakeClient{}

	svc := NewService(client)

	assert.Same(t, client, svc.Client)
	assert.Zero(t, client.pings, "the wrapper must not touch the client")
}

func TestService_ClientIsMutable(t *testing.T) {
	svc := NewService(&fakeClient{})
	other := &fakeClient{}

	svc.Client = other

	assert.Same(t, other, svc.Client)
}

func TestServiceProvider_ResolvesNamedClient(t *testing.T) {
	client := &fakeClient{}

	c := dig.New()
	require.NoError(t, app.Install(c, ClientProvider(client), ServiceProvider()))

	svc, err := app.Resolve[*Service](c)
	require.NoError(t, err)
	assert.Same(t, client, svc.Client)

	again, err := app.Resolve[*Service](c)
	require.NoError(t, err)
	assert.Same(t, svc, again)
}

func TestServiceProvider_MissingClient(t *testing.T) {
	c := dig.New()
	require.NoError(t, app.Install(c, ServiceProvider()))

	_, err := app.Resolve[*Service](c)
	assert.Error(t, err)
}

func TestServiceIn_TagMatchesToken(t *testing.T) {
	field, ok := reflect.TypeOf(serviceIn{}).FieldByName("Client")
	require.True(t, ok)
	assert.Equal(t, ClientToken, field.Tag.Get("name"))
}
