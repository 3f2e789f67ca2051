package filter

import (
	"context"
	"net/http"

	"github.com/godamri/helix-db/pkg/contextx"
)

// Kind identifies the request pipeline an error was raised in.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindHTTP
	KindGraphQL
)

func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "http"
	case KindGraphQL:
		return "graphql"
	default:
		return "unknown"
	}
}

// Host describes where an error is being handled. HTTP hosts carry the
// writer and request the response goes to; GraphQL hosts only a context.
type Host struct {
	Kind    Kind
	Context context.Context
	Writer  http.ResponseWriter
	Request *http.Request
}

func HTTP(w http.ResponseWriter, r *http.Request) Host {
	return Host{Kind: KindHTTP, Context: r.Context(), Writer: w, Request: r}
}

func GraphQL(ctx context.Context) Host {
	if ctx == nil {
		ctx = context.Background()
	}
	return Host{Kind: KindGraphQL, Context: contextx.WithEntryPoint(ctx, KindGraphQL.String())}
}

func (h Host) context() context.Context {
	if h.Context != nil {
		return h.Context
	}
	if h.Request != nil {
		return h.Request.Context()
	}
	return context.Background()
}
