package filter

import (
	"log/slog"

	"github.com/godamri/helix-db/app"
	"github.com/godamri/helix-db/http/response"
	"go.uber.org/dig"
)

type providerIn struct {
	dig.In

	Base   response.ErrorHandler `optional:"true"`
	Logger *slog.Logger          `optional:"true"`
}

// Provider describes a *Filter registration. When resolved, the filter is
// built from the container's response.ErrorHandler and *slog.Logger (both
// optional) plus the given table overrides.
func Provider(statusCodes map[string]int, messages map[string]string) app.Provider {
	return app.Provider{
		Name: "filter.Filter",
		Constructor: func(in providerIn) *Filter {
			return New(
				WithBase(in.Base),
				WithLogger(in.Logger),
				WithStatusCodes(statusCodes),
				WithMessages(messages),
			)
		},
	}
}
