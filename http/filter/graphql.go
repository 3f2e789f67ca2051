package filter

import (
	"context"
	"errors"

	"github.com/godamri/helix-db/http/response"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// PresentGraphQL has the shape of a gqlgen error presenter. Mapped errors
// get extensions.code and extensions.statusCode; everything else is
// serialized as it came in. Path and locations of an incoming
// *gqlerror.Error are kept.
func (f *Filter) PresentGraphQL(ctx context.Context, err error) *gqlerror.Error {
	if err == nil {
		return nil
	}

	out := f.Handle(err, GraphQL(ctx))

	var incoming *gqlerror.Error
	errors.As(err, &incoming)

	var statusErr *response.StatusError
	if !errors.As(out, &statusErr) {
		if gqlErr, ok := out.(*gqlerror.Error); ok {
			return gqlErr
		}
		return withPosition(&gqlerror.Error{Err: out, Message: out.Error()}, incoming)
	}

	return withPosition(&gqlerror.Error{
		Err:     statusErr,
		Message: statusErr.Message,
		Extensions: map[string]interface{}{
			"code":       response.CodeForStatus(statusErr.StatusCode),
			"statusCode": statusErr.StatusCode,
		},
	}, incoming)
}

func withPosition(out, incoming *gqlerror.Error) *gqlerror.Error {
	if incoming != nil {
		out.Path = incoming.Path
		out.Locations = incoming.Locations
	}
	return out
}
