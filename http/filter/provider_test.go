package filter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/godamri/helix-db/app"
	"github.com/godamri/helix-db/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestProvider_Defaults(t *testing.T) {
	c := dig.New()
	require.NoError(t, app.Install(c, Provider(map[string]int{"P2999": 418}, map[string]string{"P2999": "teapot"})))

	f, err := app.Resolve[*Filter](c)
	require.NoError(t, err)

	status, ok := f.StatusCode("P2999")
	assert.True(t, ok)
	assert.Equal(t, 418, status)
	assert.Equal(t, "teapot", f.Message("P2999", "ignored"))

	status, _ = f.StatusCode("P2002")
	assert.Equal(t, http.StatusConflict, status)
}

func TestProvider_UsesContainerBase(t *testing.T) {
	base := &recordingBase{}

	c := dig.New()
	require.NoError(t, app.Install(c,
		app.Provider{Name: "base", Constructor: func() response.ErrorHandler { return base }},
		Provider(nil, nil),
	))

	f, err := app.Resolve[*Filter](c)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	f.HandleError(w, httptest.NewRequest(http.MethodGet, "/", nil), knownError("P2003"))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, base.errs, 1)
}
