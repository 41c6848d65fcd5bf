package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

type recorded struct {
	method    string
	path      string
	body      map[string]any
	requestID string
	ctype     string
}

func newBackend(t *testing.T, status int, respBody string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.requestID = r.Header.Get(common.RequestIDHeaderName)
		rec.ctype = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &rec.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestHTTPClient_Login(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":1,"email":"ann@example.com"}`)
	c := NewHTTPClient(srv.URL + "/api/")

	u, err := c.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "ann@example.com", u.Email())
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/user/login", rec.path)
	assert.Equal(t, map[string]any{"email": "ann@example.com", "password": "pw"}, rec.body)
	assert.Equal(t, "application/json", rec.ctype)
	_, err = uuid.Parse(rec.requestID)
	assert.NoError(t, err, "request id must be a uuid")
}

func TestHTTPClient_Register(t *testing.T) {
	srv, rec := newBackend(t, http.StatusCreated, `{"id":2}`)
	c := NewHTTPClient(srv.URL + "/api")

	u, err := c.Register(context.Background(), models.Credentials{Email: "b@x", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, float64(2), u["id"])
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/user/register", rec.path)
}

func TestHTTPClient_UpdateProfile(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":1,"name":"Ann"}`)
	c := NewHTTPClient(srv.URL + "/api")

	u, err := c.UpdateProfile(context.Background(), models.Profile{"name": "Ann", "phone": "123"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", u["name"])
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/user/profile", rec.path)
	assert.Equal(t, map[string]any{"name": "Ann", "phone": "123"}, rec.body)
}

func TestHTTPClient_UpdateProfile_NilSendsEmptyObject(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"id":1}`)
	c := NewHTTPClient(srv.URL)

	_, err := c.UpdateProfile(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, rec.body)
}

func TestHTTPClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    error
		message string
	}{
		{"unauthorized text", http.StatusUnauthorized, `Invalid email or password`, ErrUnauthorized, "Invalid email or password"},
		{"forbidden", http.StatusForbidden, ``, ErrUnauthorized, ""},
		{"bad request json string", http.StatusBadRequest, `"User already exists"`, ErrBadRequest, "User already exists"},
		{"conflict object", http.StatusConflict, `{"message":"taken"}`, ErrBadRequest, "taken"},
		{"problem details", http.StatusBadRequest, `{"title":"One or more validation errors occurred."}`, ErrBadRequest, "One or more validation errors occurred."},
		{"server", http.StatusInternalServerError, `{"error":"boom"}`, ErrServer, "boom"},
		{"object without message", http.StatusBadRequest, `{"code":7}`, ErrBadRequest, `{"code":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newBackend(t, tt.status, tt.body)
			c := NewHTTPClient(srv.URL)

			u, err := c.Login(context.Background(), models.Credentials{})
			require.Nil(t, u)
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message())
			assert.Equal(t, tt.body, string(apiErr.Body))
		})
	}
}

func TestHTTPClient_InvalidSuccessBody(t *testing.T) {
	for _, body := range []string{`not json`, `null`, `[1,2]`} {
		srv, _ := newBackend(t, http.StatusOK, body)
		c := NewHTTPClient(srv.URL)

		_, err := c.Login(context.Background(), models.Credentials{})
		require.ErrorIs(t, err, ErrInvalidResponse, body)
	}
}

func TestHTTPClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url)
	_, err := c.Login(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsUnavailable(err))
	require.NoError(t, c.Close())
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{"id":1}`)
	c := NewHTTPClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Login(ctx, models.Credentials{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAPIError_ErrorString(t *testing.T) {
	err := NewAPIError(http.StatusUnauthorized, []byte(`"nope"`))
	assert.Equal(t, "unauthorized: status 401: nope", err.Error())

	err = NewAPIError(http.StatusBadGateway, nil)
	assert.Equal(t, "server error: status 502", err.Error())
}
