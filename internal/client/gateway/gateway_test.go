package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) Token(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestGateway_AttachesBearerWhenTokenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{token: "t123"}, 0)
	require.NoError(t, g.Get(context.Background(), "/clients/search/name", nil, nil))
	assert.Equal(t, "Bearer t123", gotAuth)
}

func TestGateway_UnauthenticatedWhenTokenAbsent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{}, 0)
	require.NoError(t, g.Post(context.Background(), "/users/register", map[string]string{"a": "b"}, nil))
	assert.Empty(t, gotAuth)
}

func TestGateway_TokenReadErrorAbortsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{err: errors.New("storage broken")}, 0)
	err := g.Get(context.Background(), "/x", nil, nil)
	require.Error(t, err)
	assert.False(t, called)
}

func TestGateway_QueryEscaping(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{}, 0)
	q := url.Values{}
	q.Set("name", "Ana García & sons")
	require.NoError(t, g.Get(context.Background(), "/clients/search/name", q, nil))
	assert.Equal(t, "name=Ana+Garc%C3%ADa+%26+sons", gotQuery)
}

func TestGateway_DecodesResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 7, "name": "Ana"}`))
	}))
	defer srv.Close()

	var out struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	g := New(srv.URL, &staticTokens{}, 0)
	require.NoError(t, g.Get(context.Background(), "/clients/search/phone", nil, &out))
	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, "Ana", out.Name)
}

func TestGateway_NonSuccessBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no client with that phone"}`))
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{}, 0)
	err := g.Get(context.Background(), "/clients/search/phone", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "no client with that phone", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestGateway_NonJSONErrorBodyKeepsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	g := New(srv.URL, &staticTokens{}, 0)
	err := g.Delete(context.Background(), "/clients/delete/1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.False(t, IsNotFound(err))
}

func TestGateway_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	g := New(srv.URL, &staticTokens{}, 0)
	err := g.Get(context.Background(), "/x", nil, nil)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}
