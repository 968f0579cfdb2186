package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clientdesk/clientdesk/internal/client/gateway"
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noTokens struct{}

func (noTokens) Token(ctx context.Context) (string, error) { return "", nil }

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(gateway.New(srv.URL, noTokens{}, 0))
}

func TestService_SearchByName(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/search/name", r.URL.Path)
		assert.Equal(t, "Ana", r.URL.Query().Get("name"))
		w.Write([]byte(`[{"id":1,"name":"Ana García","phone_number":"555-0101","address":"Calle 1"}]`))
	})

	got, err := svc.SearchByName(context.Background(), "Ana")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Ana García", got[0].Name)
	assert.Equal(t, "555-0101", got[0].PhoneNumber)
	assert.Equal(t, "Calle 1", got[0].Address)
}

func TestService_SearchByPhone_NotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no client with that phone"}`))
	})

	got, err := svc.SearchByPhone(context.Background(), "555-9999")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestService_SearchByPhone_Match(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "555-0101", r.URL.Query().Get("phone"))
		w.Write([]byte(`{"id":3,"name":"Luis","phone_number":"555-0101","address":"Calle 2"}`))
	})

	got, err := svc.SearchByPhone(context.Background(), "555-0101")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestService_Update_SendsFieldsAndPath(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/clients/update/7", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ana", body["name"])
		assert.Equal(t, "555-1", body["phone_number"])
		assert.Equal(t, "Calle 9", body["address"])

		w.Write([]byte(`{"id":7,"name":"Ana","phone_number":"555-1","address":"Calle 9"}`))
	})

	got, err := svc.Update(context.Background(), 7, "Ana", "555-1", "Calle 9")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/clients/delete/9", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), common.ErrNotFound)
}

func TestService_Create_ParsesEnvelope(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/clients/create", r.URL.Path)
		w.Write([]byte(`{"message":"client created","client":{"id":12,"name":"Eva","phone_number":"555-2","address":"Calle 3"}}`))
	})

	got, err := svc.Create(context.Background(), "Eva", "555-2", "Calle 3")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
}

func TestService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already registered"}`))
	})

	err := svc.RegisterUser(context.Background(), "Eva", "eva@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}
