package paramstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystash/keystash/pkg/proto"
)

func TestClientListPageRequest(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_ = json.NewEncoder(w).Encode(proto.ListPageResponse{
			Entries:               []proto.Entry{{Name: "/Keys/a", Value: "<key/>"}},
			NextContinuationToken: "tok",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "1.2.3")
	page, err := client.ListPage(context.Background(), "/Keys/", true, "prev")
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/v1/params", got.URL.Path)
	assert.Equal(t, "/Keys/", got.URL.Query().Get("prefix"))
	assert.Equal(t, "true", got.URL.Query().Get("decrypt"))
	assert.Equal(t, "prev", got.URL.Query().Get("continuation-token"))
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "keystash/1.2.3", got.Header.Get("User-Agent"))

	require.Len(t, page.Entries, 1)
	assert.Equal(t, "tok", page.NextContinuationToken)
}

func TestClientListPageOmitsEmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has := r.URL.Query()["continuation-token"]
		assert.False(t, has, "first page request must not carry a token")
		_ = json.NewEncoder(w).Encode(proto.ListPageResponse{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "dev")
	_, err := client.ListPage(context.Background(), "/Keys/", true, "")
	require.NoError(t, err)
}

func TestClientWrite(t *testing.T) {
	var got proto.WriteRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "dev")
	err := client.Write(context.Background(), &proto.WriteRequest{
		Name:  "/Keys/a",
		Value: "<key/>",
		Tier:  proto.TierStandard,
		Type:  proto.TypeEncryptedString,
	})
	require.NoError(t, err)
	assert.Equal(t, "/Keys/a", got.Name)
}

func TestClientWriteErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(proto.ErrorResponse{Error: "ParameterTooLarge", Message: "too big"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "dev")
	err := client.Write(context.Background(), &proto.WriteRequest{Name: "/k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ParameterTooLarge")
	assert.Contains(t, err.Error(), "too big")
}

func TestClientDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		switch r.URL.Query().Get("name") {
		case "/Keys/a":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "dev")
	assert.NoError(t, client.Delete(context.Background(), "/Keys/a"))
	assert.ErrorIs(t, client.Delete(context.Background(), "/Keys/missing"), ErrNotFound)
}
