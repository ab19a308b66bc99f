package paramstore

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystash/keystash/pkg/proto"
)

func writeReq(name, value string) *proto.WriteRequest {
	return &proto.WriteRequest{
		Name:  name,
		Value: value,
		Tier:  proto.TierStandard,
		Type:  proto.TypeEncryptedString,
	}
}

func TestMemoryStorePutAndList(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put(writeReq("/Keys/b", "two")))
	require.NoError(t, store.Put(writeReq("/Keys/a", "one")))
	require.NoError(t, store.Put(writeReq("/Other/x", "elsewhere")))

	entries, next, err := store.ListPage("/Keys/", "", 10)
	require.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, entries, 2)
	assert.Equal(t, "/Keys/a", entries[0].Name, "entries come back name-sorted")
	assert.Equal(t, "one", entries[0].Value)
	assert.Equal(t, "/Keys/b", entries[1].Name)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put(writeReq("/Keys/a", "old")))
	require.NoError(t, store.Put(writeReq("/Keys/a", "new")))

	entries, _, err := store.ListPage("/Keys/", "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Value)
}

func TestMemoryStorePagination(t *testing.T) {
	store := NewMemoryStore()
	for i := 0; i < 25; i++ {
		require.NoError(t, store.Put(writeReq(fmt.Sprintf("/Keys/k%02d", i), "v")))
	}

	var (
		seen   []string
		marker string
		pages  int
	)
	for {
		entries, next, err := store.ListPage("/Keys/", marker, 10)
		require.NoError(t, err)
		pages++
		for _, e := range entries {
			seen = append(seen, e.Name)
		}
		if next == "" {
			break
		}
		marker = next
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, 25)
	assert.Equal(t, "/Keys/k00", seen[0])
	assert.Equal(t, "/Keys/k24", seen[24])
}

func TestMemoryStorePutValidation(t *testing.T) {
	store := NewMemoryStore()

	tests := []struct {
		name    string
		req     *proto.WriteRequest
		wantErr error
	}{
		{"relative name", &proto.WriteRequest{Name: "k", Value: "v", Tier: proto.TierStandard, Type: proto.TypeEncryptedString}, ErrInvalidName},
		{"root only", &proto.WriteRequest{Name: "/", Value: "v", Tier: proto.TierStandard, Type: proto.TypeEncryptedString}, ErrInvalidName},
		{"bad tier", &proto.WriteRequest{Name: "/k", Value: "v", Tier: "Turbo", Type: proto.TypeEncryptedString}, ErrInvalidTier},
		{"bad type", &proto.WriteRequest{Name: "/k", Value: "v", Tier: proto.TierStandard, Type: "plain"}, ErrInvalidType},
		{"standard oversize", writeReq("/k", strings.Repeat("x", proto.MaxStandardValueSize+1)), ErrValueTooLarge},
		{
			"advanced oversize",
			&proto.WriteRequest{Name: "/k", Value: strings.Repeat("x", proto.MaxAdvancedValueSize+1), Tier: proto.TierAdvanced, Type: proto.TypeEncryptedString},
			ErrValueTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, store.Put(tt.req), tt.wantErr)
		})
	}

	// Advanced and IntelligentTiering accept what Standard rejects.
	big := strings.Repeat("x", proto.MaxStandardValueSize+1)
	assert.NoError(t, store.Put(&proto.WriteRequest{Name: "/big1", Value: big, Tier: proto.TierAdvanced, Type: proto.TypeEncryptedString}))
	assert.NoError(t, store.Put(&proto.WriteRequest{Name: "/big2", Value: big, Tier: proto.TierIntelligentTiering, Type: proto.TypeEncryptedString}))
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Put(writeReq("/Keys/a", "v")))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete("/Keys/a"))
	assert.Equal(t, 0, store.Len())

	assert.ErrorIs(t, store.Delete("/Keys/a"), ErrNotFound)
}
