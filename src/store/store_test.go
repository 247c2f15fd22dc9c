package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type event struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryObjectStore())

	records := []event{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "c", Name: "third"},
	}
	err := SaveCollection(ctx, s, "events", records)
	assert.Nil(t, err)

	got := GetCollection[event](ctx, s, "events")
	assert.Equal(t, records, got, "order must be preserved")
}

func TestMissingCollectionReadsEmpty(t *testing.T) {
	mem := NewMemoryObjectStore()
	s := New(mem)

	got := GetCollection[event](context.Background(), s, "nonexistent")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 0, mem.Len(), "reading must not create a file")
}

func TestMalformedCollectionReadsEmpty(t *testing.T) {
	mem := NewMemoryObjectStore()
	s := New(mem)
	ctx := context.Background()

	mem.Corrupt("events.json", []byte(`{"not":"an array"}`))
	assert.Empty(t, GetCollection[event](ctx, s, "events"))

	mem.Corrupt("events.json", []byte(`{"truncated":`))
	assert.Empty(t, GetCollection[event](ctx, s, "events"))

	mem.Corrupt("events.json", nil)
	assert.Empty(t, GetCollection[event](ctx, s, "events"))
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryObjectStore()
	s := New(mem)

	err := SaveCollection(ctx, s, "events", []event(nil))
	assert.Nil(t, err)
	assert.Equal(t, 1, mem.Len())

	got := GetCollection[event](ctx, s, "events")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOverwriteReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryObjectStore())

	assert.Nil(t, SaveCollection(ctx, s, "events", []event{{ID: "a"}, {ID: "b"}}))
	assert.Nil(t, SaveCollection(ctx, s, "events", []event{{ID: "c"}}))

	got := GetCollection[event](ctx, s, "events")
	assert.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}
