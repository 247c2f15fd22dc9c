package store

import (
	"context"
	"encoding/json"
	"log"
)

// ObjectStore is the byte-level boundary the collection store talks through.
// lib/aws.ObjectGateway implements it against S3; tests and local runs use
// the in-memory variant.
type ObjectStore interface {
	ResolveKeyByName(ctx context.Context, name string) (string, bool)
	GetObjectContents(ctx context.Context, key string) ([]byte, error)
	PutObjectContents(ctx context.Context, name string, data []byte) error
}

// Store maps a collection name to exactly one remote JSON file holding an
// array of records. Reads are guaranteed-array: a missing or malformed file
// is an empty collection, never an error. Writes overwrite the whole file.
//
// There is no locking and no version check. Two concurrent
// read-modify-write cycles on the same collection race, and the second
// writer silently discards the first writer's change (last-writer-wins at
// whole-collection granularity). Accepted trade-off for a low-concurrency
// admin tool; see DESIGN.md before tightening it.
type Store struct {
	objects ObjectStore
}

func New(objects ObjectStore) *Store {
	return &Store{objects: objects}
}

func fileName(name string) string {
	return name + ".json"
}

// GetCollection reads a whole collection. Reading never creates the file.
func GetCollection[T any](ctx context.Context, s *Store, name string) []T {
	key, ok := s.objects.ResolveKeyByName(ctx, fileName(name))
	if !ok {
		return []T{}
	}
	data, err := s.objects.GetObjectContents(ctx, key)
	if err != nil {
		log.Printf("[store] Error downloading collection %s: %s\n", name, err.Error())
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[store] Collection %s does not parse as an array, treating as empty: %s\n", name, err.Error())
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// SaveCollection serializes the full array (pretty-printed) and overwrites
// the collection file, creating it when absent.
func SaveCollection[T any](ctx context.Context, s *Store, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return s.objects.PutObjectContents(ctx, fileName(name), data)
}
