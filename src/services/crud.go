package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"sbs/src/models"
	"sbs/src/store"
)

// Crud is the load-mutate-rewrite cycle every collection service shares:
// fetch the full array, change it in memory, write the full array back.
// Storage faults are logged and swallowed here; callers see empty results,
// nil, or false, never an upstream error.
type Crud[T any, P interface {
	*T
	models.Entity
}] struct {
	store *store.Store
	name  string
}

func NewCrud[T any, P interface {
	*T
	models.Entity
}](st *store.Store, name string) Crud[T, P] {
	return Crud[T, P]{store: st, name: name}
}

func (c *Crud[T, P]) GetAll(ctx context.Context) []T {
	return store.GetCollection[T](ctx, c.store, c.name)
}

func (c *Crud[T, P]) GetByID(ctx context.Context, id string) *T {
	records := c.GetAll(ctx)
	for i := range records {
		if P(&records[i]).RecordID() == id {
			return &records[i]
		}
	}
	return nil
}

func (c *Crud[T, P]) Create(ctx context.Context, rec T) T {
	p := P(&rec)
	p.SetRecordID(uuid.NewString())
	p.StampCreated(time.Now().UTC())
	records := c.GetAll(ctx)
	records = append(records, rec)
	c.save(ctx, records)
	return rec
}

// Update applies a typed mutator to the matching record. The id is restored
// afterwards, so no patch can move a record to a different identity.
func (c *Crud[T, P]) Update(ctx context.Context, id string, apply func(P)) *T {
	records := c.GetAll(ctx)
	for i := range records {
		p := P(&records[i])
		if p.RecordID() != id {
			continue
		}
		apply(p)
		p.SetRecordID(id)
		p.StampUpdated(time.Now().UTC())
		c.save(ctx, records)
		return &records[i]
	}
	return nil
}

// Delete reports whether the record existed. Repeated deletes are safe and
// return false.
func (c *Crud[T, P]) Delete(ctx context.Context, id string) bool {
	records := c.GetAll(ctx)
	kept := make([]T, 0, len(records))
	found := false
	for i := range records {
		if P(&records[i]).RecordID() == id {
			found = true
			continue
		}
		kept = append(kept, records[i])
	}
	if !found {
		return false
	}
	c.save(ctx, kept)
	return true
}

func (c *Crud[T, P]) save(ctx context.Context, records []T) {
	if err := store.SaveCollection(ctx, c.store, c.name, records); err != nil {
		log.Printf("[%s] Error saving collection: %s\n", c.name, err.Error())
	}
}
