// Package meta maintains the "meta" collection: one document per data
// collection carrying its last-updated timestamp, consumed by downstream
// delta-sync readers such as the reporting mirror.
package meta

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
)

const collectionName = "meta"

type Stamp struct {
	Collection string    `firestore:"collection" json:"collection"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Stamper writes last-updated marks for collections.
type Stamper struct {
	client *firestore.Client
}

func NewStamper(client *firestore.Client) *Stamper {
	return &Stamper{client: client}
}

// Touch records that collection changed now. Stamping is advisory: a failure
// is logged, never returned, so a write path cannot fail on its stamp.
func (s *Stamper) Touch(ctx context.Context, collection string) {
	_, err := s.client.Collection(collectionName).Doc(collection).Set(ctx, map[string]interface{}{
		"collection": collection,
		"updatedAt":  firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		log.Printf("[warn] operation=meta.touch collection=%s error=%v", collection, err)
	}
}

// Get reads the stamp for one collection.
func (s *Stamper) Get(ctx context.Context, collection string) (*Stamp, error) {
	snap, err := s.client.Collection(collectionName).Doc(collection).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stamp for %s: %w", collection, err)
	}

	var st Stamp
	if err := snap.DataTo(&st); err != nil {
		return nil, fmt.Errorf("decode stamp for %s: %w", collection, err)
	}
	return &st, nil
}
