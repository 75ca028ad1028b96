package livequery

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreSource adapts a Firestore query to a DocumentSource using the
// server-push snapshot listener. Each snapshot delivers the full result set,
// including the initial one.
type FirestoreSource struct {
	Query firestore.Query
}

func NewFirestoreSource(q firestore.Query) *FirestoreSource {
	return &FirestoreSource{Query: q}
}

func (s *FirestoreSource) Watch(ctx context.Context) (<-chan []Document, <-chan error) {
	docsCh := make(chan []Document)
	errCh := make(chan error, 1)

	go func() {
		defer close(docsCh)
		defer close(errCh)

		snaps := s.Query.Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				errCh <- err
				return
			}

			docs, err := collectDocs(snap)
			if err != nil {
				errCh <- err
				return
			}

			select {
			case docsCh <- docs:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docsCh, errCh
}

func collectDocs(snap *firestore.QuerySnapshot) ([]Document, error) {
	docs := []Document{}
	for {
		d, err := snap.Documents.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(d.Data())
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{ID: d.Ref.ID, Data: data})
	}
	return docs, nil
}
