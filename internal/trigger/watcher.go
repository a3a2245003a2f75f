package trigger

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/logger"
)

// Watcher listens on the transactions collection change stream and
// dispatches each added document to the handler. Invocations for different
// documents run concurrently; the steps within one invocation stay
// sequential inside the handler.
type Watcher struct {
	client     *firestore.Client
	handler    Handler
	collection string

	wg sync.WaitGroup
}

func NewWatcher(client *firestore.Client, handler Handler, collection string) *Watcher {
	return &Watcher{
		client:     client,
		handler:    handler,
		collection: collection,
	}
}

// Run blocks on the collection snapshot stream until ctx is cancelled. The
// first snapshot reports every existing document as an addition; it is
// skipped so only documents created after startup are dispatched (the sweep
// job picks up anything left unprocessed from before).
func (w *Watcher) Run(ctx context.Context) error {
	it := w.client.Collection(w.collection).Snapshots(ctx)
	defer it.Stop()

	logger.Info("Watching collection for new transactions", "collection", w.collection)

	initial := true
	for {
		snap, err := it.Next()
		if err != nil {
			w.wg.Wait()
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				logger.Info("Transaction watcher stopped")
				return nil
			}
			return err
		}
		if initial {
			initial = false
			continue
		}
		for _, change := range snap.Changes {
			if change.Kind != firestore.DocumentAdded {
				continue
			}
			evt := w.decode(change.Doc)
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				if err := w.handler.HandleCreated(ctx, evt); err != nil {
					logger.Error("Transaction handler failed", "transaction_id", evt.ID, "error", err)
				}
			}()
		}
	}
}

// decode turns a document snapshot into a CreateEvent. A document that does
// not decode yields an event with nil Data, which the handler logs and
// consumes without side effects.
func (w *Watcher) decode(doc *firestore.DocumentSnapshot) *CreateEvent {
	evt := &CreateEvent{ID: doc.Ref.ID}
	var tx domain.Transaction
	if err := doc.DataTo(&tx); err != nil {
		logger.Error("Failed to decode transaction document", "transaction_id", doc.Ref.ID, "error", err)
		return evt
	}
	tx.ID = doc.Ref.ID
	evt.Data = &tx
	return evt
}
