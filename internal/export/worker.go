package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"catalog-service/internal/domain"
)

// FileStore keeps a copy of each exported document in object storage.
type FileStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

type Worker struct {
	store Store
	files FileStore
	mail  EmailSender
}

func NewWorker(store Store, files FileStore, mail EmailSender) *Worker {
	return &Worker{store: store, files: files, mail: mail}
}

// Run consumes export jobs until the channel closes or ctx is cancelled.
// Malformed payloads are acked and dropped; handler failures are nacked
// without requeue so a poisoned job cannot spin forever.
func (w *Worker) Run(ctx context.Context, ch *amqp.Channel) error {
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(QueueName, "export-worker", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-deliveries:
			if !ok {
				return nil
			}

			var job Job
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("worker: malformed job payload, dropping: %v", err)
				_ = msg.Ack(false)
				continue
			}

			if err := w.handle(ctx, job); err != nil {
				log.Printf("worker: export %s for %s: %v", job.PlaylistID, job.TargetEmail, err)
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

// handle builds the export document, archives it and mails it.
func (w *Worker) handle(ctx context.Context, job Job) error {
	doc, err := w.store.GetPlaylistExport(ctx, job.PlaylistID)
	if err != nil {
		// The playlist may have been deleted between enqueue and
		// consume; nothing to export then.
		if domain.KindOf(err) == domain.KindNotFound {
			log.Printf("worker: playlist %s gone, skipping export", job.PlaylistID)
			return nil
		}
		return err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if w.files != nil {
		key := fmt.Sprintf("exports/%s-%s.json", job.PlaylistID, uuid.NewString())
		if _, err := w.files.Put(ctx, key, "application/json", bytes.NewReader(payload), int64(len(payload))); err != nil {
			log.Printf("worker: archive export %s: %v", job.PlaylistID, err)
		}
	}

	subject := fmt.Sprintf("Playlist export: %s", doc.Playlist.Name)
	return w.mail.Send(job.TargetEmail, subject, string(payload))
}
