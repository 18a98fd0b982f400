// Package worker implements the per-delivery pipeline: decode the job
// descriptor, fetch the source XML from storage, run the root
// dispatcher, serialize the result, publish it, and ack or reject the
// delivery, per spec §4.7. Grounded on
// original_source/src/rabbitmq/consumer.rs's XmlConsumer::handle_delivery.
package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/biel-despair/fiscal-doc-worker/broker"
	"github.com/biel-despair/fiscal-doc-worker/decoder"
	nferrors "github.com/biel-despair/fiscal-doc-worker/errors"
	"github.com/biel-despair/fiscal-doc-worker/job"
	"github.com/biel-despair/fiscal-doc-worker/storage"
)

// Worker processes one delivery at a time through the fetch, decode,
// serialize, publish pipeline.
type Worker struct {
	storage *storage.Client
	log     *zap.Logger
}

// New builds a Worker backed by the given storage client.
func New(store *storage.Client, log *zap.Logger) *Worker {
	return &Worker{storage: store, log: log}
}

// Handle returns a broker.Delivery handler closed over pub, the
// supervisor's shared publishing pool. It never panics: every failure
// path acks or rejects the delivery and returns.
func (w *Worker) Handle(pub *broker.PublisherPool) func(broker.Delivery) {
	return func(d broker.Delivery) {
		ctx := context.Background()
		if err := w.process(ctx, d, pub); err != nil {
			w.log.Error("delivery rejected", zap.Error(err))
			if rejErr := d.Reject(); rejErr != nil {
				w.log.Error("failed to reject delivery", zap.Error(rejErr))
			}
			return
		}
		if err := d.Ack(); err != nil {
			w.log.Error("failed to ack delivery", zap.Error(err))
		}
	}
}

func (w *Worker) process(ctx context.Context, d broker.Delivery, pub *broker.PublisherPool) error {
	desc, err := job.Decode(d.Body)
	if err != nil {
		return err
	}

	log := w.log.With(
		zap.Int64("company_id", desc.CompanyID),
		zap.Int64("org_id", desc.OrgID),
		zap.String("file", desc.File),
	)

	raw, err := w.storage.Fetch(ctx, desc.File)
	if err != nil {
		log.Error("storage fetch failed", zap.Error(err))
		return err
	}

	payload, err := decodeAndSerialize(raw, desc.CompanyID, desc.OrgID)
	if err != nil {
		log.Error("decode failed", zap.Error(err))
		return err
	}

	if err := pub.Publish(ctx, payload); err != nil {
		log.Error("publish failed", zap.Error(err))
		return err
	}

	log.Info("delivery processed")
	return nil
}

// decodeAndSerialize tries the invoice decoder first, then the event
// decoder, matching spec §4.2's root-dispatch fallback: most inputs
// are invoices, so that path is attempted first and its UnknownModel
// result is the signal to retry as an event.
func decodeAndSerialize(raw []byte, companyID, orgID int64) ([]byte, error) {
	invoices, err := decoder.DecodeInvoiceBatch(bytes.NewReader(raw), companyID, orgID)
	if err == nil {
		return json.Marshal(invoices)
	}
	if !isUnknownModel(err) {
		return nil, err
	}

	events, err := decoder.DecodeEventBatch(bytes.NewReader(raw), companyID, orgID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(events)
}

func isUnknownModel(err error) bool {
	var nfe *nferrors.NFError
	if errors.As(err, &nfe) {
		return nfe.Type == nferrors.ErrUnknownModel
	}
	return false
}
