package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/core/ports"
)

// Writer serializes workflow state back to the data directory: the live
// restaurant queues to queue.csv and the refund ledger to stack.csv.
type Writer struct {
	uowFactory ports.UnitOfWorkFactory
	dir        string
	log        *slog.Logger
}

// NewWriter creates a writer targeting dir.
func NewWriter(uowFactory ports.UnitOfWorkFactory, dir string, log *slog.Logger) (*Writer, error) {
	if uowFactory == nil {
		return nil, ErrUnitOfWorkFactoryIsRequired
	}
	if log == nil {
		log = slog.Default()
	}
	return &Writer{uowFactory: uowFactory, dir: dir, log: log}, nil
}

// SaveSnapshots writes queue.csv and stack.csv. Queued orders appear per
// restaurant in catalog order, each queue head first; refund entries
// appear most recent first. A queued or refunded id with no ledger entry
// is skipped.
func (w *Writer) SaveSnapshots(ctx context.Context) error {
	uow := w.uowFactory.Create()

	queued, err := w.collectQueuedOrders(ctx, uow)
	if err != nil {
		return err
	}
	if err = w.writeRecords(queueFile, queued); err != nil {
		return err
	}

	refunded, err := w.collectRefundedOrders(ctx, uow)
	if err != nil {
		return err
	}
	if err = w.writeRecords(stackFile, refunded); err != nil {
		return err
	}

	w.log.Info("snapshots saved", "queued", len(queued), "refunded", len(refunded))
	return nil
}

func (w *Writer) collectQueuedOrders(ctx context.Context, uow ports.UnitOfWork) ([]*order.Order, error) {
	restaurants, err := uow.RestaurantRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var orders []*order.Order
	for _, rest := range restaurants {
		for _, orderID := range rest.Queue() {
			o, err := uow.OrderRepository().Get(ctx, orderID)
			if err != nil {
				w.log.Warn("queued order missing from ledger", "order_id", orderID)
				continue
			}
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (w *Writer) collectRefundedOrders(ctx context.Context, uow ports.UnitOfWork) ([]*order.Order, error) {
	entries, err := uow.RefundRepository().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var orders []*order.Order
	for _, entry := range entries {
		o, err := uow.OrderRepository().Get(ctx, entry.OrderID)
		if err != nil {
			w.log.Warn("refunded order missing from ledger", "order_id", entry.OrderID)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// writeRecords replaces one snapshot file with a header row plus the given
// orders in the persisted record format.
func (w *Writer) writeRecords(name string, orders []*order.Order) error {
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err = cw.Write(order.RecordHeader()); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	for _, o := range orders {
		if err = cw.Write(o.Record()); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
