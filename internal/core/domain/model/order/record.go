package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/pkg/errs"
)

// Persisted record layout, shared with the delimited order files:
//
//	orderId, customerEmail, restaurantId, deliveryDate, deliveryTime,
//	deliveryAddress, createdDateTime, total, status, "name, qty|name, qty"
//
// The item list is pipe-delimited inside a single field; the surrounding
// CSV writer is responsible for quoting it. Payment method and paid flag
// are not persisted by this format; reconstruction applies safe defaults.
const (
	RecordFieldCount = 10

	recordDateLayout     = "02/01/2006"
	recordTimeLayout     = "15:04"
	recordDateTimeLayout = "02/01/2006 15:04"

	// Defaults for the fields the record format does not carry.
	restoredPaymentMethod = "CC"
)

// Record field positions.
const (
	recordFieldID = iota
	recordFieldCustomerEmail
	recordFieldRestaurantID
	recordFieldDeliveryDate
	recordFieldDeliveryTime
	recordFieldAddress
	recordFieldCreatedAt
	recordFieldTotal
	recordFieldStatus
	recordFieldItems
)

// RecordHeader returns the header row matching Record's field order.
func RecordHeader() []string {
	return []string{
		"OrderId", "CustomerEmail", "RestaurantId", "DeliveryDate", "DeliveryTime",
		"DeliveryAddress", "CreatedDateTime", "TotalAmount", "Status", "Items",
	}
}

// Record serializes the order into the persisted record shape.
// Timestamps are truncated to minute precision by the layouts.
func (o *Order) Record() []string {
	itemParts := make([]string, 0, len(o.items))
	for _, item := range o.items {
		itemParts = append(itemParts, fmt.Sprintf("%s, %d", item.Name(), item.Quantity()))
	}

	return []string{
		strconv.FormatInt(o.id, 10),
		o.customerEmail,
		o.restaurantID,
		o.deliveryAt.Format(recordDateLayout),
		o.deliveryAt.Format(recordTimeLayout),
		o.address,
		o.createdAt.Format(recordDateTimeLayout),
		o.Total().String(),
		o.status.String(),
		strings.Join(itemParts, "|"),
	}
}

// ItemResolver supplies the catalog description and unit price for an item
// name during record reconstruction. The record stores names and quantities
// only; prices come from the catalog the record is loaded against.
type ItemResolver func(name string) (description string, unitPrice kernel.Money, ok bool)

// RestoreFromRecord reconstructs an Order from a persisted record.
//
// Identity, timestamps and status must parse; a failure there rejects the
// whole record. Items are best-effort: entries whose name the resolver
// does not know, or whose quantity is malformed, are skipped so one stale
// catalog reference does not lose the rest of the order (partial-success
// load semantics).
func RestoreFromRecord(fields []string, resolve ItemResolver) (*Order, error) {
	if len(fields) < RecordFieldCount {
		return nil, errs.NewValueIsInvalidErrorWithCause("order record",
			fmt.Errorf("expected %d fields, got %d", RecordFieldCount, len(fields)))
	}

	trimmed := make([]string, len(fields))
	for i, f := range fields {
		trimmed[i] = strings.TrimSpace(f)
	}

	id, err := strconv.ParseInt(trimmed[recordFieldID], 10, 64)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	deliveryAt, err := time.Parse(recordDateTimeLayout,
		trimmed[recordFieldDeliveryDate]+" "+trimmed[recordFieldDeliveryTime])
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery at", err)
	}

	createdAt, err := time.Parse(recordDateTimeLayout, trimmed[recordFieldCreatedAt])
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("created at", err)
	}

	// The stored total is informational; totals are always recomputed from
	// line items. Still reject records whose total does not even parse.
	if _, err = kernel.ParseMoney(trimmed[recordFieldTotal]); err != nil {
		return nil, err
	}

	status, err := StatusFromString(trimmed[recordFieldStatus])
	if err != nil {
		return nil, err
	}

	items := parseRecordItems(trimmed[recordFieldItems], resolve)

	return RestoreOrder(
		id,
		trimmed[recordFieldCustomerEmail],
		trimmed[recordFieldRestaurantID],
		createdAt,
		deliveryAt,
		trimmed[recordFieldAddress],
		restoredPaymentMethod,
		true,
		status,
		items,
		"",
		nil,
	)
}

func parseRecordItems(itemsField string, resolve ItemResolver) []LineItem {
	if itemsField == "" {
		return nil
	}

	var items []LineItem
	for _, part := range strings.Split(itemsField, "|") {
		sep := strings.LastIndex(part, ",")
		if sep < 0 {
			continue
		}

		name := strings.TrimSpace(part[:sep])
		qty, err := strconv.Atoi(strings.TrimSpace(part[sep+1:]))
		if err != nil || name == "" {
			continue
		}

		description, unitPrice, ok := resolve(name)
		if !ok {
			continue
		}

		item, err := NewLineItem(name, description, unitPrice, qty)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
