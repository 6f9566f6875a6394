package restaurant

import (
	"errors"

	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrRestaurantIsNotConstructed is returned when using a Restaurant that
	// was not created via NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New(
		"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor",
	)

	// ErrOrderAlreadyQueued is returned when enqueueing an order id that is
	// already present in the processing queue. An order appears in at most
	// one queue position at a time.
	ErrOrderAlreadyQueued = errors.New("order is already in the processing queue")
)

// Restaurant is the aggregate root for a restaurant's reference data and its
// order processing pipeline. It owns zero or more menus, zero or more
// special offers, and a FIFO queue of order ids currently active in the
// processing workflow.
//
// Key responsibilities:
//   - Managing identity (id, name, contact email)
//   - Owning menus and looking up food items across them
//   - Driving the FIFO processing queue: orders enter at the tail, are
//     dequeued for disposition, and re-enter at the tail unless archived
//
// Business rules:
//   - A restaurant must have a non-empty id, name and email
//   - An order id appears at most once in the queue
//   - The queue holds ids only; orders themselves live in the order ledger
//
// Example usage:
//
//	r, err := restaurant.NewRestaurant("R1", "Pasta Palace", "pasta@example.com")
//	if err != nil {
//	    // handle construction error
//	}
//	_ = r.Enqueue(1001)
//	id, ok := r.Dequeue() // 1001, true
type Restaurant struct {
	id    string
	name  string
	email string

	menus  []*Menu
	offers []*SpecialOffer
	queue  []int64

	guard guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant with no menus, offers, or queued
// orders. All three identity fields are required.
func NewRestaurant(id, name, email string) (*Restaurant, error) {
	r := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setEmail(email),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, including
// its menus, offers, and current queue contents, in stored order.
func RestoreRestaurant(
	id, name, email string,
	menus []*Menu,
	offers []*SpecialOffer,
	queue []int64,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, email)
	if err != nil {
		return nil, err
	}

	for _, m := range menus {
		if err = r.AddMenu(m); err != nil {
			return nil, err
		}
	}
	for _, o := range offers {
		if err = r.AddSpecialOffer(o); err != nil {
			return nil, err
		}
	}
	for _, orderID := range queue {
		if err = r.Enqueue(orderID); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// ID returns the restaurant's identifier.
func (r *Restaurant) ID() string {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Email returns the restaurant's contact email.
func (r *Restaurant) Email() string {
	return r.email
}

// Menus returns the restaurant's menus in insertion order.
func (r *Restaurant) Menus() []*Menu {
	menus := make([]*Menu, len(r.menus))
	copy(menus, r.menus)
	return menus
}

// Offers returns the restaurant's special offers in insertion order.
func (r *Restaurant) Offers() []*SpecialOffer {
	offers := make([]*SpecialOffer, len(r.offers))
	copy(offers, r.offers)
	return offers
}

// AddMenu attaches a menu to the restaurant.
func (r *Restaurant) AddMenu(menu *Menu) error {
	if err := menu.Validate(); err != nil {
		return err
	}
	r.menus = append(r.menus, menu)
	return nil
}

// AddSpecialOffer attaches a special offer to the restaurant.
func (r *Restaurant) AddSpecialOffer(offer *SpecialOffer) error {
	if err := offer.Validate(); err != nil {
		return err
	}
	r.offers = append(r.offers, offer)
	return nil
}

// FindFoodItem looks up a food item by name across all menus, first match
// wins. Used by order creation to capture the item's price by value.
func (r *Restaurant) FindFoodItem(name string) (FoodItem, bool) {
	for _, m := range r.menus {
		if item, ok := m.FindFoodItem(name); ok {
			return item, true
		}
	}
	return FoodItem{}, false
}

// FindOffer looks up a special offer by id.
func (r *Restaurant) FindOffer(id uuid.UUID) (*SpecialOffer, bool) {
	for _, o := range r.offers {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// Enqueue appends an order id to the tail of the processing queue.
// An id already present in the queue is rejected: the aggregate protects
// the at-most-one-queue-position invariant regardless of caller behavior.
func (r *Restaurant) Enqueue(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("order id")
	}
	if r.isQueued(orderID) {
		return ErrOrderAlreadyQueued
	}

	r.queue = append(r.queue, orderID)
	return nil
}

// Dequeue removes and returns the order id at the head of the queue.
// Reports false when the queue is empty.
func (r *Restaurant) Dequeue() (int64, bool) {
	if len(r.queue) == 0 {
		return 0, false
	}

	head := r.queue[0]
	r.queue = r.queue[1:]
	return head, true
}

// RemoveFromQueue removes the given order id wherever it sits in the queue,
// preserving the relative order of the rest. Reports whether it was present.
// Cancellation uses this to pull a pending order out of the pipeline.
func (r *Restaurant) RemoveFromQueue(orderID int64) bool {
	for i, id := range r.queue {
		if id == orderID {
			r.queue = append(r.queue[:i], r.queue[i+1:]...)
			return true
		}
	}
	return false
}

// QueueLen returns the number of orders currently queued.
func (r *Restaurant) QueueLen() int {
	return len(r.queue)
}

// Queue returns a snapshot of the queued order ids, head first.
func (r *Restaurant) Queue() []int64 {
	queue := make([]int64, len(r.queue))
	copy(queue, r.queue)
	return queue
}

func (r *Restaurant) isQueued(orderID int64) bool {
	for _, id := range r.queue {
		if id == orderID {
			return true
		}
	}
	return false
}

func (r *Restaurant) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("restaurant id")
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("restaurant email")
	}
	r.email = email
	return nil
}
