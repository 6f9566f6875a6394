package inmem

import (
	"context"
	"sort"

	"gruberoo/internal/core/domain/model/customer"
	"gruberoo/internal/pkg/errs"
)

// CustomerRepository is the in-memory ports.CustomerRepository.
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository creates a customer repository over the given store.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// Add persists a new customer. Fails when the email is already registered.
func (r *CustomerRepository) Add(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[aggregate.Email()]; exists {
		return errs.NewValueIsInvalidError("customer email")
	}

	r.store.customers[aggregate.Email()] = aggregate
	return nil
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(_ context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.customers[aggregate.Email()]; !exists {
		return errs.NewObjectNotFoundError("customer", aggregate.Email())
	}

	r.store.customers[aggregate.Email()] = aggregate
	return nil
}

// Get retrieves a customer by email.
func (r *CustomerRepository) Get(_ context.Context, email string) (*customer.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	cust, exists := r.store.customers[email]
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", email)
	}

	return cust, nil
}

// GetAll retrieves every customer ordered by email ascending.
func (r *CustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customers := make([]*customer.Customer, 0, len(r.store.customers))
	for _, cust := range r.store.customers {
		customers = append(customers, cust)
	}

	sort.Slice(customers, func(i, j int) bool { return customers[i].Email() < customers[j].Email() })
	return customers, nil
}
