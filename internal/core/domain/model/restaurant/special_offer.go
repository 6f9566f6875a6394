package restaurant

import (
	"errors"

	"gruberoo/internal/pkg/errs"
	"gruberoo/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrSpecialOfferIsNotConstructed is returned when using a SpecialOffer that
// was not created via NewSpecialOffer or RestoreSpecialOffer.
var ErrSpecialOfferIsNotConstructed = errors.New(
	"SpecialOffer must be created via NewSpecialOffer or RestoreSpecialOffer constructor",
)

// SpecialOffer is reference data describing a promotion a restaurant runs.
// Orders may record the id of the offer that was applied to them; the offer
// itself is owned by the restaurant.
type SpecialOffer struct {
	id              uuid.UUID
	name            string
	discountPercent int

	guard guard.ConstructorGuard
}

// NewSpecialOffer creates an offer with a fresh identity.
// The discount must be between 0 and 100 percent.
func NewSpecialOffer(name string, discountPercent int) (*SpecialOffer, error) {
	return RestoreSpecialOffer(uuid.New(), name, discountPercent)
}

// RestoreSpecialOffer reconstructs an offer with a known identity, used when
// loading reference data from storage.
func RestoreSpecialOffer(id uuid.UUID, name string, discountPercent int) (*SpecialOffer, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("offer name")
	}
	if discountPercent < 0 || discountPercent > 100 {
		return nil, errs.NewValueIsOutOfRangeError("discount percent", discountPercent, 0, 100)
	}

	return &SpecialOffer{
		id:              id,
		name:            name,
		discountPercent: discountPercent,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the SpecialOffer was created through a constructor.
func (s *SpecialOffer) Validate() error {
	if s == nil {
		return ErrSpecialOfferIsNotConstructed
	}
	return s.guard.Validate(ErrSpecialOfferIsNotConstructed)
}

// ID returns the offer's identity.
func (s *SpecialOffer) ID() uuid.UUID {
	return s.id
}

// Name returns the offer's display name.
func (s *SpecialOffer) Name() string {
	return s.name
}

// DiscountPercent returns the advertised discount in whole percent.
func (s *SpecialOffer) DiscountPercent() int {
	return s.discountPercent
}
