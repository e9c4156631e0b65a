// Package games holds the arcade's game catalogue entities: a closed set of
// game variants, each carrying an immutable identity, a list price in minor
// currency units, and its own peak/off-peak pricing rule.
package games

import (
	"errors"
	"fmt"
)

var ErrInvalidGameID = errors.New("invalid game id")

// Kind discriminates the concrete game variant. Counting and classification
// must use Kind rather than type assertions, so a VirtualReality game is
// never tallied as Active.
type Kind string

const (
	KindCabinet        Kind = "CABINET"
	KindActive         Kind = "ACTIVE"
	KindVirtualReality Kind = "VIRTUALREALITY"
)

// Game is a registered arcade game. Implementations are immutable after
// construction.
type Game interface {
	ID() string
	Name() string
	// ListPrice is the undiscounted price in minor units (pence).
	ListPrice() int64
	Kind() Kind
	// CalculatePrice returns the price for one play in minor units. Peak
	// plays always cost the full list price; off-peak discounts depend on
	// the variant. Fractions truncate toward zero.
	CalculatePrice(peak bool) int64
}

// AgeRestricted is implemented by variants that enforce a minimum player
// age (the Active family).
type AgeRestricted interface {
	MinAge() int
}

// game carries the fields shared by every variant.
type game struct {
	id    string
	name  string
	price int64
}

func (g game) ID() string       { return g.id }
func (g game) Name() string     { return g.name }
func (g game) ListPrice() int64 { return g.price }

// Cabinet is a classic coin-op cabinet. Cabinets with a reward payout keep
// a higher off-peak price than plain ones.
type Cabinet struct {
	game
	hasRewardPayout bool
}

func NewCabinet(id, name string, price int64, hasRewardPayout bool) (*Cabinet, error) {
	err := validateCabinetID(id)
	if err != nil {
		return nil, err
	}

	return &Cabinet{
		game:            game{id: id, name: name, price: price},
		hasRewardPayout: hasRewardPayout,
	}, nil
}

func (c *Cabinet) Kind() Kind            { return KindCabinet }
func (c *Cabinet) HasRewardPayout() bool { return c.hasRewardPayout }

func (c *Cabinet) CalculatePrice(peak bool) int64 {
	if peak {
		return c.price
	}

	if c.hasRewardPayout {
		return c.price * 8 / 10
	}

	return c.price * 5 / 10
}

// Active is a physical game (dance machines, basketball hoops) with a
// minimum player age.
type Active struct {
	game
	minAge int
}

func NewActive(id, name string, price int64, minAge int) (*Active, error) {
	err := validateActiveID(id)
	if err != nil {
		return nil, err
	}

	return &Active{
		game:   game{id: id, name: name, price: price},
		minAge: minAge,
	}, nil
}

func (a *Active) Kind() Kind  { return KindActive }
func (a *Active) MinAge() int { return a.minAge }

func (a *Active) CalculatePrice(peak bool) int64 {
	if peak {
		return a.price
	}

	return a.price * 8 / 10
}

// VirtualReality is an active game played through VR equipment. It keeps the
// Active family's age restriction but replaces its off-peak pricing with an
// equipment-dependent discount.
type VirtualReality struct {
	game
	minAge    int
	equipment EquipmentType
}

func NewVirtualReality(id, name string, price int64, minAge int, equipment EquipmentType) (*VirtualReality, error) {
	err := validateVirtualRealityID(id)
	if err != nil {
		return nil, err
	}

	return &VirtualReality{
		game:      game{id: id, name: name, price: price},
		minAge:    minAge,
		equipment: equipment,
	}, nil
}

func (v *VirtualReality) Kind() Kind               { return KindVirtualReality }
func (v *VirtualReality) MinAge() int              { return v.minAge }
func (v *VirtualReality) Equipment() EquipmentType { return v.equipment }

func (v *VirtualReality) CalculatePrice(peak bool) int64 {
	if peak {
		return v.price
	}

	switch v.equipment {
	case EquipmentHeadsetOnly:
		return v.price * 9 / 10
	case EquipmentHeadsetAndControllers:
		return v.price * 95 / 100
	default: // full body tracking keeps the list price
		return v.price
	}
}

const idLength = 10

// validateID enforces the base rule shared by every variant: exactly 10
// alphanumeric characters.
func validateID(id string) error {
	if len(id) != idLength || !isAlphanumeric(id) {
		return fmt.Errorf("%w: %q must be exactly %d alphanumeric characters", ErrInvalidGameID, id, idLength)
	}

	return nil
}

func validateCabinetID(id string) error {
	err := validateID(id)
	if err != nil {
		return err
	}

	if id[0] != 'C' {
		return fmt.Errorf("%w: cabinet game id %q must start with %q", ErrInvalidGameID, id, "C")
	}

	return nil
}

func validateActiveID(id string) error {
	err := validateID(id)
	if err != nil {
		return err
	}

	if id[0] != 'A' {
		return fmt.Errorf("%w: active game id %q must start with %q", ErrInvalidGameID, id, "A")
	}

	return nil
}

// validateVirtualRealityID layers the "AV" prefix rule on top of the Active
// family's "A" rule.
func validateVirtualRealityID(id string) error {
	err := validateActiveID(id)
	if err != nil {
		return err
	}

	if len(id) < 2 || id[:2] != "AV" {
		return fmt.Errorf("%w: virtual reality game id %q must start with %q", ErrInvalidGameID, id, "AV")
	}

	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}

	return true
}
