// Package customers holds the arcade's customer ledger entity: an id-keyed
// account with a balance in minor currency units, a discount tier, and the
// charging rules applied when a customer plays a game.
package customers

import (
	"errors"
	"fmt"

	"github.com/haydenjns/gamesco-arcade/internal/games"
)

var (
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrAgeRestriction    = errors.New("age restriction")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

const idLength = 6

// studentOverdraftFloor is the lowest balance a STUDENT charge may leave
// behind. Everyone else bottoms out at zero.
const studentOverdraftFloor = -500

// Customer is a registered account. Identity, name, age and discount tier
// are immutable; only the balance changes, and only through AddFunds and
// ChargeAccount.
type Customer struct {
	id       string
	name     string
	age      int
	discount DiscountType
	balance  int64
}

// New constructs a customer with a zero opening balance.
func New(id, name string, age int, discount DiscountType) (*Customer, error) {
	return NewWithBalance(id, name, age, discount, 0)
}

// NewWithBalance constructs a customer with the given opening balance in
// minor units. Negative opening balances are rejected; only charging may
// take a balance below zero.
func NewWithBalance(id, name string, age int, discount DiscountType, balance int64) (*Customer, error) {
	err := validateID(id)
	if err != nil {
		return nil, err
	}

	if balance < 0 {
		return nil, fmt.Errorf("%w: opening balance %d must not be negative", ErrInvalidCustomerID, balance)
	}

	return &Customer{
		id:       id,
		name:     name,
		age:      age,
		discount: discount,
		balance:  balance,
	}, nil
}

func (c *Customer) ID() string             { return c.id }
func (c *Customer) Name() string           { return c.name }
func (c *Customer) Age() int               { return c.age }
func (c *Customer) Discount() DiscountType { return c.discount }
func (c *Customer) Balance() int64         { return c.balance }

// AddFunds credits the balance. Non-positive amounts are ignored.
func (c *Customer) AddFunds(amount int64) {
	if amount > 0 {
		c.balance += amount
	}
}

// ChargeAccount charges the customer for one play of the game and returns
// the amount actually debited in minor units.
//
// The check order matters: the age restriction is enforced before any
// pricing, so an underage customer is rejected without a balance effect
// regardless of funds. Off-peak plays stack the customer's tier discount on
// top of the game's own off-peak price. STUDENT customers may overdraw down
// to -500 on peak and off-peak plays alike; the balance is untouched on any
// failure.
func (c *Customer) ChargeAccount(g games.Game, peak bool) (int64, error) {
	if restricted, ok := g.(games.AgeRestricted); ok {
		if c.age < restricted.MinAge() {
			return 0, fmt.Errorf("%w: customer %s is under the minimum age %d for game %s",
				ErrAgeRestriction, c.id, restricted.MinAge(), g.ID())
		}
	}

	price := g.CalculatePrice(peak)

	var overdraftFloor int64

	if !peak {
		switch c.discount {
		case DiscountStaff:
			price = price * 9 / 10
		case DiscountStudent:
			price = price * 95 / 100
			overdraftFloor = studentOverdraftFloor
		}
	} else if c.discount == DiscountStudent {
		overdraftFloor = studentOverdraftFloor
	}

	if c.balance-price < overdraftFloor {
		return 0, fmt.Errorf("%w: balance %d cannot cover charge of %d for game %s",
			ErrInsufficientFunds, c.balance, price, g.ID())
	}

	c.balance -= price

	return price, nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("CustomerID = %s, Name = %s, Age = %d, Discount Type = %s, Balance = £%.2f",
		c.id, c.name, c.age, c.discount, float64(c.balance)/100)
}

// validateID enforces the customer id rule: exactly 6 alphanumeric
// characters.
func validateID(id string) error {
	if len(id) != idLength || !isAlphanumeric(id) {
		return fmt.Errorf("%w: %q must be exactly %d alphanumeric characters", ErrInvalidCustomerID, id, idLength)
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
