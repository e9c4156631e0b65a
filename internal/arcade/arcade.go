// Package arcade is the registry of games and customer accounts and the
// orchestrator of play transactions. It enforces id uniqueness, accumulates
// revenue from successful charges, and answers aggregate queries over the
// registry.
package arcade

import (
	"fmt"
	"slices"

	"github.com/haydenjns/gamesco-arcade/internal/customers"
	"github.com/haydenjns/gamesco-arcade/internal/games"
)

const corporateJargon = "GamesCo does not take responsibility for any accidents or fits of rage that occur on the premises"

// Arcade owns every registered game and customer for the life of the
// process. It assumes a single caller; see the simulation driver.
type Arcade struct {
	name    string
	revenue int64

	games     map[string]games.Game
	gameOrder []string

	customers     map[string]*customers.Customer
	customerOrder []string
}

func New(name string) *Arcade {
	return &Arcade{
		name:      name,
		games:     make(map[string]games.Game),
		customers: make(map[string]*customers.Customer),
	}
}

func (a *Arcade) Name() string { return a.name }

// Revenue is the accumulated sum of all successful charges in minor units.
func (a *Arcade) Revenue() int64 { return a.revenue }

// AddCustomer registers a customer, enforcing id uniqueness.
func (a *Arcade) AddCustomer(c *customers.Customer) error {
	if _, ok := a.customers[c.ID()]; ok {
		return fmt.Errorf("%w: customer id %q already registered", customers.ErrInvalidCustomerID, c.ID())
	}

	a.customers[c.ID()] = c
	a.customerOrder = append(a.customerOrder, c.ID())

	return nil
}

// AddGame registers a game, enforcing id uniqueness.
func (a *Arcade) AddGame(g games.Game) error {
	if _, ok := a.games[g.ID()]; ok {
		return fmt.Errorf("%w: game id %q already registered", games.ErrInvalidGameID, g.ID())
	}

	a.games[g.ID()] = g
	a.gameOrder = append(a.gameOrder, g.ID())

	return nil
}

// Customer returns the registered customer with the given id. The arcade
// retains ownership of the returned value.
func (a *Arcade) Customer(id string) (*customers.Customer, error) {
	c, ok := a.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer id %q not registered", customers.ErrInvalidCustomerID, id)
	}

	return c, nil
}

// Game returns the registered game with the given id.
func (a *Arcade) Game(id string) (games.Game, error) {
	g, ok := a.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %q not registered", games.ErrInvalidGameID, id)
	}

	return g, nil
}

// AddFunds credits a registered customer's balance. Non-positive amounts
// are ignored.
func (a *Arcade) AddFunds(customerID string, amount int64) error {
	c, err := a.Customer(customerID)
	if err != nil {
		return err
	}

	c.AddFunds(amount)

	return nil
}

// ProcessTransaction charges the customer for one play of the game and
// returns the amount charged in minor units. Revenue grows only when the
// charge succeeds; every failure path (unknown ids, age restriction,
// insufficient funds) propagates the underlying error with no revenue or
// balance effect.
func (a *Arcade) ProcessTransaction(customerID, gameID string, peak bool) (int64, error) {
	c, err := a.Customer(customerID)
	if err != nil {
		return 0, fmt.Errorf("resolve customer: %w", err)
	}

	g, err := a.Game(gameID)
	if err != nil {
		return 0, fmt.Errorf("resolve game: %w", err)
	}

	amount, err := c.ChargeAccount(g, peak)
	if err != nil {
		return 0, fmt.Errorf("charge account: %w", err)
	}

	a.revenue += amount

	return amount, nil
}

// FindRichestCustomer returns the customer with the strictly greatest
// balance, or false when no customers are registered. Customers are scanned
// in registration order with a strict greater-than replacement rule, so the
// first-registered customer wins ties.
func (a *Arcade) FindRichestCustomer() (*customers.Customer, bool) {
	var richest *customers.Customer

	for _, id := range a.customerOrder {
		c := a.customers[id]
		if richest == nil || c.Balance() > richest.Balance() {
			richest = c
		}
	}

	if richest == nil {
		return nil, false
	}

	return richest, true
}

// MedianGamePrice returns the median of all registered games' list prices
// in minor units, or 0 with no games. An even count takes the floor of the
// two middle prices' mean.
func (a *Arcade) MedianGamePrice() int64 {
	if len(a.games) == 0 {
		return 0
	}

	prices := make([]int64, 0, len(a.games))
	for _, g := range a.games {
		prices = append(prices, g.ListPrice())
	}

	slices.Sort(prices)

	mid := len(prices) / 2
	if len(prices)%2 == 1 {
		return prices[mid]
	}

	return (prices[mid-1] + prices[mid]) / 2
}

// GameCounts holds the per-variant game tally.
type GameCounts struct {
	Cabinet        int
	Active         int
	VirtualReality int
}

// CountGames tallies registered games by their exact variant. A
// VirtualReality game counts only as VirtualReality, never as Active.
func (a *Arcade) CountGames() GameCounts {
	var counts GameCounts

	for _, g := range a.games {
		switch g.Kind() {
		case games.KindVirtualReality:
			counts.VirtualReality++
		case games.KindActive:
			counts.Active++
		case games.KindCabinet:
			counts.Cabinet++
		}
	}

	return counts
}

// CorporateJargon returns the fixed liability disclaimer. Printing it is
// the caller's business.
func CorporateJargon() string {
	return corporateJargon
}
