package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/haydenjns/gamesco-arcade/internal/arcade"
	"github.com/haydenjns/gamesco-arcade/internal/customers"
	"github.com/haydenjns/gamesco-arcade/internal/games"
)

// Outcome is the result of replaying one record. A failed record never
// aborts the batch; its categorized error is carried here instead.
type Outcome struct {
	Record []string
	Detail string
	Err    error
}

func (o Outcome) Failed() bool { return o.Err != nil }

// Processor replays record streams against an arcade. Call LoadGames, then
// LoadCustomers, then Replay; transactions assume a populated registry.
type Processor struct {
	arcade *arcade.Arcade
}

func NewProcessor(a *arcade.Arcade) *Processor {
	return &Processor{arcade: a}
}

// Arcade exposes the registry the processor replays into.
func (p *Processor) Arcade() *arcade.Arcade { return p.arcade }

// LoadGames constructs and registers a game per record. Records with an
// unrecognized type tag are skipped with a log line and produce no outcome.
func (p *Processor) LoadGames(records [][]string) []Outcome {
	outcomes := make([]Outcome, 0, len(records))

	for _, record := range records {
		if len(record) < 3 {
			outcomes = append(outcomes, Outcome{
				Record: record,
				Err:    fmt.Errorf("%w: game record needs at least 3 fields, got %d", ErrMalformedRecord, len(record)),
			})

			continue
		}

		typeTag := strings.ToUpper(strings.TrimSpace(record[2]))
		if typeTag != string(games.KindCabinet) && typeTag != string(games.KindActive) && typeTag != string(games.KindVirtualReality) {
			slog.Warn("skipping game record with unrecognized type", "type", record[2], "id", record[0])

			continue
		}

		game, err := p.buildGame(games.Kind(typeTag), record)
		if err != nil {
			outcomes = append(outcomes, Outcome{Record: record, Err: err})

			continue
		}

		err = p.arcade.AddGame(game)
		if err != nil {
			outcomes = append(outcomes, Outcome{Record: record, Err: err})

			continue
		}

		outcomes = append(outcomes, Outcome{
			Record: record,
			Detail: fmt.Sprintf("registered %s game %s (%s)", strings.ToLower(typeTag), game.ID(), game.Name()),
		})
	}

	return outcomes
}

// buildGame dispatches on the record's type tag and constructs the matching
// variant from the remaining fields.
func (p *Processor) buildGame(kind games.Kind, record []string) (games.Game, error) {
	id, name := strings.TrimSpace(record[0]), record[1]

	switch kind {
	case games.KindCabinet:
		if len(record) != 5 {
			return nil, fmt.Errorf("%w: cabinet game record needs 5 fields, got %d", ErrMalformedRecord, len(record))
		}

		price, err := parsePrice(record[3])
		if err != nil {
			return nil, err
		}

		hasRewardPayout, err := strconv.ParseBool(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("%w: reward payout flag %q is not a bool", ErrMalformedRecord, record[4])
		}

		return games.NewCabinet(id, name, price, hasRewardPayout)

	case games.KindActive:
		if len(record) != 5 {
			return nil, fmt.Errorf("%w: active game record needs 5 fields, got %d", ErrMalformedRecord, len(record))
		}

		price, err := parsePrice(record[3])
		if err != nil {
			return nil, err
		}

		minAge, err := parseInt(record[4])
		if err != nil {
			return nil, err
		}

		return games.NewActive(id, name, price, minAge)

	default: // virtual reality
		if len(record) != 6 {
			return nil, fmt.Errorf("%w: virtual reality game record needs 6 fields, got %d", ErrMalformedRecord, len(record))
		}

		price, err := parsePrice(record[3])
		if err != nil {
			return nil, err
		}

		minAge, err := parseInt(record[4])
		if err != nil {
			return nil, err
		}

		equipment, err := games.ParseEquipmentType(record[5])
		if err != nil {
			return nil, err
		}

		return games.NewVirtualReality(id, name, price, minAge, equipment)
	}
}

// LoadCustomers constructs and registers a customer per record. The
// trailing discount tag is optional; blank or absent means no discount.
func (p *Processor) LoadCustomers(records [][]string) []Outcome {
	outcomes := make([]Outcome, 0, len(records))

	for _, record := range records {
		outcome := Outcome{Record: record}

		c, err := p.buildCustomer(record)
		if err == nil {
			err = p.arcade.AddCustomer(c)
		}

		if err != nil {
			outcome.Err = err
		} else {
			outcome.Detail = fmt.Sprintf("registered customer %s (%s)", c.ID(), c.Name())
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (p *Processor) buildCustomer(record []string) (*customers.Customer, error) {
	if len(record) != 4 && len(record) != 5 {
		return nil, fmt.Errorf("%w: customer record needs 4 or 5 fields, got %d", ErrMalformedRecord, len(record))
	}

	balance, err := parseAmount(record[2])
	if err != nil {
		return nil, err
	}

	age, err := parseInt(record[3])
	if err != nil {
		return nil, err
	}

	discount := customers.DiscountNone
	if len(record) == 5 {
		discount, err = customers.ParseDiscountType(record[4])
		if err != nil {
			return nil, err
		}
	}

	return customers.NewWithBalance(strings.TrimSpace(record[0]), record[1], age, discount, balance)
}

// Replay runs the transaction records against the arcade in file order.
// Individual failures are reported in their outcome and never abort the
// batch. A canceled context stops the replay after the current record,
// leaving the arcade consistent for reporting.
func (p *Processor) Replay(ctx context.Context, records [][]string) []Outcome {
	outcomes := make([]Outcome, 0, len(records))

	for _, record := range records {
		if ctx.Err() != nil {
			slog.Warn("replay interrupted", "remaining", len(records)-len(outcomes))

			break
		}

		outcome := Outcome{Record: record}
		outcome.Detail, outcome.Err = p.replayOne(record)
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

func (p *Processor) replayOne(record []string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(record[0])) {
	case "NEW_CUSTOMER":
		return p.replayNewCustomer(record)
	case "ADD_FUNDS":
		return p.replayAddFunds(record)
	case "PLAY":
		return p.replayPlay(record)
	default:
		return "", fmt.Errorf("%w: invalid transaction type %q", ErrMalformedRecord, record[0])
	}
}

// replayNewCustomer parses NEW_CUSTOMER,id,name[,discountTag],balance,age.
// The field count decides whether the discount tag is present.
func (p *Processor) replayNewCustomer(record []string) (string, error) {
	if len(record) != 5 && len(record) != 6 {
		return "", fmt.Errorf("%w: NEW_CUSTOMER record needs 5 or 6 fields, got %d", ErrMalformedRecord, len(record))
	}

	discount := customers.DiscountNone
	rest := record[3:]

	if len(record) == 6 {
		var err error

		discount, err = customers.ParseDiscountType(record[3])
		if err != nil {
			return "", err
		}

		rest = record[4:]
	}

	balance, err := parseAmount(rest[0])
	if err != nil {
		return "", err
	}

	age, err := parseInt(rest[1])
	if err != nil {
		return "", err
	}

	c, err := customers.NewWithBalance(strings.TrimSpace(record[1]), record[2], age, discount, balance)
	if err != nil {
		return "", err
	}

	err = p.arcade.AddCustomer(c)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("registered customer %s (%s)", c.ID(), c.Name()), nil
}

func (p *Processor) replayAddFunds(record []string) (string, error) {
	if len(record) != 3 {
		return "", fmt.Errorf("%w: ADD_FUNDS record needs 3 fields, got %d", ErrMalformedRecord, len(record))
	}

	amount, err := parseAmount(record[2])
	if err != nil {
		return "", err
	}

	customerID := strings.TrimSpace(record[1])

	err = p.arcade.AddFunds(customerID, amount)
	if err != nil {
		return "", err
	}

	if amount <= 0 {
		return fmt.Sprintf("ignored non-positive top-up of %s for customer %s", pounds(amount), customerID), nil
	}

	return fmt.Sprintf("credited customer %s with %s", customerID, pounds(amount)), nil
}

func (p *Processor) replayPlay(record []string) (string, error) {
	if len(record) != 4 {
		return "", fmt.Errorf("%w: PLAY record needs 4 fields, got %d", ErrMalformedRecord, len(record))
	}

	customerID := strings.TrimSpace(record[1])
	gameID := strings.TrimSpace(record[2])
	peak := strings.EqualFold(strings.TrimSpace(record[3]), "PEAK")

	amount, err := p.arcade.ProcessTransaction(customerID, gameID, peak)
	if err != nil {
		return "", err
	}

	rate := "off-peak"
	if peak {
		rate = "peak"
	}

	return fmt.Sprintf("customer %s played game %s (%s) for %s", customerID, gameID, rate, pounds(amount)), nil
}

// parseAmount reads a signed amount in minor units.
func parseAmount(field string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not an integer", ErrMalformedRecord, field)
	}

	return amount, nil
}

// parsePrice reads a list price in minor units, which must not be negative.
func parsePrice(field string) (int64, error) {
	price, err := parseAmount(field)
	if err != nil {
		return 0, err
	}

	if price < 0 {
		return 0, fmt.Errorf("%w: price %q must not be negative", ErrMalformedRecord, field)
	}

	return price, nil
}

func parseInt(field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedRecord, field)
	}

	return n, nil
}
