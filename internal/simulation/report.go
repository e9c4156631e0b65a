package simulation

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/haydenjns/gamesco-arcade/internal/arcade"
)

var currencyPrinter = message.NewPrinter(language.BritishEnglish)

// pounds renders an amount in minor units as pounds with two decimals.
func pounds(minor int64) string {
	return currencyPrinter.Sprintf("£%.2f", float64(minor)/100)
}

// WriteOutcomes prints one line per replayed record: the success detail, or
// the categorized failure.
func WriteOutcomes(w io.Writer, outcomes []Outcome) error {
	var b strings.Builder

	for _, o := range outcomes {
		if o.Failed() {
			fmt.Fprintf(&b, "FAILED: %v\n", o.Err)

			continue
		}

		fmt.Fprintf(&b, "OK: %s\n", o.Detail)
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write outcomes: %w", err)
	}

	return nil
}

// WriteReport prints the aggregate summary after a replay: richest
// customer, median game price, per-variant game counts, the corporate
// disclaimer, and total revenue.
func (p *Processor) WriteReport(w io.Writer) error {
	a := p.arcade
	counts := a.CountGames()

	var b strings.Builder

	fmt.Fprintf(&b, "===== %s =====\n", a.Name())

	if richest, ok := a.FindRichestCustomer(); ok {
		fmt.Fprintf(&b, "Richest customer: %s (%s) with %s\n", richest.Name(), richest.ID(), pounds(richest.Balance()))
	} else {
		b.WriteString("No customers registered\n")
	}

	fmt.Fprintf(&b, "Median game price: %s\n", pounds(a.MedianGamePrice()))
	fmt.Fprintf(&b, "Cabinet games: %d\n", counts.Cabinet)
	fmt.Fprintf(&b, "Active games: %d\n", counts.Active)
	fmt.Fprintf(&b, "Virtual reality games: %d\n", counts.VirtualReality)
	fmt.Fprintf(&b, "%s\n", arcade.CorporateJargon())
	fmt.Fprintf(&b, "Total revenue: %s\n", pounds(a.Revenue()))

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
