// Package payment charges credit cards. Cards are validated locally;
// a successful charge yields a fresh transaction id.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
	"github.com/RaikyD/storefront-checkout/internal/money"
)

var (
	ErrInvalidCard = errors.New("invalid credit card")
	ErrCardExpired = errors.New("credit card expired")
)

// Processor validates and charges cards. Stateless and safe for
// concurrent use.
type Processor struct {
	now func() time.Time
}

func NewProcessor() *Processor {
	return &Processor{now: time.Now}
}

// Charge validates the card and charges the amount, returning a
// transaction id. Card details are never logged beyond the last four
// digits.
func (p *Processor) Charge(ctx context.Context, amount money.Money, card domain.CreditCardInfo) (string, error) {
	if err := validateCard(card, p.now()); err != nil {
		return "", err
	}

	txID := uuid.NewString()
	logger.Info("card charged",
		"transaction_id", txID,
		"amount", amount.String(),
		"card_last4", card.LastFour(),
	)
	return txID, nil
}

func validateCard(card domain.CreditCardInfo, now time.Time) error {
	digits := 0
	for _, r := range card.Number {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return fmt.Errorf("%w: malformed number", ErrInvalidCard)
		}
	}
	if digits < 12 || digits > 19 {
		return fmt.Errorf("%w: malformed number", ErrInvalidCard)
	}
	if card.ExpirationMonth < 1 || card.ExpirationMonth > 12 {
		return fmt.Errorf("%w: bad expiration month", ErrInvalidCard)
	}

	// a card is valid through the end of its expiration month
	year, month := now.Year(), int32(now.Month())
	if card.ExpirationYear < int32(year) ||
		(card.ExpirationYear == int32(year) && card.ExpirationMonth < month) {
		return fmt.Errorf("%w: %d/%d", ErrCardExpired, card.ExpirationMonth, card.ExpirationYear)
	}
	return nil
}
