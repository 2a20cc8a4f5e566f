package services

import (
	"strings"

	"github.com/nordvik/inkwell/internal/models"
	"github.com/shopspring/decimal"
)

// ParseDuration parses a submitted duration value and enforces the
// 0.01..1.00 fraction-of-a-day range for non-leave entries.
func ParseDuration(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidDuration
	}
	if value.LessThan(models.MinEntryDuration) || value.GreaterThan(models.FullDayDuration) {
		return decimal.Zero, ErrInvalidDuration
	}
	return value, nil
}
