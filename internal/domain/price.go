package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetPrice is one adjusted close observation as returned by a price
// provider
type AssetPrice struct {
	Symbol string
	Price  decimal.Decimal
	Date   time.Time
}
