package domain

import "github.com/shopspring/decimal"

// Monetary amounts are decimal.Decimal values stored as NUMERIC(12,2). They
// are rendered as JSON numbers, matching what API clients expect.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
