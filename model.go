package exchangehistory

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const unknownRate = "unknown"

type (
	// RateEntry is a single currency quotation for one date as returned
	// by the PrivatBank archive. The National Bank rates are always
	// present, the bank's own sale/purchase rates are not.
	RateEntry struct {
		BaseCurrency   string           `json:"baseCurrency"`
		Currency       string           `json:"currency"`
		SaleRateNB     decimal.Decimal  `json:"saleRateNB"`
		PurchaseRateNB decimal.Decimal  `json:"purchaseRateNB"`
		SaleRate       *decimal.Decimal `json:"saleRate,omitempty"`
		PurchaseRate   *decimal.Decimal `json:"purchaseRate,omitempty"`
	}

	// ExchangeDay is the archive response document for one date.
	ExchangeDay struct {
		Date            string      `json:"date"`
		Bank            string      `json:"bank"`
		BaseCurrency    int         `json:"baseCurrency"`
		BaseCurrencyLit string      `json:"baseCurrencyLit"`
		ExchangeRate    []RateEntry `json:"exchangeRate"`
	}

	// Rate is a quotation value that may be absent in the source data.
	// A missing rate marshals as the string "unknown".
	Rate struct {
		Value decimal.Decimal
		Known bool
	}

	RatePair struct {
		Sale     Rate `json:"sale"`
		Purchase Rate `json:"purchase"`
	}

	// DayRates maps one date string to the rates of its surviving
	// currencies.
	DayRates map[string]map[string]RatePair
)

func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Known {
		return json.Marshal(unknownRate)
	}

	return []byte(r.Value.String()), nil
}
