package exchangehistory

import "github.com/shopspring/decimal"

// Reshape converts a filtered day into a single-entry mapping keyed by the
// response's own date string. Rates the source omits become "unknown".
func Reshape(day ExchangeDay) DayRates {
	rates := make(map[string]RatePair, len(day.ExchangeRate))

	for _, entry := range day.ExchangeRate {
		rates[entry.Currency] = RatePair{
			Sale:     rateOrUnknown(entry.SaleRate),
			Purchase: rateOrUnknown(entry.PurchaseRate),
		}
	}

	return DayRates{day.Date: rates}
}

func rateOrUnknown(value *decimal.Decimal) Rate {
	if value == nil {
		return Rate{}
	}

	return Rate{Value: *value, Known: true}
}
