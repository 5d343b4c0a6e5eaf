package exchangehistory

// DefaultCurrencies is always part of the active currency set; callers can
// only extend it.
var DefaultCurrencies = []string{"USD", "EUR"}

// FilterCurrencies drops every rate entry whose currency code is neither a
// default nor in the additional list. Codes are compared case-sensitively
// and the original entry order is preserved.
func FilterCurrencies(day ExchangeDay, additional []string) ExchangeDay {
	allowed := make(map[string]struct{}, len(DefaultCurrencies)+len(additional))

	for _, code := range DefaultCurrencies {
		allowed[code] = struct{}{}
	}

	for _, code := range additional {
		allowed[code] = struct{}{}
	}

	filtered := make([]RateEntry, 0, len(allowed))

	for _, entry := range day.ExchangeRate {
		if _, ok := allowed[entry.Currency]; ok {
			filtered = append(filtered, entry)
		}
	}

	day.ExchangeRate = filtered

	return day
}
