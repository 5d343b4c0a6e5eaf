package services

import (
	"context"
	"time"

	exchangehistory "github.com/pbrates/exchange-history"
)

// HistoryService runs the whole pipeline: build the date range, then fetch,
// filter and reshape one day at a time, oldest first.
type HistoryService struct {
	Fetcher exchangehistory.Fetcher

	// Now is only overridden in tests; nil means time.Now.
	Now func() time.Time
}

// History returns one reshaped result per date in the range. The first
// failing date aborts the run and its error is returned unchanged; no
// partial results are ever handed back.
func (s HistoryService) History(ctx context.Context, offset int, additionalCurrencies []string) ([]exchangehistory.DayRates, error) {
	now := s.Now

	if now == nil {
		now = time.Now
	}

	dates, err := exchangehistory.DateRange(now(), offset)

	if err != nil {
		return nil, err
	}

	history := make([]exchangehistory.DayRates, 0, len(dates))

	for _, date := range dates {
		day, err := s.Fetcher.Fetch(ctx, date)

		if err != nil {
			return nil, err
		}

		filtered := exchangehistory.FilterCurrencies(day, additionalCurrencies)
		history = append(history, exchangehistory.Reshape(filtered))
	}

	return history, nil
}
