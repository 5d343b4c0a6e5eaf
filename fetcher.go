package exchangehistory

import (
	"context"
	"time"
)

type (
	Fetcher interface {
		Fetch(ctx context.Context, date time.Time) (ExchangeDay, error)
	}
)
