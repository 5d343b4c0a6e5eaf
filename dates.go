package exchangehistory

import (
	"errors"
	"time"
)

const (
	// DateFormat is the date layout the PrivatBank archive expects.
	DateFormat = "02.01.2006"

	// MaxOffsetDays bounds how far back the archive is queried in one run.
	MaxOffsetDays = 10
)

var ErrInvalidOffset = errors.New("incorrect offset value, please choose a value from 1 to 10")

// DateRange returns the dates to query, chronological, from today-offset
// through yesterday. Today itself is never included.
func DateRange(today time.Time, offset int) ([]time.Time, error) {
	if offset <= 0 || offset > MaxOffsetDays {
		return nil, ErrInvalidOffset
	}

	dates := make([]time.Time, 0, offset)

	for i := offset; i >= 1; i-- {
		dates = append(dates, today.AddDate(0, 0, -i))
	}

	return dates, nil
}
