package exchangehistory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	exchangehistory "github.com/pbrates/exchange-history"
)

func TestDateRange(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	today := time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

	for offset := 1; offset <= exchangehistory.MaxOffsetDays; offset++ {
		dates, err := exchangehistory.DateRange(today, offset)

		asserts.Nil(err)
		asserts.Len(dates, offset)

		for i, date := range dates {
			asserts.True(date.Before(today))
			asserts.Equal(today.AddDate(0, 0, -(offset-i)), date)

			if i > 0 {
				asserts.True(dates[i-1].Before(date))
			}
		}
	}
}

func TestDateRange_InvalidOffset(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	today := time.Now()

	for _, offset := range []int{0, -1, 11, 100} {
		dates, err := exchangehistory.DateRange(today, offset)

		asserts.Nil(dates)
		asserts.True(errors.Is(err, exchangehistory.ErrInvalidOffset))
	}
}
