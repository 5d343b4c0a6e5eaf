package fetchers

import (
	"fmt"
	"time"
)

const (
	// PrivatBankArchiveURL is the public exchange-rate archive endpoint.
	PrivatBankArchiveURL = "https://api.privatbank.ua/p24api/exchange_rates"

	defaultTimeout = 10 * time.Second
)

type (
	// RequestError is returned when the remote service answers with a
	// non-success status.
	RequestError struct {
		URL    string
		Date   string
		Status int
	}

	// ConnectionError is returned when the remote service cannot be
	// reached at all.
	ConnectionError struct {
		URL string
		Err error
	}
)

func (e *RequestError) Error() string {
	return fmt.Sprintf("request status: %d, url: %s, date: %s", e.Status, e.URL, e.Date)
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
