package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	exchangehistory "github.com/pbrates/exchange-history"
)

// PrivatBankFetcher retrieves one archive day per call. The zero value
// talks to the production endpoint with a default client; both fields can
// be overridden for configuration and tests.
type PrivatBankFetcher struct {
	URL    string
	Client *http.Client
}

func (f PrivatBankFetcher) Fetch(ctx context.Context, date time.Time) (exchangehistory.ExchangeDay, error) {
	url := f.URL

	if url == "" {
		url = PrivatBankArchiveURL
	}

	client := f.Client

	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return exchangehistory.ExchangeDay{}, err
	}

	req.Header.Add("Accept", "application/json")

	formattedDate := date.Format(exchangehistory.DateFormat)

	q := req.URL.Query()
	q.Add("date", formattedDate)
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)

	if err != nil {
		return exchangehistory.ExchangeDay{}, &ConnectionError{URL: url, Err: err}
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return exchangehistory.ExchangeDay{}, &RequestError{URL: url, Date: formattedDate, Status: res.StatusCode}
	}

	body, err := ioutil.ReadAll(res.Body)

	if err != nil {
		return exchangehistory.ExchangeDay{}, &ConnectionError{URL: url, Err: err}
	}

	var day exchangehistory.ExchangeDay

	if err := json.Unmarshal(body, &day); err != nil {
		return exchangehistory.ExchangeDay{}, fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return day, nil
}
