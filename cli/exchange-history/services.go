package main

import (
	"net/http"

	"github.com/pbrates/exchange-history/fetchers"
	"github.com/pbrates/exchange-history/services"
)

func createHistoryService(config *Config) services.HistoryService {
	return services.HistoryService{
		Fetcher: fetchers.PrivatBankFetcher{
			URL:    config.URL,
			Client: &http.Client{Timeout: config.Timeout},
		},
	}
}
