package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"conferencecompanion/internal/domain"
)

type httpFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher returns a fetcher that calls the companion backend's
// schedule feed endpoint.
func NewHTTPFetcher(baseURL string, client *http.Client) domain.FeedFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{baseURL: baseURL, client: client}
}

func (f *httpFetcher) Fetch(ctx context.Context, conferenceCode string) (*domain.RawConferenceFeed, error) {
	url := fmt.Sprintf("%s/conferences/%s/schedule", f.baseURL, conferenceCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule feed returned status: %d", resp.StatusCode)
	}

	var data domain.RawConferenceFeed
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode schedule feed: %w", err)
	}
	if data.ConferenceCode == "" {
		data.ConferenceCode = conferenceCode
	}
	return &data, nil
}
