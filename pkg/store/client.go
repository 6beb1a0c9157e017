package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/calsched/calsched/pkg/event"
	log "github.com/sirupsen/logrus"
)

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *ClientImpl {
	return &ClientImpl{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// ListEvents retrieves all records of the event kind.
func (c *ClientImpl) ListEvents(ctx context.Context) ([]event.Event, error) {
	url := fmt.Sprintf("%s/api/songs?type=%s", c.baseURL, resourceType)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to fetch events: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("event store returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var songs []Song
	if err := json.NewDecoder(resp.Body).Decode(&songs); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}

	events := make([]event.Event, 0, len(songs))
	for _, song := range songs {
		events = append(events, song.ToEvent())
	}
	return events, nil
}

// GetEvent retrieves a single record by its store-assigned id.
func (c *ClientImpl) GetEvent(ctx context.Context, id int) (*event.Event, error) {
	url := fmt.Sprintf("%s/api/songs/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to fetch event %d: %v", id, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("event store returned non-OK status for event %d: %d", id, resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var song Song
	if err := json.NewDecoder(resp.Body).Decode(&song); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}

	result := song.ToEvent()
	return &result, nil
}

// CreateEvent sends a creation request and returns the stored record mapped
// back to an event, including its store-assigned id.
func (c *ClientImpl) CreateEvent(ctx context.Context, data SongData) (*event.Event, error) {
	body, err := json.Marshal(NewSong(data))
	if err != nil {
		return nil, fmt.Errorf("failed to encode event payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/songs", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to create event: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err := fmt.Errorf("event store returned non-OK status on create: %d", resp.StatusCode)
		log.Error(err)
		return nil, err
	}

	var song Song
	if err := json.NewDecoder(resp.Body).Decode(&song); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}

	result := song.ToEvent()
	return &result, nil
}
