package offerstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
)

// Client клиент внешнего сервиса офферов (источник таймслотов и бронирований)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTimeslots получает таймслоты оффера
func (c *Client) GetTimeslots(ctx context.Context, offerID int64) ([]availability.TimeslotInput, error) {
	endpoint := fmt.Sprintf("%s/offers/%d/timeslots", c.baseURL, offerID)

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	timeslots := make([]availability.TimeslotInput, 0)
	if isJSONArray(raw) {
		err = decode(raw, &timeslots)
	} else {
		var env timeslotsEnvelope
		err = decode(raw, &env)
		if env.Timeslots != nil {
			timeslots = env.Timeslots
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode timeslots: %v", ErrInvalidResponse, err)
	}

	c.log.Info("OfferStore: fetched %d timeslots for offer_id=%d", len(timeslots), offerID)
	return timeslots, nil
}

// GetBookings получает бронирования оффера в полуинтервале [from, to)
func (c *Client) GetBookings(ctx context.Context, offerID int64, from, to time.Time) ([]availability.BookingInput, error) {
	query := url.Values{}
	query.Set("from", from.UTC().Format(time.RFC3339))
	query.Set("to", to.UTC().Format(time.RFC3339))
	endpoint := fmt.Sprintf("%s/offers/%d/bookings?%s", c.baseURL, offerID, query.Encode())

	raw, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	bookings := make([]availability.BookingInput, 0)
	if isJSONArray(raw) {
		err = decode(raw, &bookings)
	} else {
		var env bookingsEnvelope
		err = decode(raw, &env)
		if env.Bookings != nil {
			bookings = env.Bookings
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	c.log.Info("OfferStore: fetched %d bookings for offer_id=%d", len(bookings), offerID)
	return bookings, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrOfferNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	return body, nil
}

// decode сохраняет числа как json.Number, чтобы движок сам решил, целые ли они
func decode(raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
