package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// CheckoutPayload is the one-way handoff from the seat-selection view to the
// checkout view. It is created once, at the moment of proceeding to checkout,
// and travels as query parameters.
type CheckoutPayload struct {
	SeatIDs    []string
	Showtime   Showtime
	MovieTitle string
	Total      decimal.Decimal
	PosterRef  string
}

// Encode flattens the payload into query parameters: seat ids comma-joined,
// the showtime as a JSON object, and the total as fixed two-decimal text.
// Percent-encoding is left to url.Values.
func (p CheckoutPayload) Encode() (url.Values, error) {
	showtime, err := json.Marshal(p.Showtime)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("seats", strings.Join(p.SeatIDs, ","))
	values.Set("showtime", string(showtime))
	values.Set("movie", p.MovieTitle)
	values.Set("total", p.Total.StringFixed(2))
	values.Set("poster", p.PosterRef)

	return values, nil
}

// DecodeCheckoutPayload is the inverse of Encode. It never partially
// succeeds: the result is either a complete payload or ErrMalformedPayload.
// This is the one place in the booking flow where a bad value is a hard
// failure, because the payload gates a purchase.
func DecodeCheckoutPayload(values url.Values) (CheckoutPayload, error) {
	seats := values.Get("seats")
	if seats == "" {
		return CheckoutPayload{}, fmt.Errorf("%w: empty seat list", ErrMalformedPayload)
	}

	var showtime Showtime

	err := json.Unmarshal([]byte(values.Get("showtime")), &showtime)
	if err != nil {
		return CheckoutPayload{}, fmt.Errorf("%w: invalid showtime: %v", ErrMalformedPayload, err)
	}

	total, err := decimal.NewFromString(values.Get("total"))
	if err != nil {
		return CheckoutPayload{}, fmt.Errorf("%w: invalid total: %v", ErrMalformedPayload, err)
	}

	if total.IsNegative() {
		return CheckoutPayload{}, fmt.Errorf("%w: negative total", ErrMalformedPayload)
	}

	return CheckoutPayload{
		SeatIDs:    strings.Split(seats, ","),
		Showtime:   showtime,
		MovieTitle: values.Get("movie"),
		Total:      total,
		PosterRef:  values.Get("poster"),
	}, nil
}
