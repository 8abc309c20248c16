package domain

import (
	"encoding/json"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPricePerSeat is the flat ticket price of the original front end.
var DefaultPricePerSeat = decimal.New(850, -2)

// Selection is the seat-selection state for one chosen showtime. It is owned
// by exactly one session: created when a showtime is picked, mutated only by
// Toggle, and discarded when the showtime changes, the session abandons it,
// or checkout is dispatched. It is not safe for concurrent use and doesn't
// need to be.
type Selection struct {
	ID           string
	MovieID      string
	MovieTitle   string
	PosterURL    string
	Showtime     Showtime
	PricePerSeat decimal.Decimal

	// MaxSeats caps the number of seats per booking. Zero means unbounded,
	// which matches the original behavior.
	MaxSeats int

	seatIDs []string
	seatSet mapset.Set[string]
}

func NewSelection(movieID, movieTitle, posterURL string, showtime Showtime, pricePerSeat decimal.Decimal, maxSeats int) *Selection {
	return &Selection{
		ID:           uuid.New().String(),
		MovieID:      movieID,
		MovieTitle:   movieTitle,
		PosterURL:    posterURL,
		Showtime:     showtime,
		PricePerSeat: pricePerSeat,
		MaxSeats:     maxSeats,
		seatSet:      mapset.NewThreadUnsafeSet[string](),
	}
}

// Toggle flips the membership of a seat. Toggling an unavailable seat is a
// no-op, not an error. Adding a seat beyond MaxSeats returns
// ErrSelectionFull; removal is always allowed.
func (s *Selection) Toggle(seat Seat) error {
	if !seat.Available {
		return nil
	}

	if s.seatSet.Contains(seat.ID) {
		s.seatSet.Remove(seat.ID)
		s.seatIDs = removeID(s.seatIDs, seat.ID)

		return nil
	}

	if s.MaxSeats > 0 && len(s.seatIDs) >= s.MaxSeats {
		return ErrSelectionFull
	}

	s.seatSet.Add(seat.ID)
	s.seatIDs = append(s.seatIDs, seat.ID)

	return nil
}

// SeatIDs returns the selected seat ids in insertion order.
func (s *Selection) SeatIDs() []string {
	ids := make([]string, len(s.seatIDs))
	copy(ids, s.seatIDs)

	return ids
}

func (s *Selection) Contains(seatID string) bool {
	return s.seatSet.Contains(seatID)
}

func (s *Selection) Count() int {
	return len(s.seatIDs)
}

// Total is seat count times price per seat. The result carries full decimal
// precision; rounding to two places happens at the formatting boundary, not
// here.
func (s *Selection) Total() decimal.Decimal {
	return s.PricePerSeat.Mul(decimal.NewFromInt(int64(len(s.seatIDs))))
}

// CheckoutPayload snapshots the selection for the handoff to the checkout
// view.
func (s *Selection) CheckoutPayload() CheckoutPayload {
	return CheckoutPayload{
		SeatIDs:    s.SeatIDs(),
		Showtime:   s.Showtime,
		MovieTitle: s.MovieTitle,
		Total:      s.Total(),
		PosterRef:  s.PosterURL,
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

// selectionJSON is the persisted form of a Selection. The session store
// round-trips selections through JSON, so the membership set is rebuilt from
// the ordered id list on load.
type selectionJSON struct {
	ID           string          `json:"id"`
	MovieID      string          `json:"movie_id"`
	MovieTitle   string          `json:"movie_title"`
	PosterURL    string          `json:"poster_url"`
	Showtime     Showtime        `json:"showtime"`
	PricePerSeat decimal.Decimal `json:"price_per_seat"`
	MaxSeats     int             `json:"max_seats"`
	SeatIDs      []string        `json:"seat_ids"`
}

func (s *Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		ID:           s.ID,
		MovieID:      s.MovieID,
		MovieTitle:   s.MovieTitle,
		PosterURL:    s.PosterURL,
		Showtime:     s.Showtime,
		PricePerSeat: s.PricePerSeat,
		MaxSeats:     s.MaxSeats,
		SeatIDs:      s.seatIDs,
	})
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	var v selectionJSON

	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}

	s.ID = v.ID
	s.MovieID = v.MovieID
	s.MovieTitle = v.MovieTitle
	s.PosterURL = v.PosterURL
	s.Showtime = v.Showtime
	s.PricePerSeat = v.PricePerSeat
	s.MaxSeats = v.MaxSeats
	s.seatIDs = v.SeatIDs
	s.seatSet = mapset.NewThreadUnsafeSet(v.SeatIDs...)

	return nil
}
