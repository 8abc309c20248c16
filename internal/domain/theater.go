package domain

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

// Seat is one position in the theater grid. Seats are generated, not stored:
// the grid is a pure function of the layout, and no seat has an independent
// lifecycle.
type Seat struct {
	ID         string
	Row        string
	Number     int
	Available  bool
	NearScreen bool
}

// Layout is the static description of a hall: ordered row labels, a fixed
// seat count per row, the rows flagged as near the screen, and the seats
// taken for the session.
//
// Occupancy here is simulated, fixed configuration. There is no reservation
// feed and no cross-session lock, so two sessions can select the same seat;
// a real occupancy source would be a separate upstream service.
type Layout struct {
	rows        []string
	seatsPerRow int
	nearScreen  mapset.Set[string]
	taken       mapset.Set[string]
}

// Hall constants of the original Cinema di Roma front end. Rows follow the
// Italian alphabet, so J and K are absent.
var (
	defaultRows           = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "L"}
	defaultNearScreenRows = []string{"A", "B", "C"}
	defaultTakenSeats     = []string{
		"A1", "A2", "B1", "B2", "C1", "C2",
		"F10", "F11", "F12", "G10", "G11", "G12",
		"L5", "L6", "L7", "M5", "M6", "M7",
	}
)

const defaultSeatsPerRow = 12

func NewLayout(rows []string, seatsPerRow int, nearScreenRows, takenSeats []string) Layout {
	return Layout{
		rows:        rows,
		seatsPerRow: seatsPerRow,
		nearScreen:  mapset.NewThreadUnsafeSet(nearScreenRows...),
		taken:       mapset.NewThreadUnsafeSet(takenSeats...),
	}
}

// DefaultLayout returns the fixed hall used by the booking flow. Taken-seat
// ids outside the grid (row M) are inert: they never appear in the generated
// grid and never match a lookup.
func DefaultLayout() Layout {
	return NewLayout(defaultRows, defaultSeatsPerRow, defaultNearScreenRows, defaultTakenSeats)
}

// Grid generates every seat in row-major order. It is deterministic: calling
// it again yields an identical sequence.
func (l Layout) Grid() []Seat {
	seats := make([]Seat, 0, len(l.rows)*l.seatsPerRow)

	for _, row := range l.rows {
		for n := 1; n <= l.seatsPerRow; n++ {
			seats = append(seats, l.seat(row, n))
		}
	}

	return seats
}

// SeatByID resolves a seat id like "C5" against the layout. The second
// return value is false when the id doesn't name a position in the grid.
func (l Layout) SeatByID(id string) (Seat, bool) {
	if len(id) < 2 {
		return Seat{}, false
	}

	row := id[:1]
	number, err := strconv.Atoi(id[1:])
	if err != nil || number < 1 || number > l.seatsPerRow {
		return Seat{}, false
	}

	if !l.hasRow(row) {
		return Seat{}, false
	}

	return l.seat(row, number), true
}

func (l Layout) Rows() []string {
	rows := make([]string, len(l.rows))
	copy(rows, l.rows)

	return rows
}

func (l Layout) SeatsPerRow() int {
	return l.seatsPerRow
}

func (l Layout) seat(row string, number int) Seat {
	id := row + strconv.Itoa(number)

	return Seat{
		ID:         id,
		Row:        row,
		Number:     number,
		Available:  !l.taken.Contains(id),
		NearScreen: l.nearScreen.Contains(row),
	}
}

func (l Layout) hasRow(row string) bool {
	for _, r := range l.rows {
		if r == row {
			return true
		}
	}

	return false
}
