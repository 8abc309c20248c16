package app

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cinemadiroma/booking-gateway/api"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
	"github.com/cinemadiroma/booking-gateway/internal/mocks"
)

func sampleShowtime() api.Showtime {
	return api.Showtime{
		Date:        "15-06-2024",
		Time:        "21:30",
		Cinema:      "Cinema Adriano",
		BookingLink: "/booking/42/2",
	}
}

func seedSelection(t *testing.T, app *application, r *http.Request, seatIDs ...string) *domain.Selection {
	selection := domain.NewSelection(
		"42",
		"Il Grande Film",
		"/posters/42.jpg",
		toDomainShowtime(sampleShowtime()),
		app.pricePerSeat,
		app.config.booking.maxSeatsPerBooking,
	)

	for _, id := range seatIDs {
		seat, ok := app.layout.SeatByID(id)
		if !ok {
			t.Fatalf("unknown seat id %q", id)
		}
		if err := selection.Toggle(seat); err != nil {
			t.Fatalf("Failed to toggle seat %q: %v", id, err)
		}
	}

	if err := app.putSelection(r.Context(), selection); err != nil {
		t.Fatalf("Failed to store selection: %v", err)
	}

	return selection
}

func movieByIdMock() *mocks.MockCatalogRepo {
	return &mocks.MockCatalogRepo{
		GetMovieByIdFunc: func(ctx context.Context, id string) (*domain.Movie, error) {
			if id != "42" {
				return nil, domain.ErrRecordNotFound
			}
			return sampleMovie(), nil
		},
	}
}

func TestGetSeatMap(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.catalogRepo = movieByIdMock()
	})

	w, r := executeRequest(t, http.MethodGet, "/movies/42/seat-map", nil)
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "42")
	seedSelection(t, app, r, "D5")

	app.GetSeatMap(w, r)

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("GetSeatMap() status = %v, want %v", got, http.StatusOK)
	}

	var response api.SeatMapResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.MovieId != "42" {
		t.Errorf("MovieId = %q, want %q", response.MovieId, "42")
	}

	if len(response.SeatRows) != 10 {
		t.Fatalf("SeatRows = %d, want 10", len(response.SeatRows))
	}

	seats := make(map[string]api.Seat)
	total := 0

	for _, row := range response.SeatRows {
		total += len(row.Seats)
		for _, seat := range row.Seats {
			seats[seat.Id] = seat
		}
	}

	if total != 120 {
		t.Errorf("seat count = %d, want 120", total)
	}

	if seats["A1"].Available {
		t.Error("A1 should be taken")
	}

	if !seats["A1"].NearScreen {
		t.Error("A1 should be near the screen")
	}

	if !seats["D5"].Selected {
		t.Error("D5 should be marked selected")
	}

	if seats["D6"].Selected {
		t.Error("D6 should not be marked selected")
	}
}

func TestGetSeatMapIgnoresSelectionOfOtherMovie(t *testing.T) {
	repo := movieByIdMock()
	repo.GetMovieByIdFunc = func(ctx context.Context, id string) (*domain.Movie, error) {
		movie := sampleMovie()
		movie.ID = id
		return movie, nil
	}

	app := newTestApplication(func(a *application) {
		a.catalogRepo = repo
	})

	w, r := executeRequest(t, http.MethodGet, "/movies/7/seat-map", nil)
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "7")
	seedSelection(t, app, r, "D5")

	app.GetSeatMap(w, r)

	var response api.SeatMapResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	for _, row := range response.SeatRows {
		for _, seat := range row.Seats {
			if seat.Selected {
				t.Errorf("seat %s marked selected for another movie's selection", seat.Id)
			}
		}
	}
}

func TestGetSeatMapMovieNotFound(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.catalogRepo = movieByIdMock()
	})

	w, r := executeRequest(t, http.MethodGet, "/movies/999/seat-map", nil)
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "999")

	app.GetSeatMap(w, r)

	if got := w.Code; got != http.StatusNotFound {
		t.Errorf("GetSeatMap() status = %v, want %v", got, http.StatusNotFound)
	}
}

func TestCreateSelection(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.catalogRepo = movieByIdMock()
	})

	w, r := executeRequest(t, http.MethodPost, "/movies/42/selection", api.CreateSelectionRequest{
		Showtime: sampleShowtime(),
	})
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "42")

	app.CreateSelection(w, r)

	if got := w.Code; got != http.StatusCreated {
		t.Fatalf("CreateSelection() status = %v, want %v", got, http.StatusCreated)
	}

	var response api.SelectionResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.SelectionId == "" {
		t.Error("SelectionId should not be empty")
	}

	want := api.SelectionResponse{
		SelectionId:  response.SelectionId,
		MovieTitle:   "Il Grande Film",
		Showtime:     sampleShowtime(),
		Seats:        []string{},
		SeatCount:    0,
		PricePerSeat: "8.50",
		Total:        "0.00",
	}

	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("CreateSelection() response mismatch (-want +got):\n%s", diff)
	}

	stored, err := app.getSelection(r.Context())
	if err != nil {
		t.Fatalf("Failed to load stored selection: %v", err)
	}

	if stored.MovieID != "42" {
		t.Errorf("stored MovieID = %q, want %q", stored.MovieID, "42")
	}
}

func TestCreateSelectionReplacesExisting(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.catalogRepo = movieByIdMock()
	})

	w, r := executeRequest(t, http.MethodPost, "/movies/42/selection", api.CreateSelectionRequest{
		Showtime: sampleShowtime(),
	})
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "42")
	old := seedSelection(t, app, r, "D5", "D6")

	app.CreateSelection(w, r)

	stored, err := app.getSelection(r.Context())
	if err != nil {
		t.Fatalf("Failed to load stored selection: %v", err)
	}

	if stored.ID == old.ID {
		t.Error("selection should have been replaced")
	}

	if stored.Count() != 0 {
		t.Errorf("new selection seat count = %d, want 0", stored.Count())
	}
}

func TestCreateSelectionMovieNotFound(t *testing.T) {
	app := newTestApplication(func(a *application) {
		a.catalogRepo = movieByIdMock()
	})

	w, r := executeRequest(t, http.MethodPost, "/movies/999/selection", api.CreateSelectionRequest{
		Showtime: sampleShowtime(),
	})
	r = setupTestSession(t, app, r)
	r = withURLParam(r, "movieID", "999")

	app.CreateSelection(w, r)

	if got := w.Code; got != http.StatusNotFound {
		t.Errorf("CreateSelection() status = %v, want %v", got, http.StatusNotFound)
	}
}

func TestGetSelection(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/selection", nil)
	r = setupTestSession(t, app, r)
	seedSelection(t, app, r, "D5", "D6", "D7")

	app.GetSelection(w, r)

	if got := w.Code; got != http.StatusOK {
		t.Fatalf("GetSelection() status = %v, want %v", got, http.StatusOK)
	}

	var response api.SelectionResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if diff := cmp.Diff([]string{"D5", "D6", "D7"}, response.Seats); diff != "" {
		t.Errorf("Seats mismatch (-want +got):\n%s", diff)
	}

	if response.Total != "25.50" {
		t.Errorf("Total = %q, want %q", response.Total, "25.50")
	}
}

func TestGetSelectionWithoutOne(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodGet, "/selection", nil)
	r = setupTestSession(t, app, r)

	app.GetSelection(w, r)

	if got := w.Code; got != http.StatusNotFound {
		t.Errorf("GetSelection() status = %v, want %v", got, http.StatusNotFound)
	}
}

func TestDeleteSelection(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodDelete, "/selection", nil)
	r = setupTestSession(t, app, r)
	seedSelection(t, app, r, "D5")

	app.DeleteSelection(w, r)

	if got := w.Code; got != http.StatusNoContent {
		t.Fatalf("DeleteSelection() status = %v, want %v", got, http.StatusNoContent)
	}

	if _, err := app.getSelection(r.Context()); err == nil {
		t.Error("selection should be gone after delete")
	}
}

func TestDeleteSelectionWithoutOne(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodDelete, "/selection", nil)
	r = setupTestSession(t, app, r)

	app.DeleteSelection(w, r)

	if got := w.Code; got != http.StatusNotFound {
		t.Errorf("DeleteSelection() status = %v, want %v", got, http.StatusNotFound)
	}
}

func TestToggleSeat(t *testing.T) {
	tests := []struct {
		name       string
		seatId     string
		seeded     []string
		maxSeats   int
		wantStatus int
		wantSeats  []string
	}{
		{
			name:       "adds an available seat",
			seatId:     "D5",
			seeded:     []string{},
			wantStatus: http.StatusOK,
			wantSeats:  []string{"D5"},
		},
		{
			name:       "removes a selected seat",
			seatId:     "D5",
			seeded:     []string{"D5", "D6"},
			wantStatus: http.StatusOK,
			wantSeats:  []string{"D6"},
		},
		{
			name:       "taken seat is a no-op",
			seatId:     "A1",
			seeded:     []string{"D5"},
			wantStatus: http.StatusOK,
			wantSeats:  []string{"D5"},
		},
		{
			name:       "unknown seat id",
			seatId:     "M5",
			seeded:     []string{},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "selection at capacity",
			seatId:     "D7",
			seeded:     []string{"D5", "D6"},
			maxSeats:   2,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.config.booking.maxSeatsPerBooking = tt.maxSeats
			})

			w, r := executeRequest(t, http.MethodPost, "/selection/seats", api.ToggleSeatRequest{
				SeatId: tt.seatId,
			})
			r = setupTestSession(t, app, r)
			seedSelection(t, app, r, tt.seeded...)

			app.ToggleSeat(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Fatalf("ToggleSeat() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantSeats != nil {
				var response api.SelectionResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantSeats, response.Seats); diff != "" {
					t.Errorf("Seats mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestToggleSeatWithoutSelection(t *testing.T) {
	app := newTestApplication()

	w, r := executeRequest(t, http.MethodPost, "/selection/seats", api.ToggleSeatRequest{SeatId: "D5"})
	r = setupTestSession(t, app, r)

	app.ToggleSeat(w, r)

	if got := w.Code; got != http.StatusNotFound {
		t.Errorf("ToggleSeat() status = %v, want %v", got, http.StatusNotFound)
	}
}
