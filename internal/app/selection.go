package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cinemadiroma/booking-gateway/api"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

// GetSeatMap returns the hall grid for a movie, with the session's current
// selection overlaid when one exists for that movie.
func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	_, err := app.catalogRepo.GetMovieById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	selection, err := app.getSelection(r.Context())
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	selected := func(string) bool { return false }
	if selection != nil && selection.MovieID == movieID {
		selected = selection.Contains
	}

	rows := app.layout.Rows()
	seatRows := make([]api.SeatRow, len(rows))
	grid := app.layout.Grid()
	perRow := app.layout.SeatsPerRow()

	for i, row := range rows {
		seats := make([]api.Seat, perRow)

		for j, seat := range grid[i*perRow : (i+1)*perRow] {
			seats[j] = api.Seat{
				Id:         seat.ID,
				Row:        seat.Row,
				Number:     seat.Number,
				Available:  seat.Available,
				NearScreen: seat.NearScreen,
				Selected:   selected(seat.ID),
			}
		}

		seatRows[i] = api.SeatRow{
			Row:   row,
			Seats: seats,
		}
	}

	resp := api.SeatMapResponse{
		MovieId:  movieID,
		SeatRows: seatRows,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateSelection starts a fresh selection for the given movie and showtime.
// Any previous selection in the session is discarded, including its seats.
func (app *application) CreateSelection(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	var req api.CreateSelectionRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.catalogRepo.GetMovieById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	selection := domain.NewSelection(
		movie.ID,
		movie.Title,
		movie.PosterURL,
		toDomainShowtime(req.Showtime),
		app.pricePerSeat,
		app.config.booking.maxSeatsPerBooking,
	)

	err = app.putSelection(r.Context(), selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toSelectionResponse(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetSelection(w http.ResponseWriter, r *http.Request) {
	selection, err := app.getSelection(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteSelection(w http.ResponseWriter, r *http.Request) {
	_, err := app.getSelection(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.clearSelection(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

// ToggleSeat flips one seat in the session's selection. Unknown seat ids are
// 404s; toggling a taken seat succeeds without changing anything, mirroring
// the click-does-nothing behavior of the seat map.
func (app *application) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	var req api.ToggleSeatRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	selection, err := app.getSelection(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	seat, ok := app.layout.SeatByID(req.SeatId)
	if !ok {
		app.notFoundResponse(w, r)
		return
	}

	err = selection.Toggle(seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelectionFull):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.putSelection(r.Context(), selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSelectionResponse(selection), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSelectionResponse(selection *domain.Selection) api.SelectionResponse {
	return api.SelectionResponse{
		SelectionId:  selection.ID,
		MovieTitle:   selection.MovieTitle,
		Showtime:     toApiShowtime(selection.Showtime),
		Seats:        selection.SeatIDs(),
		SeatCount:    selection.Count(),
		PricePerSeat: selection.PricePerSeat.StringFixed(2),
		Total:        selection.Total().StringFixed(2),
	}
}
