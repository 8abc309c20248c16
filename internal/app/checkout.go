package app

import (
	"errors"
	"net/http"

	"github.com/cinemadiroma/booking-gateway/api"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

// CheckoutHandoff snapshots the session's selection into a checkout URL and
// clears the selection. The handoff is one-way: after this point the checkout
// view works only from the payload in the URL.
func (app *application) CheckoutHandoff(w http.ResponseWriter, r *http.Request) {
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

	if selection.Count() == 0 {
		app.unprocessableEntityResponse(w, r, errors.New("no seats selected"))
		return
	}

	values, err := selection.CheckoutPayload().Encode()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.clearSelection(r.Context())

	resp := api.CheckoutHandoffResponse{
		CheckoutUrl: "/checkout?" + values.Encode(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetCheckoutOrder decodes a checkout payload back out of the query string.
// Decoding is all-or-nothing: any malformed field rejects the whole order.
func (app *application) GetCheckoutOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := domain.DecodeCheckoutPayload(r.URL.Query())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMalformedPayload):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.OrderSummaryResponse{
		MovieTitle: payload.MovieTitle,
		Showtime:   toApiShowtime(payload.Showtime),
		Seats:      payload.SeatIDs,
		Total:      payload.Total.StringFixed(2),
		PosterUrl:  payload.PosterRef,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
