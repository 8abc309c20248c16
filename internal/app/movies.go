package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cinemadiroma/booking-gateway/api"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

const NoShowtimesMessage = "No showtimes available for the selected filters"

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.catalogRepo.GetMovies(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.MovieSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = toMovieSummary(movie)
	}

	resp := api.MovieListResponse{
		Movies: summaries,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetMovieDetails returns one movie with its showtimes narrowed by the
// date/time/cinema/language query parameters and grouped by cinema. Zero
// matches is not an error: the response carries empty groups and a message
// the UI shows with its "clear filters" affordance.
func (app *application) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieID")

	criteria, err := app.showtimeCriteria(r)
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

	filtered := domain.FilterShowtimes(movie.Showtimes, movie.Language, criteria)
	groups := domain.GroupByCinema(filtered)

	resp := api.MovieDetailsResponse{
		Movie:          toMovieSummary(movie),
		Date:           criteria.Date,
		ShowtimeGroups: toShowtimeGroups(groups),
	}

	if len(groups) == 0 {
		resp.Message = NoShowtimesMessage
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := app.catalogRepo.GetCinemas(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.CinemaSummary, len(cinemas))

	for i, cinema := range cinemas {
		movies := make([]api.MovieSummary, len(cinema.Movies))
		for j := range cinema.Movies {
			movies[j] = toMovieSummary(&cinema.Movies[j])
		}

		summaries[i] = api.CinemaSummary{
			Id:            cinema.ID,
			Name:          cinema.Name,
			Address:       cinema.Address,
			Latitude:      cinema.Latitude,
			Longitude:     cinema.Longitude,
			CurrentMovies: movies,
		}
	}

	resp := api.CinemaListResponse{
		Cinemas: summaries,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showtimeCriteria reads the filter criteria from the query string. The date
// defaults to today, matching the front end's date picker.
func (app *application) showtimeCriteria(r *http.Request) (domain.FilterCriteria, error) {
	qs := r.URL.Query()

	params := struct {
		Date     string `validate:"omitempty,isodate"`
		Time     string `validate:"omitempty,clocktime"`
		Cinema   string
		Language string `validate:"omitempty,showlang"`
	}{
		Date:     app.readString(qs, "date", time.Now().Format("2006-01-02")),
		Time:     app.readString(qs, "time", ""),
		Cinema:   app.readString(qs, "cinema", ""),
		Language: app.readString(qs, "language", ""),
	}

	err := app.validator.Struct(params)
	if err != nil {
		return domain.FilterCriteria{}, err
	}

	return domain.FilterCriteria{
		Date:     params.Date,
		Time:     params.Time,
		Cinema:   params.Cinema,
		Language: params.Language,
	}, nil
}

func toMovieSummary(movie *domain.Movie) api.MovieSummary {
	if movie == nil {
		return api.MovieSummary{}
	}

	return api.MovieSummary{
		Id:        movie.ID,
		Title:     movie.Title,
		Genre:     movie.Genre,
		Duration:  movie.Duration,
		Language:  movie.Language,
		PosterUrl: movie.PosterURL,
	}
}

func toShowtimeGroups(groups []domain.CinemaShowtimes) []api.ShowtimeGroup {
	apiGroups := make([]api.ShowtimeGroup, len(groups))

	for i, group := range groups {
		apiGroups[i] = api.ShowtimeGroup{
			Cinema:    group.Cinema,
			Showtimes: toApiShowtimes(group.Showtimes),
		}
	}

	return apiGroups
}

func toApiShowtimes(showtimes []domain.Showtime) []api.Showtime {
	apiShowtimes := make([]api.Showtime, len(showtimes))

	for i, s := range showtimes {
		apiShowtimes[i] = toApiShowtime(s)
	}

	return apiShowtimes
}

func toApiShowtime(s domain.Showtime) api.Showtime {
	return api.Showtime{
		Date:        s.Date,
		Time:        s.Time,
		Cinema:      s.Cinema,
		BookingLink: s.BookingLink,
	}
}

func toDomainShowtime(s api.Showtime) domain.Showtime {
	return domain.Showtime{
		Date:        s.Date,
		Time:        s.Time,
		Cinema:      s.Cinema,
		BookingLink: s.BookingLink,
	}
}
