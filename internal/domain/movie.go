package domain

import "context"

// Movie as served by the upstream catalog. Optional upstream fields are
// normalized to defined defaults at the API boundary (see internal/catalog),
// not re-checked at every use site.
type Movie struct {
	ID        string
	Title     string
	Genre     string
	Duration  int
	Language  string
	PosterURL string
	Showtimes []Showtime
}

// Cinema is one venue, with coordinates for the map view.
type Cinema struct {
	ID        string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Movies    []Movie
}

// CatalogRepository is the read side of the remote movie-catalog API.
type CatalogRepository interface {
	GetMovies(ctx context.Context) ([]*Movie, error)
	GetMovieById(ctx context.Context, id string) (*Movie, error)
	GetCinemas(ctx context.Context) ([]*Cinema, error)
}
