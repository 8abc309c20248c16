// Package catalog is the HTTP client for the remote movie-catalog and
// account API. Upstream records are duck-typed JSON with optional fields;
// they are validated and defaulted once here, at the boundary, and mapped
// into domain types.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Upstream wire shapes. User fields keep the upstream's Italian naming.
type movieRecord struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Genre     string           `json:"genre"`
	Duration  int              `json:"duration"`
	Language  string           `json:"language"`
	PosterURL string           `json:"poster_url"`
	Showtimes []showtimeRecord `json:"showtimes"`
}

type showtimeRecord struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Cinema      string `json:"cinema"`
	BookingLink string `json:"booking_link"`
}

type cinemaRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	Latitude      float64       `json:"latitude"`
	Longitude     float64       `json:"longitude"`
	CurrentMovies []movieRecord `json:"currentMovies"`
}

type userRecord struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Address   string `json:"indirizzo"`
	BirthDate string `json:"data_nascita"`
	Phone     string `json:"telefono"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"nome"`
	LastName  string `json:"cognome"`
	Address   string `json:"indirizzo"`
	BirthDate string `json:"dataNascita"`
	Phone     string `json:"telefono"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string     `json:"message"`
	User    userRecord `json:"user"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *Client) GetMovies(ctx context.Context) ([]*domain.Movie, error) {
	var records []movieRecord

	err := c.do(ctx, http.MethodGet, "/api/movies", nil, &records)
	if err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, len(records))
	for i, record := range records {
		movies[i] = toMovie(record)
	}

	return movies, nil
}

func (c *Client) GetMovieById(ctx context.Context, id string) (*domain.Movie, error) {
	var record movieRecord

	err := c.do(ctx, http.MethodGet, "/api/movies/"+id, nil, &record)
	if err != nil {
		return nil, err
	}

	return toMovie(record), nil
}

func (c *Client) GetCinemas(ctx context.Context) ([]*domain.Cinema, error) {
	var records []cinemaRecord

	err := c.do(ctx, http.MethodGet, "/api/cinemas", nil, &records)
	if err != nil {
		return nil, err
	}

	cinemas := make([]*domain.Cinema, len(records))

	for i, record := range records {
		movies := make([]domain.Movie, len(record.CurrentMovies))
		for j, m := range record.CurrentMovies {
			movies[j] = *toMovie(m)
		}

		cinemas[i] = &domain.Cinema{
			ID:        record.ID,
			Name:      record.Name,
			Address:   record.Address,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
			Movies:    movies,
		}
	}

	return cinemas, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	body := registerRequest{
		Email:     reg.Email,
		Password:  reg.Password,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Address:   reg.Address,
		BirthDate: reg.BirthDate,
		Phone:     reg.Phone,
	}

	var record userRecord

	err := c.do(ctx, http.MethodPost, "/api/users/register", body, &record)
	if err != nil {
		return nil, err
	}

	user := toUser(record)
	if user.Email == "" {
		// The upstream register endpoint only returns a message; echo back
		// what we sent so the caller has a complete user.
		user = &domain.User{
			Email:     reg.Email,
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
			Address:   reg.Address,
			BirthDate: reg.BirthDate,
			Phone:     reg.Phone,
		}
	}

	return user, nil
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	var resp loginResponse

	err := c.do(ctx, http.MethodPost, "/api/users/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	return toUser(resp.User), nil
}

func (c *Client) GetUser(ctx context.Context, id int) (*domain.User, error) {
	var record userRecord

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, &record)
	if err != nil {
		return nil, err
	}

	return toUser(record), nil
}

func (c *Client) UpdateUser(ctx context.Context, id int, upd domain.UserUpdate) (*domain.User, error) {
	body := map[string]any{}

	if upd.FirstName != nil {
		body["nome"] = *upd.FirstName
	}
	if upd.LastName != nil {
		body["cognome"] = *upd.LastName
	}
	if upd.Address != nil {
		body["indirizzo"] = *upd.Address
	}
	if upd.Phone != nil {
		body["telefono"] = *upd.Phone
	}

	var record userRecord

	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), body, &record)
	if err != nil {
		return nil, err
	}

	return toUser(record), nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/users/reset-password", map[string]string{"email": email}, nil)
}

func toMovie(record movieRecord) *domain.Movie {
	showtimes := make([]domain.Showtime, len(record.Showtimes))

	for i, s := range record.Showtimes {
		showtimes[i] = domain.Showtime{
			// Upstream dates are nominally DD-MM-YYYY, but ISO values leak
			// through; normalize once here.
			Date:        domain.ToDisplayDate(s.Date),
			Time:        s.Time,
			Cinema:      s.Cinema,
			BookingLink: s.BookingLink,
		}
	}

	return &domain.Movie{
		ID:        record.ID,
		Title:     record.Title,
		Genre:     record.Genre,
		Duration:  record.Duration,
		Language:  record.Language,
		PosterURL: record.PosterURL,
		Showtimes: showtimes,
	}
}

func toUser(record userRecord) *domain.User {
	return &domain.User{
		ID:        record.ID,
		Email:     record.Email,
		FirstName: record.FirstName,
		LastName:  record.LastName,
		Address:   record.Address,
		BirthDate: record.BirthDate,
		Phone:     record.Phone,
	}
}

// do performs one upstream request and decodes the JSON response into dst
// when dst is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.toError(resp, path)
	}

	if dst == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("catalog response decode failed: %w", err)
	}

	return nil
}

func (c *Client) toError(resp *http.Response, path string) error {
	var upstream errorResponse

	_ = json.NewDecoder(resp.Body).Decode(&upstream)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrRecordNotFound
	case resp.StatusCode == http.StatusBadRequest && path == "/api/users/login":
		return domain.ErrInvalidCredentials
	case resp.StatusCode == http.StatusBadRequest && path == "/api/users/register":
		return domain.ErrUserAlreadyExists
	default:
		return fmt.Errorf("catalog returned %d for %s: %s", resp.StatusCode, path, upstream.Detail)
	}
}
