// Package api holds the wire types of the booking gateway's HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Showtime struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Cinema      string `json:"cinema"`
	BookingLink string `json:"bookingLink"`
}

type MovieSummary struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Genre     string `json:"genre"`
	Duration  int    `json:"duration"`
	Language  string `json:"language"`
	PosterUrl string `json:"posterUrl"`
}

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type ShowtimeGroup struct {
	Cinema    string     `json:"cinema"`
	Showtimes []Showtime `json:"showtimes"`
}

type MovieDetailsResponse struct {
	Movie          MovieSummary    `json:"movie"`
	Date           string          `json:"date"`
	ShowtimeGroups []ShowtimeGroup `json:"showtimeGroups"`
	Message        string          `json:"message,omitempty"`
}

type CinemaSummary struct {
	Id            string         `json:"id"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	CurrentMovies []MovieSummary `json:"currentMovies"`
}

type CinemaListResponse struct {
	Cinemas []CinemaSummary `json:"cinemas"`
}

type Seat struct {
	Id         string `json:"id"`
	Row        string `json:"row"`
	Number     int    `json:"number"`
	Available  bool   `json:"available"`
	NearScreen bool   `json:"nearScreen"`
	Selected   bool   `json:"selected"`
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	MovieId  string    `json:"movieId"`
	SeatRows []SeatRow `json:"seatRows"`
}

type CreateSelectionRequest struct {
	Showtime Showtime `json:"showtime" validate:"required"`
}

type ToggleSeatRequest struct {
	SeatId string `json:"seatId" validate:"required"`
}

type SelectionResponse struct {
	SelectionId  string   `json:"selectionId"`
	MovieTitle   string   `json:"movieTitle"`
	Showtime     Showtime `json:"showtime"`
	Seats        []string `json:"seats"`
	SeatCount    int      `json:"seatCount"`
	PricePerSeat string   `json:"pricePerSeat"`
	Total        string   `json:"total"`
}

type CheckoutHandoffResponse struct {
	CheckoutUrl string `json:"checkoutUrl"`
}

type OrderSummaryResponse struct {
	MovieTitle string   `json:"movieTitle"`
	Showtime   Showtime `json:"showtime"`
	Seats      []string `json:"seats"`
	Total      string   `json:"total"`
	PosterUrl  string   `json:"posterUrl"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Address   string `json:"address" validate:"required,max=200"`
	BirthDate string `json:"birthDate" validate:"required,isodate"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
