package app

import (
	"errors"
	"net/http"

	"github.com/cinemadiroma/booking-gateway/api"
	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

func (app *application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest

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

	user, err := app.accountSvc.Register(r.Context(), domain.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		BirthDate: req.BirthDate,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.badRequestResponse(w, r, errors.New("unable to register with the provided details"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Login authenticates against the account API and binds the user to the
// session. The session token is renewed on privilege change; scs keeps the
// session data, so an in-progress seat selection survives login.
func (app *application) Login(w http.ResponseWriter, r *http.Request) {
	if app.sessionManager.Exists(r.Context(), SessionKeyUserId.String()) {
		resp := api.MessageResponse{Message: "You are already logged in"}

		err := app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var req api.LoginRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.accountSvc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) Logout(w http.ResponseWriter, r *http.Request) {
	if !app.sessionManager.Exists(r.Context(), SessionKeyUserId.String()) {
		app.notFoundResponse(w, r)
		return
	}

	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RequestPasswordReset always answers 202 with the same message, whether or
// not the email is registered.
func (app *application) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req api.PasswordResetRequest

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

	err = app.accountSvc.RequestPasswordReset(r.Context(), req.Email)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MessageResponse{
		Message: "If the email is registered, a reset link has been sent",
	}

	err = app.writeJSON(w, http.StatusAccepted, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   user.Address,
		BirthDate: user.BirthDate,
		Phone:     user.Phone,
	}
}
