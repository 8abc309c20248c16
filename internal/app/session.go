package app

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

type sessionKey string

const (
	SessionKeyUserId    = sessionKey("userID")
	SessionKeySelection = sessionKey("selection")
)

func (s sessionKey) String() string {
	return string(s)
}

func (app *application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// The active seat selection lives in the session, serialized as JSON. It is
// scoped to exactly one session, so concurrent sessions can never see or
// mutate each other's selection.

func (app *application) getSelection(ctx context.Context) (*domain.Selection, error) {
	data := app.sessionManager.GetBytes(ctx, SessionKeySelection.String())
	if data == nil {
		return nil, domain.ErrRecordNotFound
	}

	var selection domain.Selection

	err := json.Unmarshal(data, &selection)
	if err != nil {
		return nil, err
	}

	return &selection, nil
}

func (app *application) putSelection(ctx context.Context, selection *domain.Selection) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return err
	}

	app.sessionManager.Put(ctx, SessionKeySelection.String(), data)

	return nil
}

func (app *application) clearSelection(ctx context.Context) {
	app.sessionManager.Remove(ctx, SessionKeySelection.String())
}
