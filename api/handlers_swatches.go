package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/models"
)

// GET /v1/swatches - List the caller's swatches, newest first
func (app *Application) getSwatches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	swatches, err := app.SwatchRepo.GetByUser(user.UserID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := lo.Map(swatches, func(s models.Swatch, _ int) models.SwatchResponse {
		return models.NewSwatchResponse(s, user.Format())
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}

// GET /v1/swatches/get?id= - Fetch one of the caller's swatches
func (app *Application) getSwatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		app.badRequest(w, r, fmt.Errorf("invalid swatch id: %v", err))
		return
	}

	swatch, err := app.SwatchRepo.Get(user.UserID, id)
	if isNoRows(err) {
		app.notFound(w, r, fmt.Errorf("swatch %d not found", id))
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewSwatchResponse(swatch, user.Format()))
}

// POST /v1/swatches/create - Parse a color and save it under a name
func (app *Application) createSwatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	req := &models.SwatchCreateRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		app.badRequest(w, r, errors.New("name is required"))
		return
	}

	color, ok := app.parseColorInput(w, r, req.Color)
	if !ok {
		return
	}

	saved, err := app.SwatchRepo.Create(models.NewSwatch(user.UserID, name, strings.TrimSpace(req.Color), color), models.MaxSwatchesPerUser)
	if errors.Is(err, datastore.ErrSwatchLimit) {
		app.swatchLimitReached(w, r, ErrSwatchLimit)
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(models.NewSwatchResponse(saved, user.Format()))
}

// POST /v1/swatches/delete - Remove one of the caller's swatches
func (app *Application) deleteSwatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	req := &models.SwatchDeleteRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	deleted, err := app.SwatchRepo.Delete(user.UserID, req.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if deleted == 0 {
		app.notFound(w, r, fmt.Errorf("swatch %d not found", req.ID))
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Swatch deleted",
		"id":      req.ID,
	})
}
