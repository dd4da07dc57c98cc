package api

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/samber/lo"

	"github.com/color-game/swatchbook/models"
	"github.com/color-game/swatchbook/notation"
)

// formatSample is translucent so every notation shows how it handles alpha
var formatSample = notation.New(0.8, 0.7, 0.6, 0.5)

// parseColorInput maps parser failures onto 422 and anything else onto 400
func (app *Application) parseColorInput(w http.ResponseWriter, r *http.Request, input string) (notation.Color, bool) {
	color, err := notation.Parse(input)
	if errors.Is(err, notation.ErrUnrecognizedColorFormat) {
		app.unrecognizedColor(w, r, err)
		return notation.Color{}, false
	}
	if err != nil {
		app.badRequest(w, r, err)
		return notation.Color{}, false
	}
	return color, true
}

// POST /v1/colors/parse - Describe a color written in any supported notation
func (app *Application) parseColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ColorParseRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	color, ok := app.parseColorInput(w, r, req.Input)
	if !ok {
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewColorParseResponse(req.Input, color, req.Short))
}

// POST /v1/colors/convert - Render a color in a single notation
func (app *Application) convertColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.ColorConvertRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	// Signed in callers default to their preferred notation
	format := models.DefaultFormat
	if user, ok := app.optionalUser(r).Get(); ok {
		format = user.Format()
	}

	if req.Format != "" {
		requested, err := notation.ParseFormat(req.Format)
		if err != nil {
			app.unknownFormat(w, r, err)
			return
		}
		format = requested
	}

	color, ok := app.parseColorInput(w, r, req.Input)
	if !ok {
		return
	}

	output, err := notation.Render(color, format, req.Short)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.ColorConvertResponse{
		Input:  req.Input,
		Format: format,
		Output: output,
	})
}

// GET /v1/colors/formats - List the output notations
func (app *Application) listFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	infos := lo.Map(notation.Formats(), func(f notation.Format, _ int) models.FormatInfo {
		return models.NewFormatInfo(f, formatSample)
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(infos)
}

// GET /v1/colors/random - Get a random opaque color in every notation
func (app *Application) getRandomColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	short, _ := strconv.ParseBool(r.URL.Query().Get("short"))

	color := notation.FromBytes(uint8(rand.Intn(256)), uint8(rand.Intn(256)), uint8(rand.Intn(256)), 1)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewColorParseResponse(notation.HexString(color), color, short))
}
