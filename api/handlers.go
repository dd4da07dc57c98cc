package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/models"
	"github.com/color-game/swatchbook/notation"
)

// isNoRows reports whether a repository error means the row does not exist
func isNoRows(err error) bool {
	var noRows datastore.NoRowsError
	return errors.As(err, &noRows)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Swatchbook API")
}

// POST /v1/auth/signup
func (app *Application) signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	userSignup := &models.UserSignupRequest{}
	errParsingJson := json.NewDecoder(r.Body).Decode(userSignup)
	if errParsingJson != nil {
		app.badJSONRequest(w, r, errParsingJson)
		return
	}

	if len(userSignup.Username) == 0 {
		app.badRequest(w, r, errors.New("username is required"))
		return
	}

	if strings.ContainsRune(userSignup.Username, ' ') {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}

	if len(userSignup.Email) == 0 || len(userSignup.Password) == 0 {
		app.badRequest(w, r, errors.New("email and password are required"))
		return
	}

	// Create new user
	newUser, newUserErr := models.NewUser(*userSignup)
	if newUserErr != nil {
		app.internalServerError(w, r, newUserErr)
		return
	}

	// Check if email already exists
	_, getErr := app.UserRepo.GetUserByEmail(newUser.Email)
	if getErr == nil {
		app.userAlreadyExists(w, r, getErr)
		return
	}

	// Check if username already exists
	_, getUsernameErr := app.UserRepo.GetUserByUsername(newUser.Username)
	if getUsernameErr == nil {
		app.badRequest(w, r, errors.New("username already taken"))
		return
	}

	// Store new user in database
	storedUser, errStoringNewUser := app.UserRepo.Create(newUser)
	if errStoringNewUser != nil {
		app.internalServerError(w, r, errStoringNewUser)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(storedUser)
}

// POST /v1/auth/login
func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	// Parse credentials with device fingerprint
	creds := &models.Credentials{}
	if err := json.NewDecoder(r.Body).Decode(creds); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if creds.DeviceFingerprint == "" {
		app.badJSONRequest(w, r, errors.New("deviceFingerprint is required"))
		return
	}

	// Validate user credentials
	user, err := app.UserRepo.ValidateAndGetUser(*creds)
	if err != nil {
		app.invalidCredentials(w, r, err)
		return
	}

	if !user.Approved {
		app.invalidCredentials(w, r, errors.New("user not yet approved"))
		return
	}

	// Create/update device record
	deviceExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtRefreshDuration))
	device := models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: creds.DeviceFingerprint,
		DeviceData:  r.Header.Get("User-Agent"),
		Expiry:      deviceExpiry,
	}

	if err := app.UserRepo.CreateDevice(device); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	accessExpiry := time.Now().Add(time.Second * time.Duration(app.Config.JwtAccessDuration))
	accessToken, err := models.NewJWTClaims(user, creds.DeviceFingerprint, models.JWT.AUTH_SCOPE, models.JWT.ACCESS_COOKIE_NAME, accessExpiry).Sign(app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	refreshToken, err := models.NewJWTClaims(user, creds.DeviceFingerprint, models.JWT.REFRESH_SCOPE, models.JWT.REFRESH_COOKIE_NAME, deviceExpiry).Sign(app.Config.JwtSecret)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, accessToken, accessExpiry)
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, refreshToken, deviceExpiry)

	w.WriteHeader(http.StatusOK)
}

func (app *Application) setTokenCookie(w http.ResponseWriter, name, value string, expiry time.Time) {
	sameSite := http.SameSiteStrictMode
	if app.Config.JwtDomain == "" {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		HttpOnly: true,
		Secure:   true,
		SameSite: sameSite,
		Path:     "/",
		Domain:   app.Config.JwtDomain,
		Expires:  expiry,
	})
}

// POST /v1/auth/logout - Forget the caller's device and expire both cookies
func (app *Application) logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	_, device, err := app.getSessionFromJWT(r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	if err := app.UserRepo.DeleteDevice(device.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, "", time.Unix(0, 0))
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, "", time.Unix(0, 0))

	w.WriteHeader(http.StatusOK)
}

// GET /v1/users/me - Get current authenticated user
func (app *Application) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
}

// PUT /v1/users/me/update - Update current authenticated user
func (app *Application) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		app.requirePutMethod(w, r, ErrPUT)
		return
	}

	currentUser, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	updateReq := &models.UserUpdateRequest{}
	if err := json.NewDecoder(r.Body).Decode(updateReq); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if strings.ContainsRune(updateReq.Username, ' ') {
		app.badRequest(w, r, errors.New("username cannot contain spaces"))
		return
	}

	if updateReq.PreferredFormat != "" {
		format, err := notation.ParseFormat(updateReq.PreferredFormat)
		if err != nil {
			app.unknownFormat(w, r, err)
			return
		}
		currentUser.PreferredFormat = string(format)
	}

	// Empty fields keep their current value
	currentUser.Username = lo.CoalesceOrEmpty(updateReq.Username, currentUser.Username)
	currentUser.Email = lo.CoalesceOrEmpty(updateReq.Email, currentUser.Email)
	currentUser.UpdatedAt = time.Now()

	updatedUser, updateErr := app.UserRepo.Update(currentUser)
	if updateErr != nil {
		app.internalServerError(w, r, updateErr)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updatedUser)
}

// DELETE /v1/users/me/delete - Remove the caller's account along with its devices and swatches
func (app *Application) deleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		app.requireDeleteMethod(w, r, ErrDELETE)
		return
	}

	user, err := app.getUserFromToken(w, r)
	if err != nil {
		app.invalidAuthorization(w, r, err)
		return
	}

	if err := app.UserRepo.DeleteUserByID(user.UserID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setTokenCookie(w, models.JWT.ACCESS_COOKIE_NAME, "", time.Unix(0, 0))
	app.setTokenCookie(w, models.JWT.REFRESH_COOKIE_NAME, "", time.Unix(0, 0))

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Account deleted",
		"userId":  user.UserID,
	})
}

// GET /v1/users - Get all users
func (app *Application) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, retrieveErr := app.UserRepo.GetAllUsers()
	if retrieveErr != nil {
		app.internalServerError(w, r, retrieveErr)
		return
	}

	json.NewEncoder(w).Encode(users)
}

// GET /v1/colors/daily - Get today's daily color
func (app *Application) getDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	dailyColor, err := app.DailyColorRepo.GetToday()
	if isNoRows(err) {
		app.notFound(w, r, errors.New("no daily color has been generated for today"))
		return
	}
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.NewDailyColorResponse(dailyColor))
}

// GET /v1/colors/daily/all - Get all daily colors
func (app *Application) getAllDailyColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		app.requireGetMethod(w, r, ErrGET)
		return
	}

	dailyColors, err := app.DailyColorRepo.GetAll()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	responses := lo.Map(dailyColors, func(dc models.DailyColor, _ int) models.DailyColorResponse {
		return models.NewDailyColorResponse(dc)
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(responses)
}

// POST /v1/admin/colors/generate - Manually generate today's color (Admin only)
func (app *Application) generateDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	existingColor, err := app.DailyColorRepo.GetToday()
	if err == nil && existingColor.ID != 0 {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Daily color already exists for today",
			"color":   models.NewDailyColorResponse(existingColor),
		})
		return
	}

	savedColor, err := app.Generator.GenerateDailyColor()
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Successfully generated daily color",
		"color":   models.NewDailyColorResponse(savedColor),
	})
}

// POST /v1/admin/colors/delete - Remove a daily color so it can be generated again (Admin only)
func (app *Application) deleteDailyColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		app.requirePostMethod(w, r, ErrPOST)
		return
	}

	req := &models.DailyColorDeleteRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		app.badJSONRequest(w, r, err)
		return
	}

	if err := app.DailyColorRepo.Delete(req.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Daily color deleted",
		"id":      req.ID,
	})
}
