package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/models"
)

var errNoRows = datastore.NoRowsError{NoRows: true, Err: sql.ErrNoRows}

type memoryUsers struct {
	users   map[string]models.User
	devices map[string]models.UserDevice
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		users:   map[string]models.User{},
		devices: map[string]models.UserDevice{},
	}
}

func (m *memoryUsers) Create(user models.User) (models.User, error) {
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryUsers) Get(userID string) (models.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return models.User{}, errNoRows
	}
	return user, nil
}

func (m *memoryUsers) find(match func(models.User) bool) (models.User, error) {
	for _, user := range m.users {
		if match(user) {
			return user, nil
		}
	}
	return models.User{}, errNoRows
}

func (m *memoryUsers) GetUserByEmail(email string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m *memoryUsers) GetUserByUsername(username string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Username == username })
}

func (m *memoryUsers) DeleteUserByID(userID string) error {
	delete(m.users, userID)
	for key, device := range m.devices {
		if device.UserID == userID {
			delete(m.devices, key)
		}
	}
	return nil
}

func (m *memoryUsers) Update(user models.User) (models.User, error) {
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryUsers) ValidateAndGetUser(creds models.Credentials) (models.User, error) {
	user, err := m.GetUserByEmail(creds.Email)
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(creds.Password)); err != nil {
		return models.User{}, fmt.Errorf("error in compare of hash %v", err)
	}
	return user, nil
}

func (m *memoryUsers) GetAllUsers() ([]models.User, error) {
	var users []models.User
	for _, user := range m.users {
		users = append(users, user)
	}
	return users, nil
}

func (m *memoryUsers) CreateDevice(device models.UserDevice) error {
	key := device.UserID + "/" + device.Fingerprint
	device.ID = key
	m.devices[key] = device
	return nil
}

func (m *memoryUsers) GetDeviceByFingerprint(userID string, fingerprint string) (models.UserDevice, error) {
	device, ok := m.devices[userID+"/"+fingerprint]
	if !ok {
		return models.UserDevice{}, sql.ErrNoRows
	}
	return device, nil
}

func (m *memoryUsers) DeleteDevice(deviceID string) error {
	delete(m.devices, deviceID)
	return nil
}

type memoryDailyColors struct {
	colors []models.DailyColor
}

func (m *memoryDailyColors) Create(dc models.DailyColor) (models.DailyColor, error) {
	dc.ID = len(m.colors) + 1
	m.colors = append(m.colors, dc)
	return dc, nil
}

func (m *memoryDailyColors) GetByDate(date time.Time) (models.DailyColor, error) {
	for _, dc := range m.colors {
		if dc.Date.Equal(datastore.StartOfDay(date)) {
			return dc, nil
		}
	}
	return models.DailyColor{}, errNoRows
}

func (m *memoryDailyColors) GetToday() (models.DailyColor, error) {
	return m.GetByDate(time.Now())
}

func (m *memoryDailyColors) GetAll() ([]models.DailyColor, error) {
	return m.colors, nil
}

func (m *memoryDailyColors) Delete(id int) error {
	for i, dc := range m.colors {
		if dc.ID == id {
			m.colors = append(m.colors[:i], m.colors[i+1:]...)
			return nil
		}
	}
	return nil
}

type memorySwatches struct {
	nextID   int
	swatches []models.Swatch
}

func (m *memorySwatches) Create(s models.Swatch, limit int) (models.Swatch, error) {
	if owned, _ := m.GetByUser(s.UserID); len(owned) >= limit {
		return models.Swatch{}, datastore.ErrSwatchLimit
	}
	m.nextID++
	s.ID = m.nextID
	m.swatches = append(m.swatches, s)
	return s, nil
}

func (m *memorySwatches) Get(userID string, id int) (models.Swatch, error) {
	for _, s := range m.swatches {
		if s.UserID == userID && s.ID == id {
			return s, nil
		}
	}
	return models.Swatch{}, errNoRows
}

func (m *memorySwatches) GetByUser(userID string) ([]models.Swatch, error) {
	var owned []models.Swatch
	for _, s := range m.swatches {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID > owned[j].ID })
	return owned, nil
}

func (m *memorySwatches) Delete(userID string, id int) (int64, error) {
	for i, s := range m.swatches {
		if s.UserID == userID && s.ID == id {
			m.swatches = append(m.swatches[:i], m.swatches[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeGenerator struct {
	repo  *memoryDailyColors
	color models.DailyColor
	err   error
	calls int
}

func (g *fakeGenerator) GenerateDailyColor() (models.DailyColor, error) {
	g.calls++
	if g.err != nil {
		return models.DailyColor{}, g.err
	}
	return g.repo.Create(g.color)
}

type testEnv struct {
	app       *Application
	handler   http.Handler
	users     *memoryUsers
	colors    *memoryDailyColors
	swatches  *memorySwatches
	generator *fakeGenerator
}

func newTestEnv() *testEnv {
	users := newMemoryUsers()
	colors := &memoryDailyColors{}
	swatches := &memorySwatches{}
	generator := &fakeGenerator{
		repo: colors,
		color: models.DailyColor{
			Date:      datastore.StartOfDay(time.Now()),
			ColorName: "Tan",
			Red:       0.8,
			Green:     0.7,
			Blue:      0.6,
			Alpha:     1,
		},
	}

	app := &Application{
		Config: Config{
			JwtSecret:          "test-secret",
			JwtAccessDuration:  900,
			JwtRefreshDuration: 3600,
			AllowedOrigins:     []string{"https://swatchbook.example"},
			DevMode:            true,
		},
		UserRepo:       users,
		DailyColorRepo: colors,
		SwatchRepo:     swatches,
		Generator:      generator,
	}

	return &testEnv{
		app:       app,
		handler:   app.BuildRoutes(http.NewServeMux()),
		users:     users,
		colors:    colors,
		swatches:  swatches,
		generator: generator,
	}
}

// addUser stores a user and returns an access cookie for a registered device
func (env *testEnv) addUser(username, kind string) (models.User, *http.Cookie) {
	user, err := models.NewUser(models.UserSignupRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "hunter22",
	})
	if err != nil {
		panic(err)
	}
	user.Kind = kind
	env.users.Create(user)

	env.users.CreateDevice(models.UserDevice{
		UserID:      user.UserID,
		Fingerprint: "test-device",
		Expiry:      time.Now().Add(time.Hour),
	})

	token, err := models.NewJWTClaims(user, "test-device", models.JWT.AUTH_SCOPE, models.JWT.ACCESS_COOKIE_NAME, time.Now().Add(time.Hour)).Sign(env.app.Config.JwtSecret)
	if err != nil {
		panic(err)
	}

	return user, &http.Cookie{Name: models.JWT.ACCESS_COOKIE_NAME, Value: token}
}

func (env *testEnv) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](rec *httptest.ResponseRecorder) T {
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		panic(errors.New("decoding response: " + err.Error() + " body: " + rec.Body.String()))
	}
	return out
}
