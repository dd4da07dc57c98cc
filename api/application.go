package api

import (
	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/models"
)

type Config struct {
	HTTPPort           string
	DatabaseType       string
	DatabaseHost       string
	DatabaseUser       string
	DatabasePassword   string
	DatabaseName       string
	SSLMode            string
	MigrationsDir      string
	ColorAPIURL        string
	JwtSecret          string
	JwtAccessDuration  int // seconds
	JwtRefreshDuration int // seconds
	JwtDomain          string
	AllowedOrigins     []string
	DevMode            bool
	LogLevel           string
	LogJSON            bool
}

// DailyColorGenerator produces today's color on demand
type DailyColorGenerator interface {
	GenerateDailyColor() (models.DailyColor, error)
}

type Application struct {
	Config         Config
	UserRepo       datastore.UserRepository
	DailyColorRepo datastore.DailyColorRepository
	SwatchRepo     datastore.SwatchRepository
	Generator      DailyColorGenerator
}
