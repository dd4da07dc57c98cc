package scheduler

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/color-game/swatchbook/datastore"
	"github.com/color-game/swatchbook/models"
	"github.com/color-game/swatchbook/notation"
)

// DefaultColorAPIURL is thecolorapi.com's color identification endpoint
const DefaultColorAPIURL = "https://www.thecolorapi.com/id"

type Scheduler struct {
	DailyColorRepo datastore.DailyColorRepository
	ColorAPIURL    string
	Client         *http.Client

	mu      sync.Mutex
	timer   *time.Timer
	ticker  *time.Ticker
	stopped bool
	done    chan struct{}
}

func NewScheduler(repo datastore.DailyColorRepository, colorAPIURL string) *Scheduler {
	if colorAPIURL == "" {
		colorAPIURL = DefaultColorAPIURL
	}
	return &Scheduler{
		DailyColorRepo: repo,
		ColorAPIURL:    colorAPIURL,
		Client:         &http.Client{Timeout: 10 * time.Second},
		done:           make(chan struct{}),
	}
}

// Start begins the scheduler to run at midnight every day
func (s *Scheduler) Start() {
	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := datastore.StartOfDay(now).AddDate(0, 0, 1)
	durationUntilMidnight := nextMidnight.Sub(now)

	log.WithField("in", durationUntilMidnight.Round(time.Second)).Info("Scheduler started, waiting for next daily color generation")

	s.schedule(durationUntilMidnight, 24*time.Hour)
}

// schedule generates once after first, then on every tick of every until Stop
func (s *Scheduler) schedule(first, every time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.timer = time.AfterFunc(first, func() {
		s.generate()

		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		s.ticker = time.NewTicker(every)
		ticks := s.ticker.C
		s.mu.Unlock()

		go func() {
			for {
				select {
				case <-ticks:
					s.generate()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop cancels a pending first run and ends the daily ticker. It is safe to call twice.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
	log.Info("Scheduler stopped")
}

func (s *Scheduler) generate() {
	if _, err := s.GenerateDailyColor(); err != nil {
		log.WithError(err).Error("Daily color generation failed")
	}
}

// GenerateDailyColor generates and saves today's color, or returns the one already stored
func (s *Scheduler) GenerateDailyColor() (models.DailyColor, error) {
	log.Debug("Generating daily color...")

	today := datastore.StartOfDay(time.Now())

	existingColor, err := s.DailyColorRepo.GetByDate(today)
	if err == nil && existingColor.ID != 0 {
		log.WithFields(log.Fields{
			"date":  today.Format("2006-01-02"),
			"color": existingColor.ColorName,
		}).Info("Daily color already exists")
		return existingColor, nil
	}

	r, g, b := rand.Intn(256), rand.Intn(256), rand.Intn(256)
	seed := notation.FromBytes(uint8(r), uint8(g), uint8(b), 1)

	name, color, err := s.lookup(r, g, b)
	if err != nil {
		log.WithError(err).Warn("Color API unavailable, naming color locally")
		name, color = LocalName(seed), seed
	}

	dailyColor := models.DailyColor{
		Date:      today,
		ColorName: name,
		Red:       color.Red,
		Green:     color.Green,
		Blue:      color.Blue,
		Alpha:     color.Alpha,
		CreatedAt: time.Now(),
	}

	savedColor, err := s.DailyColorRepo.Create(dailyColor)
	if err != nil {
		return models.DailyColor{}, fmt.Errorf("error saving daily color: %v", err)
	}

	log.WithFields(log.Fields{
		"date":  savedColor.Date.Format("2006-01-02"),
		"color": savedColor.ColorName,
		"css":   notation.CSSString(savedColor.Color()),
	}).Info("Generated daily color")

	return savedColor, nil
}

// lookup asks the color API to name an RGB triple and returns the name with the hex it reports
func (s *Scheduler) lookup(r, g, b int) (string, notation.Color, error) {
	url := fmt.Sprintf("%s?rgb=%d,%d,%d&format=json", s.ColorAPIURL, r, g, b)

	resp, err := s.Client.Get(url)
	if err != nil {
		return "", notation.Color{}, fmt.Errorf("error fetching color: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", notation.Color{}, fmt.Errorf("color API returned status: %d", resp.StatusCode)
	}

	var colorResponse models.ColorAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&colorResponse); err != nil {
		return "", notation.Color{}, fmt.Errorf("error parsing color API response: %v", err)
	}

	if colorResponse.Name.Value == "" {
		return "", notation.Color{}, fmt.Errorf("color API returned no name for %s", url)
	}

	color, err := notation.Parse(colorResponse.Hex.Value)
	if err != nil {
		return "", notation.Color{}, fmt.Errorf("color API returned bad hex: %w", err)
	}

	return colorResponse.Name.Value, color, nil
}
