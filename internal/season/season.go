// Package season maps wall-clock time to the farm's four seasons.
//
// One in-game "year" passes every day. The hour of day, in the location of
// the supplied time, selects the season:
//
//	00:00-09:59  Spring
//	10:00-12:59  Summer
//	13:00-14:59  Autumn
//	15:00-23:59  Winter
package season

import (
	"strings"
	"time"

	"github.com/osse101/PlotFarm_Go/internal/domain"
)

// Hour boundaries (exclusive upper bounds)
const (
	springEndHour = 10
	summerEndHour = 13
	autumnEndHour = 15
)

// Current returns the season for now.
func Current(now time.Time) domain.Season {
	return ForHour(now.Hour())
}

// ForHour returns the season for an hour of day in [0, 24).
func ForHour(hour int) domain.Season {
	switch {
	case hour < springEndHour:
		return domain.SeasonSpring
	case hour < summerEndHour:
		return domain.SeasonSummer
	case hour < autumnEndHour:
		return domain.SeasonAutumn
	default:
		return domain.SeasonWinter
	}
}

// All lists the four seasons in calendar order.
func All() []domain.Season {
	out := make([]domain.Season, len(domain.AllSeasons))
	copy(out, domain.AllSeasons)
	return out
}

// Parse resolves a season label, ignoring case.
func Parse(label string) (domain.Season, bool) {
	for _, s := range domain.AllSeasons {
		if strings.EqualFold(string(s), strings.TrimSpace(label)) {
			return s, true
		}
	}
	return "", false
}
