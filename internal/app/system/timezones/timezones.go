// Package timezones resolves the school timezone that defines "today".
package timezones

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Default is used when no school timezone is configured.
const Default = "UTC"

// ErrUnknownZone is returned for IANA names the host cannot load.
var ErrUnknownZone = errors.New("unknown timezone")

// Zone is a curated IANA zone with a human label.
type Zone struct {
	ID    string
	Label string
}

var curated = []Zone{
	{"UTC", "Coordinated Universal Time"},
	{"America/New_York", "Eastern Time (US & Canada)"},
	{"America/Chicago", "Central Time (US & Canada)"},
	{"America/Denver", "Mountain Time (US & Canada)"},
	{"America/Phoenix", "Arizona"},
	{"America/Los_Angeles", "Pacific Time (US & Canada)"},
	{"America/Anchorage", "Alaska"},
	{"Pacific/Honolulu", "Hawaii"},
	{"Europe/London", "London"},
	{"Europe/Berlin", "Central European Time"},
	{"Africa/Lagos", "West Africa Time"},
	{"Africa/Nairobi", "East Africa Time"},
	{"Asia/Kolkata", "India Standard Time"},
	{"Asia/Jakarta", "Western Indonesia Time"},
	{"Asia/Singapore", "Singapore"},
	{"Asia/Tokyo", "Japan"},
	{"Australia/Sydney", "Sydney"},
}

var (
	mu    sync.Mutex
	cache = map[string]*time.Location{}
)

// Label returns the human-friendly label for an ID, or the ID itself if not curated.
func Label(id string) string {
	for _, z := range curated {
		if z.ID == id {
			return z.Label
		}
	}
	return id
}

// Resolve loads the named location. An empty name resolves to UTC.
// "Local" is rejected: the server's own zone is not a school setting.
// Loaded locations are cached.
func Resolve(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = Default
	}
	if strings.EqualFold(id, "local") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, id)
	}

	mu.Lock()
	defer mu.Unlock()
	if loc, ok := cache[id]; ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, id, err)
	}
	cache[id] = loc
	return loc, nil
}
