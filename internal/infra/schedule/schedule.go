package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

// ErrNoOccurrence is returned for a cron spec that parses but never fires, e.g. "0 0 30 2 *".
var ErrNoOccurrence = errors.New("cron spec has no occurrence")

// Schedule yields the time of the next generation pass.
type Schedule interface {
	Next(after time.Time) time.Time
	String() string
}

// Cron runs passes at the occurrences of a cron expression.
type Cron struct {
	spec     string
	schedule cron.Schedule
}

// NewCron parses a five-field cron spec.
// If tz is non-empty and the spec has no CRON_TZ=/TZ= prefix, it prepends CRON_TZ=<tz>.
// Defaults to UTC when no tz is given.
func NewCron(spec, tz string) (*Cron, error) {
	parsed, err := _parser.Parse(buildSpec(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	if parsed.Next(time.Now()).IsZero() {
		return nil, fmt.Errorf("cron spec %q: %w", spec, ErrNoOccurrence)
	}

	return &Cron{
		spec:     spec,
		schedule: parsed,
	}, nil
}

// Next returns the next occurrence strictly after `after`, or the zero time if there is none.
func (c *Cron) Next(after time.Time) time.Time {
	return c.schedule.Next(after)
}

func (c *Cron) String() string {
	return "cron " + c.spec
}

// Every runs passes at a fixed interval after the previous one finished.
type Every struct {
	interval time.Duration
}

func NewEvery(interval time.Duration) *Every {
	return &Every{interval: interval}
}

func (e *Every) Next(after time.Time) time.Time {
	return after.Add(e.interval)
}

func (e *Every) String() string {
	return "every " + e.interval.String()
}

// New returns a cron schedule when spec is set, otherwise a fixed interval.
func New(spec, tz string, interval time.Duration) (Schedule, error) {
	if spec == "" {
		return NewEvery(interval), nil
	}

	return NewCron(spec, tz)
}

func buildSpec(spec, tz string) string {
	hasTZPrefix := strings.HasPrefix(spec, "CRON_TZ=") ||
		strings.HasPrefix(spec, "TZ=")

	if tz != "" && !hasTZPrefix {
		return "CRON_TZ=" + tz + " " + spec
	}

	if !hasTZPrefix {
		return "CRON_TZ=UTC " + spec
	}

	return spec
}
