package countdown

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// TimeRemaining всегда пересчитывается целиком из длительности, поля не бывают отрицательными.
type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

func Split(d time.Duration) TimeRemaining {
	total := int64(d / time.Second)
	if total <= 0 {
		return TimeRemaining{}
	}

	return TimeRemaining{
		Days:    int(total / secondsPerDay),
		Hours:   int(total % secondsPerDay / secondsPerHour),
		Minutes: int(total % secondsPerHour / secondsPerMinute),
		Seconds: int(total % secondsPerMinute),
	}
}

func (t TimeRemaining) TotalSeconds() int64 {
	return int64(t.Days)*secondsPerDay + int64(t.Hours)*secondsPerHour + int64(t.Minutes)*secondsPerMinute + int64(t.Seconds)
}

func (t TimeRemaining) IsZero() bool {
	return t == TimeRemaining{}
}

func (t TimeRemaining) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", t.Days, t.Hours, t.Minutes, t.Seconds)
}

type Countdown struct {
	target time.Time
}

// New принимает уже скорректированный момент (config.Countdown.TargetInstant).
func New(target time.Time) *Countdown {
	return &Countdown{target: target}
}

func (c *Countdown) Target() time.Time {
	return c.target
}

// Remaining возвращает остаток и done=true, когда до цели не осталось ни одной миллисекунды.
func (c *Countdown) Remaining(now time.Time) (TimeRemaining, bool) {
	diff := c.target.Sub(now)
	if diff <= 0 {
		return TimeRemaining{}, true
	}

	return Split(diff), false
}
