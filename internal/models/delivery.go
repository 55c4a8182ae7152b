package models

import (
	"fmt"
	"time"
)

const DefaultDeliveryHour = "18:00"

// DeliverySelection is the chosen delivery slot, independent of the cart.
type DeliverySelection struct {
	Date time.Time `json:"date"`
	Time string    `json:"time"` // "HH:MM"
}

// DefaultDelivery returns the next Monday strictly after now, at the fixed
// evening time.
func DefaultDelivery(now time.Time) DeliverySelection {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := now.AddDate(0, 0, days)
	return DeliverySelection{
		Date: time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()),
		Time: DefaultDeliveryHour,
	}
}

// Validate rejects dates earlier than the current calendar date.
func (s DeliverySelection) Validate(now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if s.Date.Before(today) {
		return fmt.Errorf("delivery date %s is in the past", s.Date.Format("2006-01-02"))
	}
	if _, err := time.Parse("15:04", s.Time); err != nil {
		return fmt.Errorf("invalid delivery time %q", s.Time)
	}
	return nil
}

func (s DeliverySelection) DateString() string {
	return s.Date.Format("2006-01-02")
}

// At combines the date and time-of-day into a single instant.
func (s DeliverySelection) At() time.Time {
	t, err := time.Parse("15:04", s.Time)
	if err != nil {
		return s.Date
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), t.Hour(), t.Minute(), 0, 0, s.Date.Location())
}
