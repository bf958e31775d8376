package domain

import (
	"fmt"
	"time"
)

// Slot is one monitored check-in time-of-day. Token is the numeric form the
// front end and the cron-ping use (930, 1600, ...); Label is the exact string
// stored inside a booking's check-in field ("09:30 AM", ...). The reminder
// query matches on the label byte-for-byte, so the label set here and the set
// the front end writes must stay in sync.
type Slot struct {
	Token int
	Label string
}

// Schedule is the immutable scan configuration: the monitored slots and the
// fixed zone all date arithmetic happens in.
type Schedule struct {
	Slots    []Slot
	Location *time.Location
}

// DefaultSchedule returns the compiled-in schedule: three daily slots in
// UTC+5:30.
func DefaultSchedule() Schedule {
	return Schedule{
		Slots: []Slot{
			{Token: 930, Label: "09:30 AM"},
			{Token: 1600, Label: "04:00 PM"},
			{Token: 1730, Label: "05:30 PM"},
		},
		Location: time.FixedZone("UTC+05:30", 5*3600+30*60),
	}
}

// SlotLabel maps a slot token to its canonical label.
func (s Schedule) SlotLabel(token int) (string, bool) {
	for _, slot := range s.Slots {
		if slot.Token == token {
			return slot.Label, true
		}
	}
	return "", false
}

// Clock splits the token into its 24h wall-clock parts (930 -> 9, 30).
func (s Slot) Clock() (hour, minute int) {
	return s.Token / 100, s.Token % 100
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the display name for m from a fixed table.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// CheckInString renders the check-in field exactly the way the front end
// writes it: "16 January 2021, 09:30 AM".
func CheckInString(t time.Time, label string) string {
	return fmt.Sprintf("%02d %s %d, %s", t.Day(), MonthName(t.Month()), t.Year(), label)
}
