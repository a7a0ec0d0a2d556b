package datemath

import (
	"regexp"
	"time"
)

// Default clocks for day-part words.
const (
	TonightHour   = 20
	MorningHour   = 9
	AfternoonHour = 15
	EveningHour   = 18
)

// Bounds on relative durations. Anything larger cannot be resolved to a
// representable instant.
const (
	MaxDurationAmount = 1_000_000
	MaxYear           = 9999
)

var (
	halfHourRe = regexp.MustCompile(`\b(?:in|after)\s+half\s+an?\s+hour\b`)
	durationRe = regexp.MustCompile(`\b(?:in|after)\s+(\d+|an?|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+(minutes?|mins?|hours?|hrs?|days?|weeks?|months?|years?)\b`)

	dayAfterTomorrowRe = regexp.MustCompile(`\bday after tomorrow\b`)
	tomorrowRe         = regexp.MustCompile(`\btomorrow\b`)
	tonightRe          = regexp.MustCompile(`\btonight\b`)
	todayRe            = regexp.MustCompile(`\btoday\b`)
	weekdayRe          = regexp.MustCompile(`\b(?:(this|next|on)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	isoDateRe          = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	monthDayRe         = regexp.MustCompile(`\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	dayMonthRe         = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\b`)

	meridiemRe = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	hhmmRe     = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	atHourRe   = regexp.MustCompile(`\bat\s+(\d{1,2})\b`)
	noonRe     = regexp.MustCompile(`\bnoon\b`)
	midnightRe = regexp.MustCompile(`\bmidnight\b`)
	dayPartRe  = regexp.MustCompile(`\b(?:this|in the)\s+(morning|afternoon|evening)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}

var dayPartHours = map[string]int{
	"morning":   MorningHour,
	"afternoon": AfternoonHour,
	"evening":   EveningHour,
}
