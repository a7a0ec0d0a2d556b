package datemath

import "time"

// Match is a time expression found in free text together with its absolute instant.
type Match struct {
	Time time.Time // resolved instant in the parser's timezone
	Text string    // the lower-cased expression that was matched
}

// span marks the byte range of a matched fragment inside the lower-cased input.
type span struct {
	start, end int
}

// anchor is a resolved calendar day plus an optional default clock.
type anchor struct {
	year      int
	month     time.Month
	day       int
	clockHour int
	clockMin  int
	hasClock  bool
	span      span
}

// clock is a resolved time of day.
type clock struct {
	hour   int
	minute int
	span   span
}
