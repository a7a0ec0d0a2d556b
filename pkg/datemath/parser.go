package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Parser finds natural-language time expressions in text and resolves them
// to absolute instants. Ambiguous expressions resolve to the next future occurrence.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Extract finds the first time expression in text and resolves it against baseTime.
// A relative duration ("in 2 hours") wins over anything else in the text; otherwise
// at most one day anchor and one clock time are combined.
func (p *Parser) Extract(text string, baseTime time.Time) (Match, bool) {
	lower := strings.ToLower(text)
	base := baseTime.In(p.location)

	if m, ok := p.matchDuration(lower, base); ok {
		return m, true
	}
	if durationRe.MatchString(lower) {
		// a duration out of range grounds nothing
		return Match{}, false
	}

	day, hasDay := p.matchAnchor(lower, base)
	clk, hasClock := matchClock(lower)
	if !hasDay && !hasClock {
		return Match{}, false
	}

	var t time.Time
	var spans []span
	switch {
	case hasDay && hasClock:
		t = time.Date(day.year, day.month, day.day, clk.hour, clk.minute, 0, 0, p.location)
		spans = []span{day.span, clk.span}
	case hasDay:
		if day.hasClock {
			t = time.Date(day.year, day.month, day.day, day.clockHour, day.clockMin, 0, 0, p.location)
		} else {
			t = time.Date(day.year, day.month, day.day, base.Hour(), base.Minute(), base.Second(), 0, p.location)
		}
		spans = []span{day.span}
	default:
		t = time.Date(base.Year(), base.Month(), base.Day(), clk.hour, clk.minute, 0, 0, p.location)
		if !t.After(base) {
			t = t.AddDate(0, 0, 1)
		}
		spans = []span{clk.span}
	}

	return Match{Time: t, Text: cover(lower, spans)}, true
}

// matchDuration handles "in 3 days", "after two hours", "in an hour", "in half an hour".
func (p *Parser) matchDuration(lower string, base time.Time) (Match, bool) {
	if loc := halfHourRe.FindStringIndex(lower); loc != nil {
		return Match{Time: base.Add(30 * time.Minute), Text: lower[loc[0]:loc[1]]}, true
	}

	loc := durationRe.FindStringSubmatchIndex(lower)
	if loc == nil {
		return Match{}, false
	}

	amountStr := lower[loc[2]:loc[3]]
	unit := lower[loc[4]:loc[5]]

	amount, ok := numberWords[amountStr]
	if !ok {
		n, err := strconv.Atoi(amountStr)
		if err != nil || n > MaxDurationAmount {
			return Match{}, false
		}
		amount = n
	}

	var t time.Time
	switch {
	case strings.HasPrefix(unit, "min"):
		t = base.Add(time.Duration(amount) * time.Minute)
	case strings.HasPrefix(unit, "h"):
		t = base.Add(time.Duration(amount) * time.Hour)
	case strings.HasPrefix(unit, "day"):
		t = base.AddDate(0, 0, amount)
	case strings.HasPrefix(unit, "week"):
		t = base.AddDate(0, 0, amount*7)
	case strings.HasPrefix(unit, "month"):
		t = base.AddDate(0, amount, 0)
	case strings.HasPrefix(unit, "year"):
		t = base.AddDate(amount, 0, 0)
	default:
		return Match{}, false
	}
	if t.Before(base) || t.Year() > MaxYear {
		return Match{}, false
	}

	return Match{Time: t, Text: lower[loc[0]:loc[1]]}, true
}

// matchAnchor resolves the first calendar-day expression.
func (p *Parser) matchAnchor(lower string, base time.Time) (anchor, bool) {
	if loc := dayAfterTomorrowRe.FindStringIndex(lower); loc != nil {
		return p.dayOffset(base, 2, loc), true
	}
	if loc := tomorrowRe.FindStringIndex(lower); loc != nil {
		return p.dayOffset(base, 1, loc), true
	}
	if loc := tonightRe.FindStringIndex(lower); loc != nil {
		a := p.dayOffset(base, 0, loc)
		a.clockHour, a.clockMin, a.hasClock = TonightHour, 0, true
		return a, true
	}
	if loc := todayRe.FindStringIndex(lower); loc != nil {
		return p.dayOffset(base, 0, loc), true
	}
	if a, ok := p.matchWeekday(lower, base); ok {
		return a, true
	}
	if a, ok := p.matchISODate(lower); ok {
		return a, true
	}
	return p.matchMonthDay(lower, base)
}

func (p *Parser) dayOffset(base time.Time, days int, loc []int) anchor {
	d := base.AddDate(0, 0, days)
	return anchor{year: d.Year(), month: d.Month(), day: d.Day(), span: span{loc[0], loc[1]}}
}

// matchWeekday handles "friday", "on friday", "next friday", "this friday".
// Only "this <today>" resolves to today; every other form rolls to the upcoming week.
func (p *Parser) matchWeekday(lower string, base time.Time) (anchor, bool) {
	loc := weekdayRe.FindStringSubmatchIndex(lower)
	if loc == nil {
		return anchor{}, false
	}

	qualifier := ""
	if loc[2] >= 0 {
		qualifier = lower[loc[2]:loc[3]]
	}
	target := weekdays[lower[loc[4]:loc[5]]]

	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && qualifier != "this") {
		daysUntil += 7
	}

	return p.dayOffset(base, daysUntil, loc[:2]), true
}

func (p *Parser) matchISODate(lower string) (anchor, bool) {
	loc := isoDateRe.FindStringSubmatchIndex(lower)
	if loc == nil {
		return anchor{}, false
	}
	year, _ := strconv.Atoi(lower[loc[2]:loc[3]])
	month, _ := strconv.Atoi(lower[loc[4]:loc[5]])
	day, _ := strconv.Atoi(lower[loc[6]:loc[7]])
	if !validDate(year, time.Month(month), day) {
		return anchor{}, false
	}
	return anchor{year: year, month: time.Month(month), day: day, span: span{loc[0], loc[1]}}, true
}

// matchMonthDay handles "dec 25", "december 25th", "25th of december".
// A date already past this year resolves to next year.
func (p *Parser) matchMonthDay(lower string, base time.Time) (anchor, bool) {
	var monthName, dayStr string
	var whole []int
	if loc := monthDayRe.FindStringSubmatchIndex(lower); loc != nil {
		monthName, dayStr, whole = lower[loc[2]:loc[3]], lower[loc[4]:loc[5]], loc[:2]
	} else if loc := dayMonthRe.FindStringSubmatchIndex(lower); loc != nil {
		dayStr, monthName, whole = lower[loc[2]:loc[3]], lower[loc[4]:loc[5]], loc[:2]
	} else {
		return anchor{}, false
	}

	month := monthFromName(monthName)
	day, _ := strconv.Atoi(dayStr)
	year := base.Year()
	if !validDate(year, month, day) || time.Date(year, month, day, 23, 59, 59, 0, p.location).Before(base) {
		year++
	}
	if !validDate(year, month, day) {
		return anchor{}, false
	}
	return anchor{year: year, month: month, day: day, span: span{whole[0], whole[1]}}, true
}

// matchClock resolves the first time-of-day expression.
func matchClock(lower string) (clock, bool) {
	if loc := meridiemRe.FindStringSubmatchIndex(lower); loc != nil {
		hour, _ := strconv.Atoi(lower[loc[2]:loc[3]])
		minute := 0
		if loc[4] >= 0 {
			minute, _ = strconv.Atoi(lower[loc[4]:loc[5]])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return clock{}, false
		}
		if lower[loc[6]:loc[7]] == "pm" && hour != 12 {
			hour += 12
		} else if lower[loc[6]:loc[7]] == "am" && hour == 12 {
			hour = 0
		}
		return clock{hour: hour, minute: minute, span: span{loc[0], loc[1]}}, true
	}
	if loc := hhmmRe.FindStringSubmatchIndex(lower); loc != nil {
		hour, _ := strconv.Atoi(lower[loc[2]:loc[3]])
		minute, _ := strconv.Atoi(lower[loc[4]:loc[5]])
		if hour > 23 || minute > 59 {
			return clock{}, false
		}
		return clock{hour: hour, minute: minute, span: span{loc[0], loc[1]}}, true
	}
	if loc := atHourRe.FindStringSubmatchIndex(lower); loc != nil {
		hour, _ := strconv.Atoi(lower[loc[2]:loc[3]])
		if hour > 23 {
			return clock{}, false
		}
		return clock{hour: hour, span: span{loc[0], loc[1]}}, true
	}
	if loc := noonRe.FindStringIndex(lower); loc != nil {
		return clock{hour: 12, span: span{loc[0], loc[1]}}, true
	}
	if loc := midnightRe.FindStringIndex(lower); loc != nil {
		return clock{hour: 0, span: span{loc[0], loc[1]}}, true
	}
	if loc := dayPartRe.FindStringSubmatchIndex(lower); loc != nil {
		return clock{hour: dayPartHours[lower[loc[2]:loc[3]]], span: span{loc[0], loc[1]}}, true
	}
	return clock{}, false
}

// cover returns the text between the earliest start and latest end of spans.
func cover(lower string, spans []span) string {
	start, end := spans[0].start, spans[0].end
	for _, s := range spans[1:] {
		if s.start < start {
			start = s.start
		}
		if s.end > end {
			end = s.end
		}
	}
	return strings.TrimSpace(lower[start:end])
}

func monthFromName(name string) time.Month {
	switch name[:3] {
	case "jan":
		return time.January
	case "feb":
		return time.February
	case "mar":
		return time.March
	case "apr":
		return time.April
	case "may":
		return time.May
	case "jun":
		return time.June
	case "jul":
		return time.July
	case "aug":
		return time.August
	case "sep":
		return time.September
	case "oct":
		return time.October
	case "nov":
		return time.November
	default:
		return time.December
	}
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Month() == month && t.Day() == day
}
