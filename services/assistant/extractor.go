package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"venuely/models"
)

// Extractor pulls booking details out of free-form text. It is a set of
// ordered keyword and pattern rules, not a grammar: each field is scanned
// independently and absence is never an error.
type Extractor struct {
	venues []string
}

// NewExtractor builds an extractor over the given venue catalog. An empty
// catalog falls back to the default venue list.
func NewExtractor(venues []string) *Extractor {
	if len(venues) == 0 {
		venues = models.DefaultVenues
	}
	return &Extractor{venues: venues}
}

var (
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	timeRangeRe   = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(?:to|until|till)\s*(\d{1,2})(?::(\d{2}))?\b`)
	// Afternoon/evening markers. "pm" only counts when it trails a digit so
	// that ordinary words containing the letters don't shift the clock.
	afternoonRe = regexp.MustCompile(`(?i)\b(?:afternoon|evening|tonight)\b|\d\s*(?:pm|p\.m\.)`)
)

// purposeKeywords in scan order; the earliest occurrence in the text wins.
var purposeKeywords = []string{"for", "meeting", "event", "lecture", "presentation"}

var purposeRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(purposeKeywords))
	for _, kw := range purposeKeywords {
		res[kw] = regexp.MustCompile(`\b` + kw + `\b`)
	}
	return res
}()

// Extract parses a single utterance into a partial intent. It returns nil
// only when none of venue, date, or time could be found; otherwise missing
// fields stay unset and the caller decides what to ask next.
func (e *Extractor) Extract(text string, now time.Time) *models.ParsedIntent {
	intent := &models.ParsedIntent{}

	intent.Venue = e.matchVenue(text)
	intent.Date = matchDate(text, now)
	intent.Start, intent.End = matchTimeRange(text)
	intent.Purpose = matchPurpose(text)

	if intent.Venue == "" && intent.Date == "" && intent.Start == nil {
		return nil
	}
	return intent
}

// matchVenue returns the first catalog entry contained in the text, in
// catalog order. No scoring; earlier entries win.
func (e *Extractor) matchVenue(text string) string {
	lower := strings.ToLower(text)
	for _, venue := range e.venues {
		if strings.Contains(lower, strings.ToLower(venue)) {
			return venue
		}
	}
	return ""
}

// matchDate resolves a date in priority order: relative keywords first
// ("day after tomorrow" before "tomorrow", since the former contains the
// latter), then a numeric month/day in the current year.
func matchDate(text string, now time.Time) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "day after tomorrow") {
		return now.AddDate(0, 0, 2).Format("2006-01-02")
	}
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}

	if m := numericDateRe.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			d := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, now.Location())
			// Reject overflow like 2/31 rolling into March.
			if int(d.Month()) == month && d.Day() == day {
				return d.Format("2006-01-02")
			}
		}
	}
	return ""
}

// matchTimeRange captures "H[:MM] to H[:MM]". An afternoon/evening marker
// anywhere in the text shifts hours 1-11 by +12 for both ends; after that, an
// end hour earlier than the start hour is assumed to be in the next 12-hour
// block. This is a heuristic, not a full 12/24h parser: mixed-period ranges
// like "11 to 2 afternoon" resolve to 23:00-14:00 and are dropped below.
func matchTimeRange(text string) (*int, *int) {
	m := timeRangeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	startHour, _ := strconv.Atoi(m[1])
	startMinute := 0
	if m[2] != "" {
		startMinute, _ = strconv.Atoi(m[2])
	}
	endHour, _ := strconv.Atoi(m[3])
	endMinute := 0
	if m[4] != "" {
		endMinute, _ = strconv.Atoi(m[4])
	}

	if afternoonRe.MatchString(text) {
		if startHour >= 1 && startHour < 12 {
			startHour += 12
		}
		if endHour >= 1 && endHour < 12 {
			endHour += 12
		}
	}
	if endHour < startHour {
		endHour += 12
	}

	if startHour > 23 || endHour > 23 || startMinute > 59 || endMinute > 59 {
		return nil, nil
	}

	start := startHour*60 + startMinute
	end := endHour*60 + endMinute
	return &start, &end
}

// matchPurpose takes the keyword-trimmed remainder of the text from the
// earliest purpose keyword. A meeting keyword with no usable trailing clause
// yields "meeting"; no keyword at all yields "".
func matchPurpose(text string) string {
	lower := strings.ToLower(text)

	earliest := -1
	var matched string
	for _, kw := range purposeKeywords {
		loc := purposeRes[kw].FindStringIndex(lower)
		if loc != nil && (earliest == -1 || loc[0] < earliest) {
			earliest = loc[0]
			matched = kw
		}
	}
	if earliest == -1 {
		return ""
	}

	purpose := strings.TrimSpace(text[earliest:])
	if matched == "for" {
		// "for" is a function word, not part of the purpose itself.
		purpose = strings.TrimSpace(purpose[len("for"):])
	}
	if purpose == "" {
		if strings.Contains(lower, "meeting") {
			return "meeting"
		}
		return ""
	}
	return purpose
}

// CanonicalText renders a complete intent back into a parseable utterance.
// Extracting it again yields the same intent, provided the date falls in the
// current year.
func CanonicalText(intent models.BookingIntent) string {
	date, _ := time.Parse("2006-01-02", intent.Date)
	return fmt.Sprintf("%s %d/%d %s to %s for %s",
		intent.Venue, int(date.Month()), date.Day(),
		models.MinutesToClock(intent.Start), models.MinutesToClock(intent.End),
		intent.Purpose)
}
