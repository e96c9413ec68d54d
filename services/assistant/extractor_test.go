package assistant

import (
	"testing"
	"time"

	"venuely/models"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func testExtractor() *Extractor {
	return NewExtractor([]string{"Room A", "Room B", "Music Room", "Hall"})
}

func TestExtractFullUtterance(t *testing.T) {
	ext := testExtractor()

	got := ext.Extract("I'd like to book Room A tomorrow afternoon 2 to 4 for a meeting", testNow)
	require.NotNil(t, got)
	require.Equal(t, "Room A", got.Venue)
	require.Equal(t, "2026-05-02", got.Date)
	require.NotNil(t, got.Start)
	require.Equal(t, 14*60, *got.Start)
	require.Equal(t, 16*60, *got.End)
	require.Equal(t, "a meeting", got.Purpose)
}

func TestExtractNothingUsable(t *testing.T) {
	ext := testExtractor()

	require.Nil(t, ext.Extract("hello there", testNow))
	require.Nil(t, ext.Extract("what's the weather like", testNow))
	// A lone purpose keyword is not enough to start an intent.
	require.Nil(t, ext.Extract("this is for fun", testNow))
}

func TestExtractPartialUtterance(t *testing.T) {
	ext := testExtractor()

	got := ext.Extract("I want the Music Room", testNow)
	require.NotNil(t, got)
	require.Equal(t, "Music Room", got.Venue)
	require.Empty(t, got.Date)
	require.Nil(t, got.Start)

	got = ext.Extract("tomorrow please", testNow)
	require.NotNil(t, got)
	require.Empty(t, got.Venue)
	require.Equal(t, "2026-05-02", got.Date)
}

func TestMatchVenueCatalogOrder(t *testing.T) {
	ext := testExtractor()

	// Both Room A and Room B appear; the earlier catalog entry wins.
	require.Equal(t, "Room A", ext.matchVenue("room b or room a, either works"))
	require.Equal(t, "Room A", ext.matchVenue("I'd like ROOM A please"))
	require.Equal(t, "", ext.matchVenue("the gym"))
}

func TestMatchDateRelativeKeywords(t *testing.T) {
	require.Equal(t, "2026-05-02", matchDate("tomorrow", testNow))
	require.Equal(t, "2026-05-03", matchDate("the day after tomorrow", testNow))
	// "day after tomorrow" must win even though it contains "tomorrow".
	require.Equal(t, "2026-05-03", matchDate("book it day after tomorrow", testNow))
}

func TestMatchDateNumeric(t *testing.T) {
	require.Equal(t, "2026-12-25", matchDate("12/25 would be great", testNow))
	require.Equal(t, "2026-06-05", matchDate("how about 6/5", testNow))
	// Relative keywords take priority over a numeric date.
	require.Equal(t, "2026-05-02", matchDate("tomorrow not 12/25", testNow))
	// Impossible calendar dates are rejected rather than rolled over.
	require.Equal(t, "", matchDate("2/31 maybe", testNow))
	require.Equal(t, "", matchDate("13/5", testNow))
}

func TestMatchTimeRangePlain(t *testing.T) {
	start, end := matchTimeRange("from 14:00 to 16:00")
	require.NotNil(t, start)
	require.Equal(t, 14*60, *start)
	require.Equal(t, 16*60, *end)

	start, end = matchTimeRange("9 to 11")
	require.Equal(t, 9*60, *start)
	require.Equal(t, 11*60, *end)

	start, _ = matchTimeRange("no times here")
	require.Nil(t, start)
}

func TestMatchTimeRangeAfternoonShift(t *testing.T) {
	start, end := matchTimeRange("afternoon 2 to 4")
	require.Equal(t, 14*60, *start)
	require.Equal(t, 16*60, *end)

	start, end = matchTimeRange("2 to 4 pm")
	require.Equal(t, 14*60, *start)
	require.Equal(t, 16*60, *end)

	// Already-24h times are left alone even with a marker present.
	start, end = matchTimeRange("this evening 19:00 to 21:00")
	require.Equal(t, 19*60, *start)
	require.Equal(t, 21*60, *end)
}

func TestMatchTimeRangeWrapsShortEnd(t *testing.T) {
	// Without a marker, an end before the start rolls into the next block.
	start, end := matchTimeRange("10 to 1")
	require.Equal(t, 10*60, *start)
	require.Equal(t, 13*60, *end)

	start, end = matchTimeRange("11:30 to 1:15")
	require.Equal(t, 11*60+30, *start)
	require.Equal(t, 13*60+15, *end)
}

func TestMatchTimeRangeRejectsOutOfRange(t *testing.T) {
	// "11 to 2" with an afternoon marker shifts to 23 to 14, then wraps the
	// end past midnight; the whole range is dropped.
	start, end := matchTimeRange("afternoon 11 to 2")
	require.Nil(t, start)
	require.Nil(t, end)

	start, _ = matchTimeRange("25 to 3")
	require.Nil(t, start)
}

func TestMatchPurpose(t *testing.T) {
	require.Equal(t, "a staff meeting", matchPurpose("book it for a staff meeting"))
	require.Equal(t, "meeting with parents", matchPurpose("we have a meeting with parents"))
	// Earliest keyword wins: "for" precedes "lecture".
	require.Equal(t, "the guest lecture", matchPurpose("reserve it for the guest lecture"))
	require.Equal(t, "", matchPurpose("just a quick booking"))
	// A bare trailing "for" carries no usable clause.
	require.Equal(t, "", matchPurpose("that's what it's for"))
}

func TestExtractRoundTrip(t *testing.T) {
	ext := testExtractor()

	original := models.BookingIntent{
		Venue:   "Music Room",
		Date:    "2026-12-25",
		Start:   14 * 60,
		End:     16 * 60,
		Purpose: "band practice",
	}
	got := ext.Extract(CanonicalText(original), testNow)
	require.NotNil(t, got)
	require.Equal(t, original.Venue, got.Venue)
	require.Equal(t, original.Date, got.Date)
	require.Equal(t, original.Start, *got.Start)
	require.Equal(t, original.End, *got.End)
}

func TestExtractIdempotent(t *testing.T) {
	ext := testExtractor()
	text := "book the Hall tomorrow 14:00 to 16:00 for rehearsal"

	first := ext.Extract(text, testNow)
	second := ext.Extract(text, testNow)
	require.Equal(t, first, second)
}
