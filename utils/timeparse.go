package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// NormalizeClock converts a free-text clock fragment ("6pm", "6:30",
// "12 am") into a zero-padded 24-hour HH:MM:SS string. Hours without a
// meridiem marker are taken as 24-hour values. Missing or unparseable input
// yields start of day.
func NormalizeClock(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "00:00:00"
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return "00:00:00"
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

// EventSpan composes the wall-clock start and end of an event on the given
// calendar date. An empty end, or an end not strictly after the start, is
// coerced to start plus one hour.
func EventSpan(date, start, end string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	startAt, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+NormalizeClock(start), loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid event date %q: %w", date, err)
	}

	endAt := startAt
	if end != "" {
		endAt, err = time.ParseInLocation("2006-01-02 15:04:05", date+" "+NormalizeClock(end), loc)
		if err != nil {
			endAt = startAt
		}
	}
	if !endAt.After(startAt) {
		endAt = startAt.Add(time.Hour)
	}

	return startAt, endAt, nil
}
