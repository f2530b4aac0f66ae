package app

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"
)

// SubmissionCalendar maps unix day timestamps to submission counts.
type SubmissionCalendar map[int64]int

// ParseSubmissionCalendar normalizes a raw submission calendar payload.
// Upstream sends it either as a JSON object or as a JSON string containing
// that object. Malformed input yields an empty calendar, never an error.
func ParseSubmissionCalendar(raw []byte) SubmissionCalendar {
	if len(raw) == 0 {
		return nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	cal := make(SubmissionCalendar, len(m))
	for ts, count := range m {
		sec, err := strconv.ParseInt(ts, 10, 64)
		if err != nil {
			continue
		}
		cal[sec] = count
	}

	return cal
}

// ActiveDays returns the number of days with at least one submission.
func (c SubmissionCalendar) ActiveDays() int {
	var n int
	for _, count := range c {
		if count > 0 {
			n++
		}
	}

	return n
}

// ActiveDays returns the number of distinct days with a positive contribution count.
func (c ContributionCalendar) ActiveDays() int {
	days := make(map[time.Time]struct{})
	for t, count := range c.Days {
		if count > 0 {
			days[midnight(t)] = struct{}{}
		}
	}

	return len(days)
}

// Stats derives total contributions and the current streak from the calendar.
//
// The streak walks backwards from `now`'s day: future days are skipped,
// every day with a positive count extends the streak, and the first
// zero-count day ends it - unless that day is today, which is skipped so
// that a streak survives until the day's first contribution is logged.
func (c ContributionCalendar) Stats(now time.Time) ContributionStats {
	counts := make(map[time.Time]int, len(c.Days))
	for t, n := range c.Days {
		counts[midnight(t)] += n
	}

	total := c.ReportedTotal
	if total == 0 {
		for _, n := range counts {
			total += n
		}
	}

	dates := make([]time.Time, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	today := midnight(now)

	var streak int
	for _, d := range dates {
		if d.After(today) {
			continue
		}
		if counts[d] > 0 {
			streak++
			continue
		}
		if d.Equal(today) {
			continue
		}
		break
	}

	return ContributionStats{
		Total:  total,
		Streak: streak,
	}
}

// midnight truncates t to its wall-clock day, anchored in UTC so that days
// parsed from date-only strings compare equal to days taken from time.Now.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
