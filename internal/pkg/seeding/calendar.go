package seeding

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// Kind selects which of an event's dates a view groups or filters by.
type Kind string

const (
	KindGermination Kind = "germination"
	KindHarvest     Kind = "harvest"
	KindHistory     Kind = "history"
)

// Event is one planted cell's derived calendar record. Germination and
// harvest dates are nil when the plant has no matching day offset;
// they are never defaulted to the planting date.
type Event struct {
	TrayName        string  `json:"tray_name"`
	PlantName       string  `json:"plant_name"`
	PlantedDate     string  `json:"planted_date"`
	GerminationDate *string `json:"germination_date"`
	HarvestDate     *string `json:"harvest_date"`
}

// PlantedCell is the joined input row: a non-empty tray cell together
// with its tray name and its plant's display name and day offsets.
type PlantedCell struct {
	TrayName        string
	PlantName       string
	PlantedDate     time.Time
	DaysToGerminate *int
	DaysToHarvest   *int
}

// AddDays adds whole calendar days with no timezone or DST shifting.
func AddDays(d time.Time, days int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day()+days, 0, 0, 0, 0, time.UTC)
}

// BuildEvents derives the flat event list for the calendar endpoint.
// Germination and harvest dates are computed independently from their
// own offsets.
func BuildEvents(rows []PlantedCell) []Event {
	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		e := Event{
			TrayName:    r.TrayName,
			PlantName:   r.PlantName,
			PlantedDate: r.PlantedDate.Format(DateLayout),
		}
		if r.DaysToGerminate != nil {
			d := AddDays(r.PlantedDate, *r.DaysToGerminate).Format(DateLayout)
			e.GerminationDate = &d
		}
		if r.DaysToHarvest != nil {
			d := AddDays(r.PlantedDate, *r.DaysToHarvest).Format(DateLayout)
			e.HarvestDate = &d
		}
		events = append(events, e)
	}
	return events
}

// Date returns the event date relevant to the given view kind, or
// false when that date is absent.
func (e Event) Date(kind Kind) (time.Time, bool) {
	var s string
	switch kind {
	case KindGermination:
		if e.GerminationDate == nil {
			return time.Time{}, false
		}
		s = *e.GerminationDate
	case KindHarvest:
		if e.HarvestDate == nil {
			return time.Time{}, false
		}
		s = *e.HarvestDate
	default:
		s = e.PlantedDate
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// MonthGroup is one labeled calendar bucket, e.g. "January 2025".
type MonthGroup struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Label  string     `json:"label"`
	Events []Event    `json:"events"`
}

// GroupByMonthYear buckets events by the month and year of the
// kind-relevant date. Buckets come back in chronological order keyed
// on (year, month), never sorted by label text. Events missing the
// relevant date are skipped.
func GroupByMonthYear(events []Event, kind Kind) []MonthGroup {
	type key struct {
		year  int
		month time.Month
	}
	buckets := make(map[key][]Event)
	for _, e := range events {
		d, ok := e.Date(kind)
		if !ok {
			continue
		}
		k := key{year: d.Year(), month: d.Month()}
		buckets[k] = append(buckets[k], e)
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	groups := make([]MonthGroup, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, MonthGroup{
			Year:   k.year,
			Month:  k.month,
			Label:  fmt.Sprintf("%s %d", k.month, k.year),
			Events: buckets[k],
		})
	}
	return groups
}

// FilterInRange keeps events whose kind-relevant date lies in
// [from, to], both inclusive.
func FilterInRange(events []Event, kind Kind, from, to time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		d, ok := e.Date(kind)
		if !ok {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			out = append(out, e)
		}
	}
	return out
}

// Recent keeps events planted within the past pastDays days of now.
func Recent(events []Event, pastDays int, now time.Time) []Event {
	cutoff := AddDays(now, -pastDays)
	out := make([]Event, 0, len(events))
	for _, e := range events {
		d, ok := e.Date(KindHistory)
		if !ok {
			continue
		}
		if !d.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
