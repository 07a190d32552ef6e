// Package stats merges the historical launch record with live launch data.
package stats

import (
	"fmt"
	"sort"

	"github.com/ppiankov/launchwatch/internal/model"
)

// Historical totals through the end of 2024
const (
	HistoricalSuccess = 422
	HistoricalFailure = 4
	HistoricalTotal   = HistoricalSuccess + HistoricalFailure

	// LiveFromYear is the first year taken from the live API instead of the table
	LiveFromYear = 2025

	// LiveSampleSize is how many recent past launches are requested
	LiveSampleSize = 100
)

// historicalCounts holds launches per year through 2024
var historicalCounts = map[int]int{
	2008: 2, 2009: 1, 2010: 2, 2011: 1, 2012: 2, 2013: 3, 2014: 6, 2015: 7,
	2016: 9, 2017: 18, 2018: 21, 2019: 13, 2020: 26, 2021: 31,
	2022: 61, 2023: 96, 2024: 127,
}

// Summary is the merged launch record
type Summary struct {
	PerYear      map[int]int `json:"per_year"`
	Total        int         `json:"total"`
	Success      int         `json:"success"`
	Failure      int         `json:"failure"`
	LiveLaunches int         `json:"live_launches"` // Launches counted from live data
}

// Historical returns a copy of the per-year table
func Historical() map[int]int {
	out := make(map[int]int, len(historicalCounts))
	for y, n := range historicalCounts {
		out[y] = n
	}
	return out
}

// Compute adds every live launch scheduled in LiveFromYear or later to the
// historical record. Launches whose status is not "Success" count as
// failures. Records with an unparseable date are skipped.
func Compute(live []model.Launch) Summary {
	s := Summary{
		PerYear: Historical(),
		Success: HistoricalSuccess,
		Failure: HistoricalFailure,
	}

	for _, l := range live {
		t, ok := l.Scheduled()
		if !ok || t.Year() < LiveFromYear {
			continue
		}
		s.LiveLaunches++
		s.PerYear[t.Year()]++
		if l.Succeeded() {
			s.Success++
		} else {
			s.Failure++
		}
	}

	s.Total = HistoricalTotal + s.LiveLaunches
	return s
}

// SuccessRate returns the success percentage, 0 when there are no launches
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Success) / float64(s.Total) * 100
}

// SuccessRateString formats the rate with one decimal, e.g. "99.1%"
func (s Summary) SuccessRateString() string {
	return fmt.Sprintf("%.1f%%", s.SuccessRate())
}

// Years returns the years present in PerYear in ascending order
func (s Summary) Years() []int {
	years := make([]int, 0, len(s.PerYear))
	for y := range s.PerYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
