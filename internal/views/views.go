// Package views computes derived read models over a snapshot of the
// workout history and exercise library. All functions are pure.
package views

import (
	"sort"
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
)

// UnknownExerciseName is shown for sessions whose exercise was deleted.
const UnknownExerciseName = "Unknown"

// WeekDays is the length of the weekly volume window.
const WeekDays = 7

const dayLayout = "2006-01-02"

// DayVolume is one bar of the weekly volume chart.
type DayVolume struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Volume float64   `json:"volume"`
}

// WorkoutVolume sums weight * reps over every set of every session.
func WorkoutVolume(w domain.Workout) float64 {
	var volume float64
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			volume += s.Volume()
		}
	}
	return volume
}

// LastPerformance returns the sets of the most recent recorded session of
// exerciseID. Only sessions with at least one set count. Workouts with equal
// dates keep their collection order, so the earlier entry wins.
func LastPerformance(workouts []domain.Workout, exerciseID string) ([]domain.SetLog, bool) {
	var (
		best  []domain.SetLog
		bestT time.Time
		found bool
	)
	for _, w := range workouts {
		if found && !w.Date.After(bestT) {
			continue
		}
		for _, ex := range w.Exercises {
			if ex.ExerciseID == exerciseID && len(ex.Sets) > 0 {
				best, bestT, found = ex.Sets, w.Date, true
				break
			}
		}
	}
	if !found {
		return nil, false
	}
	return append([]domain.SetLog(nil), best...), true
}

// WeeklyVolumeSeries returns the volume of the 7 calendar days ending at ref,
// oldest first. Days are computed in ref's location. Several workouts on the
// same day are summed.
func WeeklyVolumeSeries(workouts []domain.Workout, ref time.Time) []DayVolume {
	loc := ref.Location()
	refDay := startOfDay(ref)

	series := make([]DayVolume, WeekDays)
	index := make(map[string]int, WeekDays)
	for i := 0; i < WeekDays; i++ {
		day := refDay.AddDate(0, 0, i-(WeekDays-1))
		series[i] = DayVolume{
			Date:  day,
			Label: day.Weekday().String()[:3],
		}
		index[day.Format(dayLayout)] = i
	}

	for _, w := range workouts {
		day := w.Date.In(loc).Format(dayLayout)
		if i, ok := index[day]; ok {
			series[i].Volume += WorkoutVolume(w)
		}
	}
	return series
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SortedHistory returns a copy of workouts, newest first.
func SortedHistory(workouts []domain.Workout) []domain.Workout {
	sorted := append([]domain.Workout(nil), workouts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// ExerciseName resolves id against the library, falling back to UnknownExerciseName.
func ExerciseName(exercises []domain.Exercise, id string) string {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex.Name
		}
	}
	return UnknownExerciseName
}
