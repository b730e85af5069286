package runner

import "fmt"

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a run progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// progressStep is the percentage between two progress reports.
const progressStep = 10

// minTracksForProgress is the track count under which no percentage is
// reported.
const minTracksForProgress = 10

// stepper emits a progress line each time another step of the total is
// processed.
type stepper struct {
	total      int
	next       int
	lastLetter string
}

func newStepper(total int) *stepper {
	return &stepper{total: total, next: progressStep, lastLetter: "1"}
}

// advance returns the percentage reached by processed tracks, or zero when
// no new step was crossed.
func (s *stepper) advance(processed int) int {
	if s.total <= minTracksForProgress || s.next >= 100 {
		return 0
	}
	if processed*100/s.total <= s.next {
		return 0
	}
	reached := s.next
	s.next += progressStep
	return reached
}

// initial returns the first letter of an artist folder name.
func initial(artist string) string {
	for _, r := range artist {
		return string(r)
	}
	return "?"
}

func scanProgress(percent int, from, to string, errors, tracks int, purity float64) string {
	return fmt.Sprintf("%3d%% [%s-%s] %d errors over %d tracks (purity %.2f%%)",
		percent, from, to, errors, tracks, purity*100)
}
