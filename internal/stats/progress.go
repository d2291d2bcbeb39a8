package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	TrendImproving   = "improving"
	TrendDeclining   = "declining"
	TrendFluctuating = "fluctuating"
	TrendNeutral     = "neutral"
)

// ProgressSample is the performance of one exercise in one completed
// session: what was logged, plus the derived volume and max weight.
type ProgressSample struct {
	Date      time.Time `json:"date"`
	Sets      int       `json:"sets"`
	Reps      []int     `json:"reps"`
	Weights   []float64 `json:"weights"`
	Volume    float64   `json:"volume"`
	MaxWeight float64   `json:"maxWeight"`
	Notes     string    `json:"notes,omitempty"`
}

// VolumeProgress summarizes how the exercise volume moved across samples.
type VolumeProgress struct {
	VolumeChange  float64 `json:"volumeChange"`
	PercentChange float64 `json:"percentChange"`
	IsImproving   bool    `json:"isImproving"`
	Trend         string  `json:"trend"`
	EnoughData    bool    `json:"enoughData"`
}

type Progress struct {
	logs logsRepo
	now  func() time.Time
}

func NewProgress(logs logsRepo) *Progress {
	return &Progress{
		logs: logs,
		now:  time.Now,
	}
}

// ExerciseProgress returns per-session samples for one exercise over the
// trailing `days` days, oldest first. Reading the same history twice gives
// the same samples, nothing is stored.
func (p *Progress) ExerciseProgress(ctx context.Context, userID, exerciseID, days int) (_ []ProgressSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.progress.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))
	span.SetAttributes(attribute.Int("days", days))

	today := dateOnly(p.now())
	from := today.AddDate(0, 0, -days)

	history, err := p.logs.ExerciseHistory(ctx, userID, exerciseID, from, today)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}

	samples := make([]ProgressSample, 0, len(history))
	for _, entry := range history {
		samples = append(samples, entryToSample(entry))
	}

	return samples, nil
}

// entryToSample derives volume and max weight from a logged exercise.
// A missing reps or weights sequence is zero-filled to the number of
// completed sets instead of failing, old entries can lack either.
func entryToSample(entry workouts.ExerciseLog) ProgressSample {
	reps := entry.Reps
	weights := entry.Weights

	if reps == nil && entry.SetsCompleted > 0 {
		log.Warnf("exercise log %d has no reps recorded, zero-filling %d sets", entry.ID, entry.SetsCompleted)
		reps = make([]int, entry.SetsCompleted)
	}
	if weights == nil && entry.SetsCompleted > 0 {
		log.Warnf("exercise log %d has no weights recorded, zero-filling %d sets", entry.ID, entry.SetsCompleted)
		weights = make([]float64, entry.SetsCompleted)
	}

	return ProgressSample{
		Date:      dateOnly(entry.LogDate),
		Sets:      entry.SetsCompleted,
		Reps:      reps,
		Weights:   weights,
		Volume:    volume(reps, weights),
		MaxWeight: maxWeight(weights),
		Notes:     entry.Notes,
	}
}

// volume pairs reps and weights by set index, the shorter sequence wins.
func volume(reps []int, weights []float64) float64 {
	n := len(reps)
	if len(weights) < n {
		n = len(weights)
	}

	var total float64
	for i := 0; i < n; i++ {
		total += float64(reps[i]) * weights[i]
	}
	return total
}

func maxWeight(weights []float64) float64 {
	var maxW float64
	for _, w := range weights {
		if w > maxW {
			maxW = w
		}
	}
	return maxW
}

// CalculateVolumeProgress computes the volume change between the first and
// last sample, and the trend across the trailing `window` samples. With
// fewer than two samples there is nothing to compare.
func CalculateVolumeProgress(samples []ProgressSample, window int) VolumeProgress {
	if len(samples) < 2 {
		return VolumeProgress{Trend: TrendNeutral}
	}

	first := samples[0].Volume
	last := samples[len(samples)-1].Volume
	change := last - first

	percent := 0.0
	if first > 0 {
		percent = round1(change / first * 100)
	}

	return VolumeProgress{
		VolumeChange:  change,
		PercentChange: percent,
		IsImproving:   change > 0,
		Trend:         trend(samples, window),
		EnoughData:    true,
	}
}

// trend inspects the trailing `window` volumes. Non-decreasing resolves
// improving and is checked first, so a constant run counts as improving.
func trend(samples []ProgressSample, window int) string {
	if len(samples) < window {
		return TrendNeutral
	}

	trailing := samples[len(samples)-window:]

	nonDecreasing := true
	for i := 1; i < len(trailing); i++ {
		if trailing[i].Volume < trailing[i-1].Volume {
			nonDecreasing = false
			break
		}
	}
	if nonDecreasing {
		return TrendImproving
	}

	nonIncreasing := true
	for i := 1; i < len(trailing); i++ {
		if trailing[i].Volume > trailing[i-1].Volume {
			nonIncreasing = false
			break
		}
	}
	if nonIncreasing {
		return TrendDeclining
	}

	return TrendFluctuating
}
