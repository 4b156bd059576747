// Package coach turns the workout history into a short motivational tip
// produced by an external text generation model.
package coach

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/Click-facil/fitclick/internal/domain"
	"github.com/Click-facil/fitclick/internal/metrics"
	"github.com/Click-facil/fitclick/internal/views"
	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=coach_mocks_test.go -package=coach_test

const (
	StartTrainingTip = "Start training to receive tips from the AI!"
	FallbackTip      = "Stay focused! Consistency is the key to progress."
	AnalyzingTip     = "Analyzing your progress..."

	DefaultTimeout = 8 * time.Second

	megabyte       = 1024 * 1024
	tipCacheExpire = 60 * 60 * 6 // seconds
	minCacheSizeMB = 1
	promptPreamble = "Analyze the workout history below and give the user a short, motivating tip of 2 sentences to improve their performance or celebrate their progress."

	sourceAI       = "ai"
	sourceCached   = "cached"
	sourceFallback = "fallback"
	sourceSkipped  = "skipped"
)

// TextGenerator produces a completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Coach struct {
	generator TextGenerator
	timeout   time.Duration
	cache     *freecache.Cache
	metrics   *metrics.Manager
}

// New creates a Coach. A nil generator disables AI calls and every non-empty
// history gets FallbackTip.
func New(generator TextGenerator, timeout time.Duration, cacheSizeMB int, metricsManager *metrics.Manager) *Coach {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if cacheSizeMB < minCacheSizeMB {
		cacheSizeMB = minCacheSizeMB
	}
	return &Coach{
		generator: generator,
		timeout:   timeout,
		cache:     freecache.NewCache(cacheSizeMB * megabyte),
		metrics:   metricsManager,
	}
}

// Tip never fails: any error, timeout or blank answer yields FallbackTip.
func (c *Coach) Tip(ctx context.Context, workouts []domain.Workout, exercises []domain.Exercise) string {
	if len(workouts) == 0 {
		c.count(sourceSkipped)
		return StartTrainingTip
	}
	if c.generator == nil {
		c.count(sourceFallback)
		return FallbackTip
	}

	defer func(begin time.Time) {
		if c.metrics != nil {
			c.metrics.HistTipDuration.Observe(time.Since(begin).Seconds())
		}
	}(time.Now())

	prompt := BuildPrompt(workouts)
	cacheKey := promptKey(prompt)
	if cached, err := c.cache.Get(cacheKey); err == nil {
		c.count(sourceCached)
		return string(cached)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tip, err := c.generator.GenerateText(callCtx, prompt)
	if err != nil {
		log.Warnf("coach: generate tip: %s", err)
		c.count(sourceFallback)
		return FallbackTip
	}
	tip = strings.TrimSpace(tip)
	if tip == "" {
		log.Warn("coach: generator returned an empty tip")
		c.count(sourceFallback)
		return FallbackTip
	}

	if err := c.cache.Set(cacheKey, []byte(tip), tipCacheExpire); err != nil {
		log.Errorf("coach: cache tip: %s", err)
	}
	c.count(sourceAI)
	return tip
}

// BuildPrompt summarizes every workout on its own line and appends the summary
// to the instruction.
func BuildPrompt(workouts []domain.Workout) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\n\nHistory:\n")
	for i, w := range workouts {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(SummaryLine(w))
	}
	return sb.String()
}

// SummaryLine renders "Date: <RFC3339>, Exercises: n, Volume: Xkg".
func SummaryLine(w domain.Workout) string {
	return fmt.Sprintf("Date: %s, Exercises: %d, Volume: %skg",
		w.Date.UTC().Format(time.RFC3339),
		len(w.Exercises),
		formatVolume(views.WorkoutVolume(w)),
	)
}

func formatVolume(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func promptKey(prompt string) []byte {
	sum := sha256.Sum256([]byte(prompt))
	return sum[:]
}

func (c *Coach) count(source string) {
	if c.metrics == nil {
		return
	}
	c.metrics.CounterTips.WithLabelValues(source).Inc()
}
