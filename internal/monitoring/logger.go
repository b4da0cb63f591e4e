package monitoring

import (
	"log/slog"
	"os"
	"time"
)

var startTime = time.Now()

// Logger provides structured logging with calculator-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger writing to stdout.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{Logger: slog.New(handler)}
}

// RequestLogger logs HTTP request details.
func (l *Logger) RequestLogger(method, path, ip string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// CalculationLogger logs a synergy calculation.
func (l *Logger) CalculationLogger(tagCount int, displayCom, displayArt float64, spoilers int, cacheHit bool) {
	l.Info("Calculation Completed",
		"tag_count", tagCount,
		"display_com", displayCom,
		"display_art", displayArt,
		"spoilers", spoilers,
		"cache_hit", cacheHit,
	)
}

// GenerationLogger logs a script generation run.
func (l *Logger) GenerationLogger(targetAvgComp float64, targetElements, slots int, bestMovieScore float64, duration time.Duration) {
	l.Info("Generation Completed",
		"target_avg_comp", targetAvgComp,
		"target_elements", targetElements,
		"slots", slots,
		"best_movie_score", bestMovieScore,
		"duration_ms", duration.Milliseconds(),
	)
}

// CacheLogger logs cache operations.
func (l *Logger) CacheLogger(operation, keyHash string, hit bool, itemCount int) {
	l.Debug("Cache Operation",
		"operation", operation,
		"key_hash", keyHash,
		"hit", hit,
		"cache_size", itemCount,
	)
}

// SystemLogger logs system-level events.
func (l *Logger) SystemLogger(event, details string) {
	l.Info("System Event",
		"event", event,
		"details", details,
		"uptime", time.Since(startTime).String(),
	)
}
