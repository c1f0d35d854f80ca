package usecase

import (
	"context"
	"strings"
	"time"

	"solosync/internal/analyzer"
)

// resolveDeadline picks the first deadline phrase found in text and resolves it
// against now. Without a phrase the deadline is DefaultDeadlineDays away.
func (uc *implUseCase) resolveDeadline(ctx context.Context, text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	for _, phrase := range deadlinePhrases {
		if !strings.Contains(lower, phrase) {
			continue
		}
		deadline, err := uc.dateMath.Parse(phrase, now)
		if err != nil {
			uc.l.Warnf(ctx, "analyzer.usecase.resolveDeadline: phrase %q: %v", phrase, err)
			break
		}
		return deadline
	}
	return uc.dateMath.AddDays(now, analyzer.DefaultDeadlineDays)
}
