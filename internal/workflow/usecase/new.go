package usecase

import (
	"time"

	"solosync/internal/analyzer"
	"solosync/internal/workflow"
	"solosync/internal/workflow/repository"
	"solosync/pkg/gcalendar"
	pkgLog "solosync/pkg/log"
)

// maxScheduledLookup bounds the events scanned for an existing deadline slot.
const maxScheduledLookup = 50

// CalendarConfig selects where deadline events are written.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
	Duration   time.Duration // Defaults to one hour
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	analyzer analyzer.UseCase
	calendar gcalendar.ICalendar
	calCfg   CalendarConfig
	notifier workflow.Notifier
}

// New creates the workflow UseCase. calendar and notifier may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	analyzerUC analyzer.UseCase,
	calendar gcalendar.ICalendar,
	calCfg CalendarConfig,
	notifier workflow.Notifier,
) workflow.UseCase {
	if calCfg.Duration <= 0 {
		calCfg.Duration = time.Hour
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		analyzer: analyzerUC,
		calendar: calendar,
		calCfg:   calCfg,
		notifier: notifier,
	}
}
