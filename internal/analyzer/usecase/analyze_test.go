package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solosync/internal/analyzer"
	"solosync/pkg/datemath"
	pkgLog "solosync/pkg/log"
)

// Wednesday 1 May 2024, 15:30:45.
var wednesday = time.Date(2024, 5, 1, 15, 30, 45, 0, time.UTC)

func newTestUseCase(t *testing.T, now time.Time) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	dm.SetClock(func() time.Time { return now })
	return New(pkgLog.NewNop(), dm)
}

func TestResolveDeadline(t *testing.T) {
	friday := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		text string
		want time.Time
	}{
		{"friday from wednesday", wednesday, "due Friday", wednesday.AddDate(0, 0, 2)},
		{"friday on friday is next week", friday, "by friday", friday.AddDate(0, 0, 7)},
		{"monday from wednesday", wednesday, "start Monday", wednesday.AddDate(0, 0, 5)},
		{"monday on monday is next week", monday, "monday", monday.AddDate(0, 0, 7)},
		{"friday beats monday", wednesday, "monday or friday", wednesday.AddDate(0, 0, 2)},
		{"monday beats tomorrow", wednesday, "tomorrow or monday", wednesday.AddDate(0, 0, 5)},
		{"tomorrow", wednesday, "need it TOMORROW", wednesday.AddDate(0, 0, 1)},
		{"next week", wednesday, "sometime next week", wednesday.AddDate(0, 0, 7)},
		{"tomorrow beats next week", wednesday, "next week or tomorrow", wednesday.AddDate(0, 0, 1)},
		{"default", wednesday, "whenever", wednesday.AddDate(0, 0, 3)},
		{"empty", wednesday, "", wednesday.AddDate(0, 0, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(t, tt.now)
			got := uc.resolveDeadline(context.Background(), tt.text, tt.now)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestAnalyze(t *testing.T) {
	uc := newTestUseCase(t, wednesday)
	ctx := context.Background()

	t.Run("invoice message", func(t *testing.T) {
		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{Text: "Invoice for $1,250.50 due Friday"})
		require.NoError(t, err)

		assert.InDelta(t, 1250.50, out.Result.Budget, 1e-9)
		assert.Equal(t, analyzer.DefaultTask, out.Result.Task)
		assert.True(t, out.Result.Deadline.Equal(time.Date(2024, 5, 3, 15, 30, 45, 0, time.UTC)))
	})

	t.Run("greeting message", func(t *testing.T) {
		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{Text: "Hi, this is John, need a logo by tomorrow, budget 500usd"})
		require.NoError(t, err)

		assert.Equal(t, analyzer.Result{
			Client:   "John",
			Task:     "Logo Design",
			Budget:   500,
			Deadline: wednesday.AddDate(0, 0, 1),
		}, out.Result)
	})

	t.Run("empty text resolves to defaults", func(t *testing.T) {
		out, err := uc.Analyze(ctx, analyzer.AnalyzeInput{Text: ""})
		require.NoError(t, err)

		assert.Equal(t, analyzer.Result{
			Client:   analyzer.DefaultClient,
			Task:     analyzer.DefaultTask,
			Budget:   0,
			Deadline: wednesday.AddDate(0, 0, analyzer.DefaultDeadlineDays),
		}, out.Result)
	})

	t.Run("idempotent at the same instant", func(t *testing.T) {
		in := analyzer.AnalyzeInput{Text: "Hey, Acme wants a website and logo next week for $3,000"}
		first, err := uc.Analyze(ctx, in)
		require.NoError(t, err)
		second, err := uc.Analyze(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "Logo Design", first.Result.Task)
		assert.Equal(t, "Acme", first.Result.Client)
	})
}

func TestAnalyzeConcurrent(t *testing.T) {
	uc := newTestUseCase(t, wednesday)
	texts := []string{
		"Invoice for $1,250.50 due Friday",
		"Hi, this is John, need a logo by tomorrow, budget 500usd",
		"Globex needs content by monday, 800 dollars",
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			out, err := uc.Analyze(context.Background(), analyzer.AnalyzeInput{Text: text})
			assert.NoError(t, err)
			assert.NotEmpty(t, out.Result.Task)
		}(texts[i%len(texts)])
	}
	wg.Wait()
}
