package analyzer

import "time"

const (
	// DefaultClient is returned when no capitalized word qualifies as a client name.
	DefaultClient = "New Client"

	// DefaultTask is returned when no category keyword is present.
	DefaultTask = "Freelance Project"

	// DefaultDeadlineDays is the fallback distance when no deadline phrase is present.
	DefaultDeadlineDays = 3
)

// AnalyzeInput is the free-form message to analyze.
type AnalyzeInput struct {
	Text string
}

// Result is the heuristic guess extracted from a message.
type Result struct {
	Client   string
	Task     string
	Budget   float64
	Deadline time.Time
}

// AnalyzeOutput is the result of Analyze.
type AnalyzeOutput struct {
	Result Result
}
