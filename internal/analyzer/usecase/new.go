package usecase

import (
	"solosync/pkg/datemath"
	pkgLog "solosync/pkg/log"
)

// implUseCase is the private implementation of analyzer.UseCase.
// It holds no per-request state and is safe for concurrent use.
type implUseCase struct {
	l        pkgLog.Logger
	dateMath *datemath.Parser
}

// New creates a new analyzer UseCase. dateMath supplies both the clock and
// the timezone deadlines are resolved in.
func New(l pkgLog.Logger, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		dateMath: dateMath,
	}
}
