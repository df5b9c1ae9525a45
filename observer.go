package main

import (
	"github.com/rs/zerolog"

	"github.com/cdclsat/sudokusat/internal/sat"
)

// zerologObserver adapts sat.Observer onto a zerolog.Logger, so the solver
// core itself never imports a logging library (see internal/sat.Observer).
type zerologObserver struct {
	log zerolog.Logger
}

func (o zerologObserver) OnDecision(level int, decided sat.Literal) {
	o.log.Debug().
		Int("level", level).
		Str("literal", decided.String()).
		Msg("decision")
}

func (o zerologObserver) OnConflict(level int, conflictNumber int64) {
	o.log.Debug().
		Int("level", level).
		Int64("conflict", conflictNumber).
		Msg("conflict")
}

func (o zerologObserver) OnLearn(learned []sat.Literal, lbd int, backtrackLevel int) {
	strs := make([]string, len(learned))
	for i, l := range learned {
		strs[i] = l.String()
	}
	o.log.Debug().
		Strs("clause", strs).
		Int("lbd", lbd).
		Int("backtrack_level", backtrackLevel).
		Msg("learned clause")
}
