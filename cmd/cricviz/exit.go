package main

import (
	"errors"

	"github.com/riskibarqy/cricviz/internal/usecase"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitNotFound     = 3
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, usecase.ErrNotFound):
		return exitNotFound
	case errors.Is(err, usecase.ErrInvalidInput):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
