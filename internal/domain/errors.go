package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDecisionTooShort = fmt.Errorf("decision context must be at least %d characters", MinDecisionLength)
)
