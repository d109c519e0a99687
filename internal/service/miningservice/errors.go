package miningservice

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoDeposits      = errors.New("no approved deposits found")
	ErrCooldownActive  = errors.New("mining cooldown is active")
	ErrSettingsMissing = errors.New("commission settings not found")
	ErrInvalidRange    = errors.New("invalid commission range")
	ErrClaimInProgress = errors.New("claim is already in progress")
	ErrUserNotFound    = errors.New("user not found")
)

// CooldownError reports how long the user has to wait before the next claim.
type CooldownError struct {
	HoursRemaining int
	NextMineTime   time.Time
}

func newCooldownError(next, now time.Time) *CooldownError {
	hours := int(next.Sub(now) / time.Hour)
	if next.Sub(now)%time.Hour != 0 {
		hours++
	}
	return &CooldownError{HoursRemaining: hours, NextMineTime: next}
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("you can mine again in %d hours", e.HoursRemaining)
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldownActive
}
