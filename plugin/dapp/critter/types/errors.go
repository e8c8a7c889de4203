// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	ErrPeriodEnded         = errors.New("ErrPeriodEnded")
	ErrUnauthorized        = errors.New("ErrUnauthorized")
	ErrInvalidNumber       = errors.New("ErrInvalidNumber")
	ErrInvalidValue        = errors.New("ErrInvalidValue")
	ErrGameNotFinished     = errors.New("ErrGameNotFinished")
	ErrAlreadyClaimed      = errors.New("ErrAlreadyClaimed")
	ErrBetMismatch         = errors.New("ErrBetMismatch")
	ErrNoPrize             = errors.New("ErrNoPrize")
	ErrInsufficientBalance = errors.New("ErrInsufficientBalance")
	ErrGameExists          = errors.New("ErrGameExists")
	ErrGameNotFound        = errors.New("ErrGameNotFound")
	ErrBetNotFound         = errors.New("ErrBetNotFound")
	ErrInvalidGameID       = errors.New("ErrInvalidGameID")
	ErrInvalidDuration     = errors.New("ErrInvalidDuration")
	ErrTooManyParticipants = errors.New("ErrTooManyParticipants")
)
