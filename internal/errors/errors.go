// Package errors is the single error import for the blog packages: matching comes from
// the standard library, construction and wrapping from pkg/errors so failures carry a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Construction. Every constructor records the caller's stack.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)
