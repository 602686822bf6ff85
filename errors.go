/*
 * errors.go, part of ionscreen.
 *
 * Copyright 2026 The ionscreen developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package ion

import "fmt"

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing it's type or wrapping it around something else. The decoration slice
// should contain the functions in the calling stack plus, for each function,
// any relevant extra information, in the format "FunctionName: extra info".
// If passed an empty string, Decorate should just return the current
// decoration, not add the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the concrete error type for the ion package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error and returns the updated
// decoration trail.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// NewCError builds a CError with the given message and one decoration, meant
// to be the name of the calling function. It is exported so the subpackages
// can produce root-flavored errors without redefining the type.
func NewCError(msg string, caller string) CError {
	return CError{msg, []string{caller}}
}

// Recurring error conditions.
const (
	ErrUnknownElement = "unknown element symbol"
	ErrBadDataset     = "malformed element dataset"
	ErrBadFormula     = "invalid formula"
	ErrNilTable       = "nil reference table"
	ErrMismatchedLen  = "mismatched slice lengths"
)

// errDecorate asserts that the given error implements Error and decorates it
// with the caller's name before returning it. A non-Error error gets wrapped
// into a fresh CError instead.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), []string{caller}}
	}
	err2.Decorate(caller)
	return err2
}

// unknownElement builds the standard lookup-failure error for a symbol.
func unknownElement(symbol, caller string) error {
	return CError{fmt.Sprintf("%s: %q", ErrUnknownElement, symbol), []string{caller}}
}
