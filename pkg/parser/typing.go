package parser

import (
	"errors"

	"github.com/raymyers/minicc/pkg/ctypes"
)

var errCombine = errors.New("no arithmetic between these types")

// combine computes the result type of an arithmetic operator.
//
//	left \ right | int | char | other
//	int          | int | int  | -
//	char         | -   | char | -
//
// Strings, pointers and arrays take no part in arithmetic.
func combine(left, right ctypes.Type) (ctypes.Type, error) {
	switch {
	case ctypes.IsInt(left) && ctypes.IsIntegral(right):
		return ctypes.Int(), nil
	case ctypes.IsChar(left) && ctypes.IsChar(right):
		return ctypes.Char(), nil
	}
	return nil, errCombine
}
