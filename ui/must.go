package ui

import "fmt"

func Must(err error) {
	if err != nil {
		op(opFatal, fmt.Sprint(withCaller(err)...))
	}
}

func Must2[T any](v T, err error) T {
	if err != nil {
		op(opFatal, fmt.Sprint(withCaller(err)...))
	}
	return v
}
