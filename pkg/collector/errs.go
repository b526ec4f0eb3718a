package collector

import "errors"

var (
	// ErrIncomplete indicates fewer than six timings were available.
	ErrIncomplete = errors.New("collector: fewer timings than load steps")

	// ErrExtra indicates more than six timings were supplied.
	ErrExtra = errors.New("collector: more timings than load steps")

	// ErrBadValue indicates a timing that could not be parsed as seconds.
	ErrBadValue = errors.New("collector: bad timing value")
)
