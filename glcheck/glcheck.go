// Package glcheck drains the OpenGL error queue and reports what it finds.
//
// OpenGL records errors in a queue instead of returning them, so a failed
// call is invisible until something reads the queue. Call sites wrap suspect
// work with Flush before and Check (or Err) after; a process-wide policy
// decides whether a recorded error is fatal or just logged.
package glcheck

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Policy selects how Check reacts to recorded errors.
type Policy int

const (
	// Continue logs recorded errors and keeps running.
	Continue Policy = iota
	// Abort logs recorded errors and stops the process.
	Abort
)

// The render loop is single-threaded, so the policy switch needs no lock.
var policy = Continue

// SetPolicy selects the severity Check applies from now on.
func SetPolicy(p Policy) {
	policy = p
}

// Flush discards every queued error, so a later Err reports only errors
// raised by the calls in between.
func Flush() {
	for gl.GetError() != gl.NO_ERROR {
	}
}

// Err drains the queue and returns nil when it was clean, or a single error
// naming op and every drained code.
func Err(op string) error {
	var names []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		names = append(names, Name(code))
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("gl error in %s: %s", op, strings.Join(names, ", "))
}

// Check applies the configured policy to whatever Err finds.
func Check(op string) {
	err := Err(op)
	if err == nil {
		return
	}
	if policy == Abort {
		log.Fatalf("%v", err)
	}
	log.Print(err)
}

// Name returns the symbolic name of a GL error code, or the code in hex
// when the core profile has no name for it.
func Name(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}
