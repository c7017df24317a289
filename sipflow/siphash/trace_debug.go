//go:build siphash_debug

package siphash

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const traceEnabled = true

// trace logs the registers after a group of rounds. block is the index of
// the compressed word, or -1 outside the compression loop.
func (s *state) trace(stage string, block int) {
	traceLogger().WithFields(logrus.Fields{
		"stage": stage,
		"block": block,
		"v0":    fmt.Sprintf("%016x", s.v0),
		"v1":    fmt.Sprintf("%016x", s.v1),
		"v2":    fmt.Sprintf("%016x", s.v2),
		"v3":    fmt.Sprintf("%016x", s.v3),
	}).Debug("siphash state")
}
