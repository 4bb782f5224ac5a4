package punkui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger receives debug output. Replace it with SetLogger.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "punkui",
	Level:  log.InfoLevel,
})

// SetLogger replaces the package logger. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	submitTime   time.Duration
	commandCount int
}

// debugLog logs timing stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.Debug("frame",
		"submit", stats.submitTime,
		"commands", stats.commandCount,
		"elements", len(s.elements),
		"images", len(s.images))
}

// debugProjection logs a recovered projection failure.
func debugProjection(s *Scene, path string, err error) {
	if !s.debug {
		return
	}
	logger.Debug("offscreen", "path", path, "err", err)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("punkui debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree too deep", "node", n.Name, "depth", depth, "max", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("too many children", "node", n.Name, "children", len(n.children), "max", debugMaxChildCount)
	}
}
