package encryptor

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// reportLabels are the counter report labels, in report order.
var reportLabels = [numKinds]string{
	KindBaseN:  "Base-n count",
	KindCaesar: "Caesar count",
	KindRotate: "Block rotation count",
}

// Counters tracks how many encode and decode calls completed per scheme.
// The zero value is ready to use. Counters must not be copied after first
// use; share it by pointer between the engines of one session.
type Counters struct {
	counts [numKinds]atomic.Int64
}

// NewCounters returns a zeroed Counters.
func NewCounters() *Counters {
	return &Counters{}
}

// Increment adds one to kind's counter.
func (c *Counters) Increment(kind Kind) {
	if !kind.valid() {
		return
	}
	c.counts[kind].Add(1)
}

// Count returns the current value of kind's counter.
func (c *Counters) Count(kind Kind) int64 {
	if !kind.valid() {
		return 0
	}
	return c.counts[kind].Load()
}

// Snapshot returns every counter keyed by kind.
func (c *Counters) Snapshot() map[Kind]int64 {
	snap := make(map[Kind]int64, numKinds)
	for _, k := range Kinds() {
		snap[k] = c.Count(k)
	}
	return snap
}

// Report formats the counters as one line per scheme in the order BaseN,
// Caesar, Rotate, without a trailing newline.
func (c *Counters) Report() string {
	lines := make([]string, 0, numKinds)
	for _, k := range Kinds() {
		lines = append(lines, fmt.Sprintf("%s: %d", reportLabels[k], c.Count(k)))
	}
	return strings.Join(lines, "\n")
}
