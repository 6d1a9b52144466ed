// Package linear provides a synchronous renderer printing one line per
// circuit resolution, indented by nesting depth.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/bom/internal/ui/output"
	"go.trai.ch/bom/internal/ui/style"
)

const indentUnit = "  "

// Renderer implements ports.Renderer for the --trace flag.
type Renderer struct {
	output *termenv.Output

	mu       sync.Mutex
	circuits map[string]*circuitState // spanID -> circuit state
	open     []string
}

type circuitState struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a renderer writing to w, or to stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}

	return &Renderer{
		output:   output.NewWithProfile(w, output.ColorProfileANSI),
		circuits: make(map[string]*circuitState),
	}
}

// OnCircuitStart prints the circuit name at its depth.
func (r *Renderer) OnCircuitStart(spanID, _ /* parentID */, name string, depth int, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.circuits[spanID] = &circuitState{
		name:      name,
		depth:     depth,
		startTime: startTime,
	}
	r.open = append(r.open, spanID)

	symbol := r.output.String(style.Dot).Foreground(r.color(style.Iris)).String()
	r.printLocked(depth, fmt.Sprintf("%s %s", symbol, name))
}

// OnCircuitComplete prints the resolved price or the failure of a circuit.
func (r *Renderer) OnCircuitComplete(spanID, price string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.circuits[spanID]
	if !ok {
		return
	}

	duration := endTime.Sub(c.startTime)
	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(r.color(style.Red)).String()
		r.printLocked(c.depth, fmt.Sprintf("%s %s failed after %v: %v", symbol, c.name, duration, err))
	} else {
		symbol := r.output.String(style.Check).Foreground(r.color(style.Green)).String()
		r.printLocked(c.depth, fmt.Sprintf("%s %s = %s in %v", symbol, c.name, price, duration))
	}

	r.closeLocked(spanID)
}

// Stop reports every circuit that started but never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, spanID := range r.open {
		c := r.circuits[spanID]
		symbol := r.output.String(style.Warning).Foreground(r.color(style.Yellow)).String()
		r.printLocked(c.depth, fmt.Sprintf("%s %s interrupted", symbol, c.name))
		delete(r.circuits, spanID)
	}
	r.open = nil

	return nil
}

func (r *Renderer) color(c lipgloss.Color) termenv.Color {
	return r.output.Color(string(c))
}

// closeLocked forgets a completed circuit.
// Must be called with r.mu held.
func (r *Renderer) closeLocked(spanID string) {
	delete(r.circuits, spanID)
	for i, id := range r.open {
		if id == spanID {
			r.open = append(r.open[:i], r.open[i+1:]...)
			break
		}
	}
}

// printLocked writes one line indented by depth.
// Must be called with r.mu held.
func (r *Renderer) printLocked(depth int, line string) {
	_, _ = fmt.Fprintf(r.output, "%s%s\n", strings.Repeat(indentUnit, depth), line)
}
