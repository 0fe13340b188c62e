// --- START OF NEW FILE internal/cli/hooks/progressbar.go ---
package hooks

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// terminalProgressBar adapts schollz/progressbar to ProgressBar. The bar is
// created on Start because the total is unknown until enumeration finishes.
type terminalProgressBar struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewTerminalProgressBar returns a ProgressBar rendering to w (normally stderr).
func NewTerminalProgressBar(w io.Writer) ProgressBar {
	return &terminalProgressBar{writer: w}
}

// Start implements ProgressBar.
func (p *terminalProgressBar) Start(total int) error {
	if total <= 0 {
		return fmt.Errorf("progress bar needs a positive total, got %d", total)
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(p.writer) }),
	)
	return nil
}

// Set implements ProgressBar.
func (p *terminalProgressBar) Set(completed int) error {
	if p.bar == nil {
		return nil
	}
	return p.bar.Set(completed)
}

// Describe implements ProgressBar.
func (p *terminalProgressBar) Describe(description string) {
	if p.bar != nil {
		p.bar.Describe(description)
	}
}

// Finish implements ProgressBar.
func (p *terminalProgressBar) Finish() error {
	if p.bar == nil {
		return nil
	}
	return p.bar.Finish()
}

// --- END OF NEW FILE internal/cli/hooks/progressbar.go ---
