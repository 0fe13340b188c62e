// --- START OF FINAL REVISED FILE internal/cli/ui/model.go ---
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/internal/cli/hooks"
	"github.com/nicole27313864/Simplified-Traditional-Conversion-Tool/pkg/converter"
)

// header, progress line, footer and the fatal error line
const listHeightMargin = 4

const (
	phaseScanning   = "Scanning..."
	phaseConverting = "Converting..."
	phaseComplete   = "Complete"
	phaseFailed     = "Failed"
)

// Model is the Bubble Tea model for the conversion TUI. It is driven by the
// messages hooks.CLIHooks sends and quits on its own once the run completes.
// All state is touched only from Update, so no locking is needed.
type Model struct {
	list     list.Model
	spinner  spinner.Model
	progress progress.Model

	width       int
	height      int
	initialized bool

	appVersion string
	// cancel stops the run when the user quits early. May be nil.
	cancel func()

	summary      Summary
	completed    int
	percent      float64
	statusLine   string
	phaseMessage string
	fatalError   string
	done         bool
	quitting     bool
}

// listItem is one converted, skipped or failed file in the list.
type listItem struct {
	path    string
	status  converter.Status
	message string
}

// Summary holds the counts shown in the footer.
type Summary struct {
	TotalFilesScanned int
	TotalTargets      int
	ConvertedCount    int
	SkippedCount      int
	ErrorCount        int
	StartTime         time.Time
}

// NewModel creates the initial TUI model. cancel is called when the user
// quits before the run has finished.
func NewModel(appVersion string, cancel func()) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorStatusConverting)

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorSelectedFg).
		Background(ColorSelectedBg).
		Bold(true).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorSelectedDescFg).
		Background(ColorSelectedBg).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.
		Foreground(ColorNormalFg).Padding(0, 0, 0, 1)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.
		Foreground(ColorNormalDescFg).Padding(0, 0, 0, 1)

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowTitle(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return &Model{
		list:         l,
		spinner:      s,
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		appVersion:   appVersion,
		cancel:       cancel,
		summary:      Summary{StartTime: time.Now()},
		phaseMessage: phaseScanning,
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.initialized = true

	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if !m.done && m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		var listCmd tea.Cmd
		m.list, listCmd = m.list.Update(msg)
		cmds = append(cmds, listCmd)

	case spinner.TickMsg:
		if m.quitting || m.done {
			return m, nil
		}
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case hooks.TargetsResolvedMsg:
		m.summary.TotalFilesScanned = msg.Summary.TotalFilesScanned
		m.summary.TotalTargets = msg.Summary.TotalTargets
		m.phaseMessage = phaseConverting
		m.statusLine = fmt.Sprintf("%d file(s) to convert", msg.Summary.TotalTargets)

	case hooks.ProgressMsg:
		ev := msg.Event
		item := listItem{path: ev.Path, status: ev.Status}
		switch ev.Status {
		case converter.StatusSkipped:
			m.summary.SkippedCount++
			item.message = "skipped"
		default:
			m.summary.ConvertedCount++
		}
		m.summary.TotalTargets = ev.Total
		m.completed = ev.Completed
		m.percent = float64(ev.Percent) / 100
		m.statusLine = ev.Message
		cmds = append(cmds, m.appendItem(item))

	case hooks.RunCompleteMsg:
		s := msg.Report.Summary
		m.done = true
		m.summary.TotalFilesScanned = s.TotalFilesScanned
		m.summary.TotalTargets = s.TotalTargets
		m.summary.ConvertedCount = s.ConvertedCount
		m.summary.SkippedCount = s.SkippedCount
		m.summary.ErrorCount = s.ErrorCount
		m.statusLine = s.StatusMessage
		if s.Failed {
			m.phaseMessage = phaseFailed
			m.fatalError = fatalErrorText(msg.Report)
			for _, e := range msg.Report.Errors {
				if e.Path != "" {
					cmds = append(cmds, m.appendItem(listItem{path: e.Path, status: converter.StatusFailed, message: e.Error}))
				}
			}
		} else {
			m.phaseMessage = phaseComplete
			m.percent = 1
		}
		cmds = append(cmds, tea.Quit)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendItem(item listItem) tea.Cmd {
	return m.list.InsertItem(len(m.list.Items()), item)
}

func (m *Model) resize() {
	listHeight := m.height - listHeightMargin
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width, listHeight)
	barWidth := m.width - 20
	if barWidth < 10 {
		barWidth = 10
	}
	m.progress.Width = barWidth
}

func fatalErrorText(report converter.Report) string {
	for _, e := range report.Errors {
		if e.IsFatal {
			if e.Path == "" {
				return "Fatal Error: " + e.Error
			}
			return fmt.Sprintf("Fatal Error: %s (%s)", e.Error, e.Path)
		}
	}
	return report.Summary.StatusMessage
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Exiting...\n"
	}
	if !m.initialized {
		return "Initializing..."
	}

	// --- Header ---
	headerLeft := "zh-converter " + m.appVersion
	headerRight := m.phaseMessage
	if !m.done {
		headerRight = m.spinner.View() + " " + m.phaseMessage
	}
	header := HeaderStyle.Width(m.width).Render(joinEnds(m.width-2, headerLeft, headerRight))

	// --- Progress ---
	count := converter.PaddedCount(m.completed, m.summary.TotalTargets)
	progressLine := ProgressLineStyle.Render(fmt.Sprintf("%s %s %3.0f%%", m.progress.ViewAs(m.percent), count, m.percent*100))

	// --- Footer ---
	elapsed := time.Since(m.summary.StartTime).Round(time.Millisecond)
	footerLeft := fmt.Sprintf("Converted: %d | Skipped: %d | Failed: %d | Scanned: %d | Elapsed: %s",
		m.summary.ConvertedCount,
		m.summary.SkippedCount,
		m.summary.ErrorCount,
		m.summary.TotalFilesScanned,
		elapsed,
	)
	footer := FooterStyle.Width(m.width).Render(joinEnds(m.width-2, footerLeft, "q: quit"))

	// --- Status ---
	statusView := m.statusLine
	if m.fatalError != "" {
		statusView = StatusStyleFailed.Render(m.fatalError)
	} else if m.done && m.statusLine != "" {
		statusView = StatusStyleSuccess.Render(m.statusLine)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		progressLine,
		m.list.View(),
		statusView,
		footer,
	)
}

// joinEnds places left and right at the edges of a line of the given width.
func joinEnds(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// --- List Item Interface ---

// FilterValue implements the list.Item interface.
func (i listItem) FilterValue() string { return i.path }

// Title implements the list.Item interface.
func (i listItem) Title() string { return i.path }

// Description implements the list.Item interface.
func (i listItem) Description() string {
	var statusStyle lipgloss.Style
	var statusIcon string
	switch i.status {
	case converter.StatusSuccess:
		statusStyle, statusIcon = StatusStyleSuccess, "✓"
	case converter.StatusFailed:
		statusStyle, statusIcon = StatusStyleFailed, "✗"
	case converter.StatusSkipped:
		statusStyle, statusIcon = StatusStyleSkipped, "S"
	case converter.StatusConverting:
		statusStyle, statusIcon = StatusStyleConverting, "…"
	default:
		statusStyle, statusIcon = StatusStylePending, " "
	}
	return fmt.Sprintf("%s %s", statusStyle.Render("["+statusIcon+"]"), i.message)
}

// --- END OF FINAL REVISED FILE internal/cli/ui/model.go ---
