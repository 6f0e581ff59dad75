package cli

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for terminal output.
type Theme struct {
	Status     lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Hint       lipgloss.Color
	ProgressBg lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:     lipgloss.Color("#5FAFD7"), // light blue
	Success:    lipgloss.Color("#00D787"), // green
	Error:      lipgloss.Color("#FF005F"), // red
	Warning:    lipgloss.Color("#FFAF00"), // amber
	Hint:       lipgloss.Color("#6C6C6C"), // dim gray
	ProgressBg: lipgloss.Color("#3A3A3A"), // dark gray
}

// Style functions for dynamic theming
func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Warning)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// fileDoneMsg reports one processed file.
type fileDoneMsg struct {
	file string
	err  error
}

// batchDoneMsg signals that every file has been processed.
type batchDoneMsg struct{}

// batchModel is the bubbletea model for batch file processing.
type batchModel struct {
	total    int
	done     int
	lastFile string
	progress progress.Model
	theme    Theme
	finished bool
	aborted  bool
	err      error
}

func newBatchModel(total int) batchModel {
	prog := progress.New(
		progress.WithDefaultBlend(),
		progress.WithWidth(40),
	)

	return batchModel{
		total:    total,
		progress: prog,
		theme:    defaultTheme,
	}
}

// Init returns the initial command.
func (m batchModel) Init() tea.Cmd {
	return m.progress.Init()
}

// Update handles messages and returns the updated model.
func (m batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.aborted = true
			return m, tea.Quit
		}

	case fileDoneMsg:
		m.done++
		m.lastFile = msg.file
		if msg.err != nil {
			m.err = fmt.Errorf("%s: %w", msg.file, msg.err)
			m.finished = true
			return m, tea.Quit
		}
		return m, nil

	case batchDoneMsg:
		m.finished = true
		return m, tea.Quit

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.progress, cmd = m.progress.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m batchModel) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m batchModel) renderContent() string {
	if m.finished || m.aborted {
		return m.finalView()
	}

	var pct float64
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}

	status := m.theme.statusStyle().Render("[parsing]")
	progressBar := m.progress.ViewAs(pct)
	counts := fmt.Sprintf("%d/%d files", m.done, m.total)
	hint := m.theme.hintStyle().Render("Press Ctrl+C to abort")

	return fmt.Sprintf("%s %s %s\n%s\n", status, progressBar, counts, hint)
}

func (m batchModel) finalView() string {
	if m.aborted {
		return m.theme.hintStyle().Render("\nAborted.\n")
	}
	if m.err != nil {
		return m.theme.errorStyle().Render(fmt.Sprintf("\n✗ Failed: %s\n", m.err))
	}
	return m.theme.completedStyle().Render(fmt.Sprintf("✓ Parsed %d files\n", m.done))
}

// runWithProgress processes each file under an interactive progress bar.
// process runs in a background goroutine; the first failure stops the batch.
func runWithProgress(files []string, process func(file string) error) error {
	p := tea.NewProgram(newBatchModel(len(files)))

	go func() {
		for _, file := range files {
			err := process(file)
			p.Send(fileDoneMsg{file: file, err: err})
			if err != nil {
				return
			}
		}
		p.Send(batchDoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("progress UI error: %w", err)
	}

	if m, ok := finalModel.(batchModel); ok {
		if m.aborted {
			return fmt.Errorf("aborted")
		}
		if m.err != nil {
			return m.err
		}
	}
	return nil
}
