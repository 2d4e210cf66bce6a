package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/RomuloAS/TBFSBS/internal/inputs"
	"github.com/RomuloAS/TBFSBS/internal/tbfsbs"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)
	// Target styles
	targetNumericStyle = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	targetNullStyle    = lipgloss.NewStyle().Foreground(mutedColor)
)

// wrapWidth is the sequence line width used by the wrapped view mode.
const wrapWidth = 60

type listItem struct {
	record tbfsbs.Record
}

func (i listItem) FilterValue() string {
	return i.record.Identifier
}

func (i listItem) Title() string {
	return i.record.Identifier
}

func (i listItem) Description() string {
	// Metadata line shown below the title in the selector list
	target := i.record.Target.String()
	var targetRendered string
	if i.record.Target.Kind == tbfsbs.TargetNull {
		targetRendered = targetNullStyle.Render(target)
	} else {
		targetRendered = targetNumericStyle.Render(target)
	}
	return fmt.Sprintf("Target: %s    Length: %d", targetRendered, i.record.Length())
}

type mode int

const (
	modeSequence mode = iota
	modeWrapped
	modeHeader
)

func (m mode) String() string {
	switch m {
	case modeSequence:
		return "Sequence"
	case modeWrapped:
		return "Wrapped"
	case modeHeader:
		return "Header"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	records       []tbfsbs.Record
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

// loadRecords resolves the given paths and parses every record they contain.
func loadRecords(paths []string) ([]tbfsbs.Record, error) {
	files, err := inputs.Resolve(paths)
	if err != nil {
		return nil, err
	}
	var records []tbfsbs.Record
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		recs, err := tbfsbs.ParseRecords(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

func newModel(records []tbfsbs.Record) model {
	// Create list items
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	// Create list
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "TBFSBS Records"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		records:      records,
		currentMode:  modeSequence,
		totalRecords: len(records),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate list dimensions (left panel takes 1/3 of width)
		listWidth := msg.Width / 3
		listHeight := msg.Height - 4 // Account for borders and status

		m.list.SetWidth(listWidth)
		m.list.SetHeight(listHeight)

		return m, nil

	case tea.KeyMsg:
		// while the filter input is active, keys belong to the filter
		if m.list.FilterState() == list.Filtering && msg.String() != "ctrl+c" {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "1":
			m.currentMode = modeSequence
			return m, nil

		case "2":
			m.currentMode = modeWrapped
			return m, nil

		case "3":
			m.currentMode = modeHeader
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Help modal overlay
	if m.showHelp {
		return m.renderHelpModal()
	}

	// Main layout
	leftPanel := m.renderLeftPanel()
	rightPanel := m.renderRightPanel()
	statusBar := m.renderStatusBar()

	// Create main layout
	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		rightPanel,
	)

	// Add status bar at bottom
	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		statusBar,
	)
}

func (m model) renderLeftPanel() string {
	listWidth := m.width / 3

	// Style the list container
	listContainer := containerStyle.
		Width(listWidth - 2). // Account for padding
		Height(m.height - 4). // Account for status bar
		Render(m.list.View())

	return listContainer
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	if len(m.records) == 0 {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No records available")
	}

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No record selected")
	}

	record := selectedItem.(listItem).record

	// Header with record info
	header := titleStyle.Render(fmt.Sprintf("%s - %s", record.Identifier, record.Description))

	// Metadata line: target value and sequence length
	var targetStyle lipgloss.Style
	if record.Target.Kind == tbfsbs.TargetNull {
		targetStyle = targetNullStyle
	} else {
		targetStyle = targetNumericStyle
	}

	// Build meta parts: label (muted) and colored tokens for target/length
	label := lipgloss.NewStyle().Foreground(mutedColor)
	targetColored := targetStyle.Render(record.Target.String())
	lengthColored := targetStyle.Render(fmt.Sprintf("Length: %d", record.Length()))

	metaStr := label.Render("Target: ") + targetColored + label.Render("    ") + lengthColored

	// Content based on current mode
	var content string
	switch m.currentMode {
	case modeSequence:
		content = m.formatSequence(record.Sequence, "Sequence")
	case modeWrapped:
		wrapped := strings.Join(tbfsbs.WrapSequence(record.Sequence, wrapWidth), "\n")
		content = m.formatSequence(wrapped, "Wrapped Sequence")
	case modeHeader:
		content = m.formatSequence(record.Summary(), "Header")
	}

	// Combine header and content
	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		metaStr,
		"",
		content,
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

func (m model) formatSequence(sequence, title string) string {
	if sequence == "" {
		return lipgloss.NewStyle().
			Foreground(mutedColor).
			Render(fmt.Sprintf("No %s available", strings.ToLower(title)))
	}

	// Add title
	titleStr := lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Render(title + ":")

	// Format sequence with wrapping
	sequenceContent := sequenceStyle.
		Width(m.width*2/3 - 6). // Account for padding and borders
		Render(sequence)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStr,
		"",
		sequenceContent,
	)
}

func (m model) renderStatusBar() string {
	// Left side - navigation info
	leftInfo := fmt.Sprintf("%d/%d records", m.selectedIndex+1, m.totalRecords)

	// Center - current mode
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode.String())

	// Right side - help hint
	rightInfo := "Press 'h' for help, 'q' to quit"

	// Calculate spacing
	totalUsed := len(leftInfo) + len(centerInfo) + len(rightInfo)
	spacing := m.width - totalUsed - 6 // Account for padding

	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		rightSpacing := spacing - leftSpacing

		statusContent = fmt.Sprintf("%s%s%s%s%s",
			leftInfo,
			strings.Repeat(" ", leftSpacing),
			centerInfo,
			strings.Repeat(" ", rightSpacing),
			rightInfo,
		)
	} else {
		// Fallback for narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}

	return statusBarStyle.
		Width(m.width).
		Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `TBFSBS Record Browser - Help

Navigation:
  up/down, j/k  Navigate list
  /             Filter records
  Enter         Select record

View Modes:
  1             Show sequence
  2             Show wrapped sequence
  3             Show header summary

General:
  h             Toggle this help
  q, Ctrl+C     Quit application

Current Mode: ` + m.currentMode.String() + `
Total Records: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	// Create modal box
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	modal := modalStyle.Render(helpContent)

	// Center the modal on screen
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
	)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s input [input ...]\n", os.Args[0])
		os.Exit(2)
	}
	records, err := loadRecords(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	p := tea.NewProgram(newModel(records), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
