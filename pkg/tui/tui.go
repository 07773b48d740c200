// Package tui provides a terminal user interface for the Mcoded7 codec
package tui

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ZILtoid1991/midi2/pkg/sysex"
)

// MIDI-hardware-display-inspired color scheme
var (
	// Primary colors - LCD amber and silver
	lcdAmber   = lipgloss.Color("#FFB000")
	lcdGreen   = lipgloss.Color("#33FF33")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lcdAmber).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(silverGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lcdAmber).
			Bold(true).
			PaddingLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lcdGreen).
			Bold(true)

	hexStyle = lipgloss.NewStyle().
			Foreground(lcdGreen)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lcdAmber).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateWorking
	StateResult
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	Encode      bool
	Framed      bool
}

var menuItems = []MenuItem{
	{Title: "Encode → .mc7", Description: "Encode a binary file to 7-bit-clean Mcoded7 data", Encode: true},
	{Title: "Encode → .syx", Description: "Encode and wrap in a SysEx F0..F7 frame", Encode: true, Framed: true},
	{Title: "Decode .mc7", Description: "Decode Mcoded7 data back to binary", Encode: false},
	{Title: "Decode .syx", Description: "Unwrap a SysEx frame and decode its payload", Encode: false, Framed: true},
	{Title: "Exit", Description: "Exit the application"},
}

// Model represents the TUI model
type Model struct {
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	spinner      spinner.Model
	selectedFile string
	outputFile   string
	inputSize    int
	outputSize   int
	preview      string
	operation    MenuItem
	err          error
	width        int
	height       int
}

// transcodeDoneMsg signals completion of an encode or decode
type transcodeDoneMsg struct {
	outputFile string
	inputSize  int
	outputSize int
	preview    string
	err        error
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick)
}

// New creates a new TUI model
func New() Model {
	// Initialize file picker
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lcdAmber)

	return Model{
		state:      StateMenu,
		menuIndex:  0,
		filePicker: fp,
		spinner:    s,
	}
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle file picker state first - it needs to receive all messages
	if m.state == StateFilePicker {
		// Check for escape/quit keys first
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		// Pass all other messages to the file picker
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		// Check if file was selected
		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = StateWorking
			return m, tea.Batch(m.spinner.Tick, m.performTranscode())
		}

		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case transcodeDoneMsg:
		m.state = StateResult
		m.outputFile = msg.outputFile
		m.inputSize = msg.inputSize
		m.outputSize = msg.outputSize
		m.preview = msg.preview
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		if m.menuIndex == len(menuItems)-1 {
			return m, tea.Quit
		}
		m.operation = menuItems[m.menuIndex]
		m.state = StateFilePicker

		// Decoding expects codec output; encoding takes anything
		if m.operation.Encode {
			m.filePicker.AllowedTypes = nil
		} else if m.operation.Framed {
			m.filePicker.AllowedTypes = []string{".syx"}
		} else {
			m.filePicker.AllowedTypes = []string{".mc7"}
		}

		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		m.outputFile = ""
		m.preview = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) performTranscode() tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(m.selectedFile)
		if err != nil {
			return transcodeDoneMsg{err: err}
		}

		var result []byte
		var outputExt string

		switch {
		case m.operation.Encode && m.operation.Framed:
			result, err = sysex.EncodeFrame(data)
			outputExt = ".syx"
		case m.operation.Encode:
			result, err = sysex.EncodeMessage(data)
			outputExt = ".mc7"
		case m.operation.Framed:
			result, err = sysex.DecodeFrame(data)
			outputExt = ".bin"
		default:
			result, err = sysex.DecodeMessage(data)
			outputExt = ".bin"
		}

		if err != nil {
			return transcodeDoneMsg{err: err}
		}

		// Generate output filename
		base := strings.TrimSuffix(m.selectedFile, filepath.Ext(m.selectedFile))
		outputFile := base + outputExt

		err = os.WriteFile(outputFile, result, 0644)
		if err != nil {
			return transcodeDoneMsg{err: err}
		}

		return transcodeDoneMsg{
			outputFile: outputFile,
			inputSize:  len(data),
			outputSize: len(result),
			preview:    hexPreview(result, 32),
		}
	}
}

// hexPreview renders up to n leading bytes as a hex dump line
func hexPreview(data []byte, n int) string {
	if len(data) > n {
		return hex.EncodeToString(data[:n]) + "…"
	}
	return hex.EncodeToString(data)
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	// Header
	s.WriteString(asciiLogo())
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateWorking:
		s.WriteString(m.viewWorking())
	case StateResult:
		s.WriteString(m.viewResult())
	}

	// Footer help
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT OPERATION "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(lcdGreen).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT INPUT FILE "))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewWorking() string {
	var s strings.Builder

	verb := "DECODING"
	if m.operation.Encode {
		verb = "ENCODING"
	}

	s.WriteString(titleStyle.Render(" " + verb + " "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Processing %s...\n", m.spinner.View(), filepath.Base(m.selectedFile)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Operation failed: %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" SUCCESS "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render("✓ Done!"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("Input:  %s (%d bytes)\n", filepath.Base(m.selectedFile), m.inputSize))
		s.WriteString(fmt.Sprintf("Output: %s (%d bytes)\n", filepath.Base(m.outputFile), m.outputSize))
		s.WriteString("\n")
		s.WriteString(hexStyle.Render(m.preview))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   __  __  ____ ___  ____  _____ ____  _____
  |  \/  |/ ___/ _ \|  _ \| ____|  _ \|___  |
  | |\/| | |  | | | | | | |  _| | | | |  / /
  | |  | | |__| |_| | |_| | |___| |_| | / /
  |_|  |_|\____\___/|____/|_____|____/ /_/
`
	return lipgloss.NewStyle().Foreground(lcdAmber).Render(logo)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
