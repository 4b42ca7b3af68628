package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tiw/gaap-web-service/internal/cli/client"
	"github.com/tiw/gaap-web-service/internal/cli/types"
)

const (
	defaultInputWidth     = 80
	defaultViewportWidth  = 80
	defaultViewportHeight = 24
	inputCharLimit        = 200
	searchPageSize        = 200
	requestTimeout        = 30 * time.Second
	inputHeightReserved   = 2
	statusHeightReserved  = 3
	minContentHeight      = 8
)

var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// BrowseProgram encapsulates the taxonomy browser TUI
type BrowseProgram struct {
	model browseModel
}

// NewBrowseProgram creates a new browser program instance
func NewBrowseProgram(apiClient *client.APIClient) *BrowseProgram {
	return &BrowseProgram{model: initialModel(apiClient)}
}

// Run starts the browser
func (p *BrowseProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// browseModel is the Bubble Tea model holding all browser state
type browseModel struct {
	apiClient *client.APIClient

	input       textinput.Model
	contentView viewport.Model

	searching bool
	keyword   string
	result    *types.SearchResult
	detail    *types.ElementInfo
	err       error

	width  int
	height int
}

func initialModel(apiClient *client.APIClient) browseModel {
	input := textinput.New()
	input.Placeholder = "keyword or exact element name"
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Width = defaultInputWidth
	input.Prompt = "> "

	contentViewport := viewport.New(defaultViewportWidth, defaultViewportHeight)
	contentViewport.SetContent(welcomeText())

	return browseModel{
		apiClient:   apiClient,
		input:       input,
		contentView: contentViewport,
		width:       defaultViewportWidth,
		height:      defaultViewportHeight + inputHeightReserved + statusHeightReserved,
	}
}

// Init initializes the model (Bubble Tea interface)
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Message types
type (
	searchDoneMsg struct {
		keyword string
		result  *types.SearchResult
	}
	detailDoneMsg struct{ info *types.ElementInfo }
	requestErrMsg struct{ err error }
)

// Update processes messages and updates the model (Bubble Tea interface)
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, tea.Quit
			}
			if !m.searching {
				m.searching = true
				m.err = nil
				cmds = append(cmds, m.search(text))
			}

		case tea.KeyUp:
			m.contentView.LineUp(1)
		case tea.KeyDown:
			m.contentView.LineDown(1)
		case tea.KeyPgUp:
			m.contentView.HalfViewUp()
		case tea.KeyPgDown:
			m.contentView.HalfViewDown()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt)
		m.contentView.Width = msg.Width
		contentHeight := msg.Height - inputHeightReserved - statusHeightReserved
		if contentHeight < minContentHeight {
			contentHeight = minContentHeight
		}
		m.contentView.Height = contentHeight

	case searchDoneMsg:
		m.searching = false
		m.keyword = msg.keyword
		m.result = msg.result
		m.detail = nil
		m.contentView.SetContent(m.renderResult())
		m.contentView.GotoTop()
		// exact match: fetch the full resolution too
		for _, name := range msg.result.Elements {
			if name == msg.keyword {
				m.searching = true
				cmds = append(cmds, m.fetchDetail(name))
				break
			}
		}

	case detailDoneMsg:
		m.searching = false
		m.detail = msg.info
		m.contentView.SetContent(m.renderResult())
		m.contentView.GotoTop()

	case requestErrMsg:
		m.searching = false
		m.err = msg.err
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the browser (Bubble Tea interface)
func (m browseModel) View() string {
	var status string
	switch {
	case m.searching:
		status = dimStyle.Render("searching...")
	case m.err != nil:
		status = errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	case m.result != nil:
		status = dimStyle.Render(fmt.Sprintf("%d elements match %q", m.result.Total, m.keyword))
	default:
		status = dimStyle.Render("enter a keyword to search")
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n%s",
		boldStyle.Render("US GAAP Taxonomy Browser"),
		m.contentView.View(),
		status,
		m.input.View(),
	)
}

// search queries the API for elements matching keyword
func (m browseModel) search(keyword string) tea.Cmd {
	apiClient := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := apiClient.SearchElements(ctx, keyword, 0, searchPageSize)
		if err != nil {
			return requestErrMsg{err: err}
		}
		return searchDoneMsg{keyword: keyword, result: result}
	}
}

// fetchDetail resolves one element fully
func (m browseModel) fetchDetail(name string) tea.Cmd {
	apiClient := m.apiClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		info, err := apiClient.GetElement(ctx, name)
		if err != nil {
			return requestErrMsg{err: err}
		}
		return detailDoneMsg{info: info}
	}
}

// renderResult renders the current search result and optional detail pane
func (m browseModel) renderResult() string {
	var sb strings.Builder

	if m.detail != nil {
		sb.WriteString(accentStyle.Render(m.detail.ElementName))
		sb.WriteString("\n")
		if m.detail.Label != nil {
			sb.WriteString(fmt.Sprintf("  %s\n", *m.detail.Label))
		}
		for _, ref := range m.detail.References {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("  Topic %s-%s %s %s\n",
				ref.Topic, ref.SubTopic, ref.Section, ref.Paragraph)))
			if ref.URI != "" {
				sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s\n", ref.URI)))
			}
		}
		sb.WriteString("\n")
	}

	if m.result == nil || len(m.result.Elements) == 0 {
		sb.WriteString(dimStyle.Render("no matches"))
		return sb.String()
	}

	for _, name := range m.result.Elements {
		if name == m.keyword {
			sb.WriteString(accentStyle.Render("  "+name) + "\n")
		} else {
			sb.WriteString("  " + name + "\n")
		}
	}
	if m.result.Total > len(m.result.Elements) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  ... %d more, refine the keyword\n",
			m.result.Total-len(m.result.Elements))))
	}

	return sb.String()
}

func welcomeText() string {
	return strings.Join([]string{
		"",
		"  Type a keyword and press Enter to search taxonomy elements.",
		"  Searching for an exact element name also shows its label and",
		"  accounting-standard references.",
		"",
		"  Up/Down scroll, Esc or empty Enter quits.",
	}, "\n")
}
