// ABOUTME: Interactive TUI form for editing a habit.
// ABOUTME: 4-step bubbletea model collecting title, description, goal, and progress.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/developer-ongar/daytrack/internal/models"
)

// Step represents the current form step.
type Step int

const (
	StepTitle Step = iota
	StepDescription
	StepGoal
	StepProgress
	StepDone
)

// EditorModel is the bubbletea model for the habit edit form.
type EditorModel struct {
	step     Step
	inputs   [4]textinput.Model
	habit    models.Habit
	inputErr string
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewEditorModel creates a habit edit form pre-filled with the habit's
// current values.
func NewEditorModel(habit models.Habit) EditorModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "habit title"
	titleInput.Focus()
	titleInput.Width = 50
	titleInput.SetValue(habit.Title)

	descInput := textinput.New()
	descInput.Placeholder = "description (optional)"
	descInput.Width = 50
	descInput.SetValue(habit.Description)

	goalInput := textinput.New()
	goalInput.Placeholder = "goal (integer >= 1)"
	goalInput.Width = 50
	goalInput.SetValue(fmt.Sprintf("%d", habit.Goal))

	progressInput := textinput.New()
	progressInput.Placeholder = "progress"
	progressInput.Width = 50
	progressInput.SetValue(fmt.Sprintf("%d", habit.Progress))

	return EditorModel{
		step:   StepTitle,
		inputs: [4]textinput.Model{titleInput, descInput, goalInput, progressInput},
		habit:  habit,
	}
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		m.quitting = true
		return m, tea.Quit
	}

	if m.step == StepDone {
		return m, nil
	}
	return m.updateInput(keyMsg)
}

func (m EditorModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		if !m.commitStep() {
			return m, nil
		}

		idx := int(m.step)
		m.inputs[idx].Blur()

		switch m.step {
		case StepTitle:
			m.step = StepDescription
			m.inputs[1].Focus()
			return m, textinput.Blink
		case StepDescription:
			m.step = StepGoal
			m.inputs[2].Focus()
			return m, textinput.Blink
		case StepGoal:
			m.step = StepProgress
			m.inputs[3].Focus()
			return m, textinput.Blink
		case StepProgress:
			m.step = StepDone
			return m, tea.Quit
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.inputErr = ""
	return m, cmd
}

// commitStep validates the active input and folds it into the habit.
// Returns false when the form should stay on the current step.
func (m *EditorModel) commitStep() bool {
	switch m.step {
	case StepTitle:
		title := strings.TrimSpace(m.inputs[0].Value())
		if title == "" {
			m.inputErr = "title is required"
			return false
		}
		m.habit.Title = title

	case StepDescription:
		m.habit.Description = strings.TrimSpace(m.inputs[1].Value())

	case StepGoal:
		goal, err := ParseGoal(m.inputs[2].Value())
		if err != nil {
			m.inputErr = err.Error()
			return false
		}
		m.habit.Goal = goal

	case StepProgress:
		progress, err := ParseCount(m.inputs[3].Value())
		if err != nil {
			m.inputErr = err.Error()
			return false
		}
		// The stores take records as given; the clamp happens here.
		m.habit.Progress = models.ClampProgress(progress, m.habit.Goal)
	}
	return true
}

// View implements tea.Model.
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Edit Habit"))
	b.WriteString("\n\n")

	switch m.step {
	case StepTitle:
		b.WriteString(stepStyle.Render("Step 1 of 4: Title"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())

	case StepDescription:
		b.WriteString(fmt.Sprintf("  Title: %s\n\n", m.habit.Title))
		b.WriteString(stepStyle.Render("Step 2 of 4: Description"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(press Enter to leave empty)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())

	case StepGoal:
		b.WriteString(fmt.Sprintf("  Title: %s\n\n", m.habit.Title))
		b.WriteString(stepStyle.Render("Step 3 of 4: Goal"))
		b.WriteString("\n")
		b.WriteString(m.inputs[2].View())

	case StepProgress:
		b.WriteString(fmt.Sprintf("  Title: %s\n", m.habit.Title))
		b.WriteString(fmt.Sprintf("  Goal:  %d\n\n", m.habit.Goal))
		b.WriteString(stepStyle.Render("Step 4 of 4: Progress"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(values outside 0-%d are clamped)", m.habit.Goal)))
		b.WriteString("\n")
		b.WriteString(m.inputs[3].View())

	case StepDone:
		b.WriteString(successStyle.Render("✓ Saved"))
	}

	b.WriteString("\n")
	if m.inputErr != "" {
		b.WriteString(errorStyle.Render("  " + m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the edited habit.
func (m EditorModel) Result() models.Habit {
	return m.habit
}

// ShouldSave returns true if the form completed and the user did not
// cancel with Ctrl+C or Escape.
func (m EditorModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
