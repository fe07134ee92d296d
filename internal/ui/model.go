// Package ui is the presentation loop: a Bubble Tea program that turns key
// presses into Tracker operations and renders the visible task list. No
// business rules live here beyond the accept-edit diff.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/DannerDQ/task-tracker/internal/config"
	"github.com/DannerDQ/task-tracker/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeSearch
)

type createField int

const (
	createTitle createField = iota
	createDescription
)

// Model is the root UI state: the Tracker, one taskView per task, the
// create form and the query inputs. All mutation requests route through the
// Tracker; the view only ever reads derived, filtered snapshots.
type Model struct {
	tracker *task.Tracker
	keys    config.Keymap

	mode   mode
	cursor int

	newTitle       textinput.Model
	newDescription textarea.Model
	createFocus    createField

	search textinput.Model
	query  task.Query

	views map[uuid.UUID]*taskView

	status  string
	lastErr bool

	width  int
	height int
}

func New(tracker *task.Tracker, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Title..."
	ti.CharLimit = 200
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = "Description..."
	ta.CharLimit = 0
	ta.SetWidth(56)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	search := textinput.New()
	search.Placeholder = "Search by title or description..."
	search.CharLimit = 200
	search.Width = 40

	m := Model{
		tracker:        tracker,
		keys:           cfg.Keys,
		newTitle:       ti,
		newDescription: ta,
		search:         search,
		views:          map[uuid.UUID]*taskView{},
		status:         "a add • e edit • d delete • / search • f filter • q quit",
	}

	if s := task.Status(cfg.DefaultFilter); s.Valid() {
		m.query.Status = &s
	}
	m.syncViews()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 8; w > 20 {
			m.newDescription.SetWidth(min(w, 72))
			m.search.Width = min(w, 60)
		}
		return m, nil

	case tea.KeyMsg:
		if v := m.activeEdit(); v != nil {
			return m.updateEditMode(v, msg)
		}
		switch m.mode {
		case modeCreate:
			return m.updateCreateMode(msg)
		case modeSearch:
			return m.updateSearchMode(msg)
		default:
			return m.updateListMode(msg)
		}
	}
	return m, nil
}

// syncViews reconciles the per-task views with the collection: one view per
// task, views of deleted tasks dropped.
func (m *Model) syncViews() {
	tasks := m.tracker.All()
	alive := make(map[uuid.UUID]bool, len(tasks))
	for _, t := range tasks {
		alive[t.ID] = true
		if _, ok := m.views[t.ID]; !ok {
			m.views[t.ID] = newTaskView(t)
		}
	}
	for id := range m.views {
		if !alive[id] {
			delete(m.views, id)
		}
	}
}

// visible derives the filtered task list shown on screen.
func (m Model) visible() []task.Task {
	return m.query.Apply(m.tracker.All())
}

// activeEdit returns the task view currently in Edit state, if any. The UI
// routes keys to at most one draft form at a time.
func (m Model) activeEdit() *taskView {
	for _, v := range m.views {
		if v.state == stateEdit {
			return v
		}
	}
	return nil
}

func (m Model) selected() (task.Task, bool) {
	vis := m.visible()
	if len(vis) == 0 || m.cursor < 0 || m.cursor >= len(vis) {
		return task.Task{}, false
	}
	return vis[m.cursor], true
}

func (m *Model) note(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.lastErr = false
}

func (m *Model) fail(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.lastErr = true
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", m.keys.Quit:
		return m, tea.Quit

	case m.keys.Down, "down", "tab":
		m.cursor = clampCursor(m.cursor+1, len(m.visible()))

	case m.keys.Up, "up", "shift+tab":
		m.cursor = clampCursor(m.cursor-1, len(m.visible()))

	case m.keys.Add:
		m.mode = modeCreate
		m.createFocus = createTitle
		m.newTitle.Focus()
		m.newDescription.Blur()
		m.note("New task: tab switches fields, ctrl+s creates, esc backs out")

	case m.keys.Edit, "enter":
		t, ok := m.selected()
		if !ok {
			m.note("nothing to edit")
			return m, nil
		}
		m.views[t.ID].beginEdit(t)
		m.note("Editing %q: tab switches fields, ctrl+s accepts, esc cancels", t.Title)

	case m.keys.Delete:
		t, ok := m.selected()
		if !ok {
			m.note("nothing to delete")
			return m, nil
		}
		m.deleteTask(t.ID, t.Title)

	case m.keys.Search:
		m.mode = modeSearch
		m.search.Focus()
		m.note("Search: type to filter, enter or esc to return")

	case m.keys.Filter:
		m.cycleStatusFilter()
	}
	return m, nil
}

func (m Model) updateCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// back to the list; the typed input is retained for later
		m.mode = modeList
		m.newTitle.Blur()
		m.newDescription.Blur()
		m.note("create cancelled (input kept)")
		return m, nil

	case "tab", "shift+tab":
		m.toggleCreateFocus()
		return m, nil

	case "enter":
		if m.createFocus == createTitle {
			// move on to the description, like submitting the title field
			m.toggleCreateFocus()
			return m, nil
		}

	case "ctrl+s":
		m.submitCreate()
		return m, nil
	}

	var cmd tea.Cmd
	if m.createFocus == createTitle {
		m.newTitle, cmd = m.newTitle.Update(msg)
	} else {
		m.newDescription, cmd = m.newDescription.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleCreateFocus() {
	if m.createFocus == createTitle {
		m.createFocus = createDescription
		m.newTitle.Blur()
		m.newDescription.Focus()
	} else {
		m.createFocus = createTitle
		m.newDescription.Blur()
		m.newTitle.Focus()
	}
}

func (m *Model) submitCreate() {
	title := m.newTitle.Value()
	description := strings.TrimSpace(m.newDescription.Value())

	created, ok, err := m.tracker.Create(title, description)
	if err != nil {
		m.syncViews()
		m.fail("save failed: %v", err)
		return
	}
	if !ok {
		// validation no-op: nothing created, input kept for correction
		m.fail("title and description are both required")
		return
	}

	m.newTitle.SetValue("")
	m.newDescription.SetValue("")
	m.newTitle.Blur()
	m.newDescription.Blur()
	m.mode = modeList
	m.syncViews()
	m.note("created %q", created.Title)
}

func (m Model) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.mode = modeList
		m.search.Blur()
		m.note("%d matching", len(m.visible()))
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query.Text = m.search.Value()
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	return m, cmd
}

func (m Model) updateEditMode(v *taskView, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// cancel: drafts discarded, canonical task untouched
		v.endEdit()
		m.note("edit cancelled")
		return m, nil

	case "tab":
		v.focusNext()
		return m, nil

	case "shift+tab":
		v.focusPrev()
		return m, nil

	case "ctrl+s":
		m.acceptEdit(v)
		return m, nil

	case "ctrl+d":
		// deletion works mid-edit too
		title := ""
		if t, ok := m.tracker.Get(v.id); ok {
			title = t.Title
		}
		m.deleteTask(v.id, title)
		return m, nil

	case "enter":
		if v.focus != fieldDescription {
			v.focusNext()
			return m, nil
		}
	}

	return m, v.handleInput(msg)
}

// acceptEdit diffs the drafts against the canonical task, sends the update
// and unconditionally returns the view to Static. The update is sent even
// when the diff is empty: any accepted edit counts as a touch.
func (m *Model) acceptEdit(v *taskView) {
	canonical, ok := m.tracker.Get(v.id)
	if !ok {
		// task vanished mid-edit; benign in a single-user session
		v.endEdit()
		return
	}

	_, _, err := m.tracker.Update(v.id, v.patch(canonical))
	v.endEdit()
	if err != nil {
		m.fail("save failed: %v", err)
		return
	}
	m.note("updated %q", canonical.Title)
}

func (m *Model) deleteTask(id uuid.UUID, title string) {
	err := m.tracker.Delete(id)
	m.syncViews()
	m.cursor = clampCursor(m.cursor, len(m.visible()))
	if err != nil {
		m.fail("save failed: %v", err)
		return
	}
	if title != "" {
		m.note("deleted %q", title)
	} else {
		m.note("deleted")
	}
}

// cycleStatusFilter walks the bucket filter: all -> to-do -> in-progress ->
// done -> all.
func (m *Model) cycleStatusFilter() {
	switch {
	case m.query.Status == nil:
		s := task.StatusToDo
		m.query.Status = &s
	case *m.query.Status == task.StatusDone:
		m.query.Status = nil
	default:
		s := m.query.Status.Next()
		m.query.Status = &s
	}
	m.cursor = clampCursor(m.cursor, len(m.visible()))
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
