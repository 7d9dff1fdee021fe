// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a small workflow around the authenticated user's tasks:
//  1. [TaskListView] : Browse tasks with their status colors
//  2. [DetailView] : Inspect one task
//  3. [ConfirmView] : Confirm emailing the digest
//  4. [ResultView] : Report the send outcome
//
// The [Model] implements bubbletea's standard Init/Update/View pattern.
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/taskman/internal/mail"
	"github.com/desertthunder/taskman/internal/models"
	"github.com/desertthunder/taskman/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	TaskListView ViewState = iota
	DetailView
	ConfirmView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	identity models.Identity
	service  *tasks.Service
	sender   mail.Sender
	width    int
	height   int
	taskList list.Model
	selected *models.Task
	sendErr  error
	sent     bool
	help     help.Model
	keys     keyMap
}

// keyMap defines the key bindings for the TUI.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	back  key.Binding
	email key.Binding
	yes   key.Binding
	no    key.Binding
	quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		email: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "email digest"),
		),
		yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.email},
		{k.yes, k.no, k.quit},
	}
}

// taskItem wraps [models.Task] to implement list.Item.
type taskItem struct {
	task models.Task
}

func (i taskItem) FilterValue() string { return i.task.Name }
func (i taskItem) Title() string       { return i.task.Name }
func (i taskItem) Description() string {
	status := StatusStyle(i.task.Status.Color()).Render(string(i.task.Status))
	return fmt.Sprintf("%s %s → %s %s • %s",
		i.task.StartDate, i.task.StartTime, i.task.EndDate, i.task.EndTime, status)
}

type digestSentMsg struct {
	err error
}

// NewModel creates a new TUI model for the authenticated identity.
func NewModel(identity models.Identity, service *tasks.Service, sender mail.Sender) *Model {
	owned := service.List(identity)
	items := make([]list.Item, len(owned))
	for i, task := range owned {
		items[i] = taskItem{task: task}
	}

	taskList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	taskList.Title = fmt.Sprintf("Tasks for %s", identity.Name)

	return &Model{
		view:     TaskListView,
		identity: identity,
		service:  service,
		sender:   sender,
		taskList: taskList,
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init is a no-op: the task table is already in memory.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case TaskListView:
			return m.handleTaskListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case digestSentMsg:
		m.sendErr = msg.err
		m.sent = msg.err == nil
		m.view = ResultView
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case TaskListView:
		return m.renderTaskList()
	case DetailView:
		return m.renderDetail()
	case ConfirmView:
		return m.renderConfirm()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleTaskListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "e":
		m.view = ConfirmView
		return m, nil
	case "enter":
		selected := m.taskList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(taskItem); ok {
				task := item.task
				m.selected = &task
				m.view = DetailView
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = TaskListView
		m.selected = nil
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = TaskListView
		return m, nil
	case "y":
		return m, m.sendDigest()
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = TaskListView
		m.sendErr = nil
		m.sent = false
		return m, nil
	}
	return m, nil
}

// sendDigest renders and sends the digest off the Update loop. A digest with
// no tasks skips the gateway entirely.
func (m *Model) sendDigest() tea.Cmd {
	return func() tea.Msg {
		body := m.service.Digest(m.identity)
		if body == tasks.EmptyDigest {
			return digestSentMsg{err: fmt.Errorf("no tasks to email")}
		}
		return digestSentMsg{err: m.sender.Send(m.identity.Email, tasks.DigestSubject, body)}
	}
}

func (m *Model) renderTaskList() string {
	if len(m.taskList.Items()) == 0 {
		title := styles.title.Render(fmt.Sprintf("Tasks for %s", m.identity.Name))
		empty := styles.warn.Render("You don't have any tasks yet")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", title, empty, helpView)
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.email, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.taskList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return ""
	}

	task := m.selected
	title := styles.title.Render(task.Name)
	status := StatusStyle(task.Status.Color()).Render(string(task.Status))
	info := fmt.Sprintf(
		"\nStart: %s %s\nEnd: %s %s\nStatus: %s\n",
		task.StartDate, task.StartTime, task.EndDate, task.EndTime, status,
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render(fmt.Sprintf("Email your %d task(s) to %s?", len(m.taskList.Items()), m.identity.Email))
	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s", title, helpView)
}

func (m *Model) renderResult() string {
	var status string
	if m.sendErr != nil {
		status = styles.err.Render(fmt.Sprintf("Failed to send email: %v", m.sendErr))
	} else if m.sent {
		status = styles.ok.Render("✓ Tasks successfully emailed to you!")
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", status, helpView)
}
