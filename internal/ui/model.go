package ui

import (
	"reflect"
	"time"

	"github.com/jiangshengdev/lis-explorer/internal/explorer"
	"github.com/jiangshengdev/lis-explorer/internal/theme"
	uistate "github.com/jiangshengdev/lis-explorer/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the LIS trace viewer. It owns no
// algorithm state of its own: every control operation is forwarded to the
// explorer, and every frame is painted from the explorer's projections.
type Model struct {
	exp *explorer.Explorer

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	mode    Mode
	editor  textinput.Model
	element *uistate.Cursor
	region  uistate.Region
	// chainPos is the keyboard-hovered sequence position while region is
	// RegionSequence; the authoritative chain state lives in the explorer.
	chainPos int

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the explorer for the initial sequence and configuration.
func NewModel(values []int, speed time.Duration, width, height int, showFooter, verbose bool) *Model {
	m := &Model{
		exp:        explorer.New(values, speed, nil),
		showFooter: showFooter,
		verbose:    verbose,
		element:    uistate.NewCursor(len(values)),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	ti := textinput.New()
	ti.Placeholder = "2,1,3,0,4"
	ti.CharLimit = 256
	if styles.EditPrompt != nil {
		ti.PromptStyle = styles.EditPrompt.Copy()
	}
	m.editor = ti
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == ModeEdit {
		if handled, cmd := m.handleEditMode(msg); handled {
			return m, cmd
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(playTickMsg{}):       m.handlePlayTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// syncAfterInputChange refits the element cursor to a freshly computed trace
// and drops any keyboard hover focus, mirroring what the explorer did to the
// hover state.
func (m *Model) syncAfterInputChange() {
	m.element.Resize(len(m.exp.Trace().Input))
	m.element.Home()
	m.region = uistate.RegionNone
	m.chainPos = 0
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
