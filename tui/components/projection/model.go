// Package projection is a bubbletea widget that navigates a stack of scene
// layers along a simulated depth axis. Advancing or retreating animates the
// current depth toward the next panel's depth in fixed steps at a steady
// frame cadence, and each frame renders every element shifted and faded by
// its distance from the camera.
package projection

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/projection/animator"
	"github.com/grovetools/projection/config"
	"github.com/grovetools/projection/errors"
	"github.com/grovetools/projection/scene"
	"github.com/grovetools/projection/tui/components/help"
	core_theme "github.com/grovetools/projection/tui/theme"
)

// Config defines the construction parameters for the widget. Exactly one
// scene source (Root, ScenePath, or Layers) must be set.
type Config struct {
	// Root is a scene tree to scan for depth-annotated layers.
	Root *scene.Node

	// ScenePath is a scene YAML document to load.
	ScenePath string

	// Layers is an explicit, strictly validated layer list.
	Layers []scene.Layer

	// Prefix is the depth annotation prefix (default "depth").
	Prefix string

	// Step is the maximum per-frame depth change (default 10).
	Step int

	// FPS is the animation cadence (default 60).
	FPS int

	// Distance is the visible depth range behind the camera (default 300).
	Distance int

	// Origin is the horizontal vanishing point, 0..1 (default 0.5).
	Origin float64

	// Title is shown in the widget header.
	Title string

	Theme *core_theme.Theme

	// --- Lifecycle callbacks ---
	// OnMoveStart is called when a move is accepted. The returned command
	// is executed alongside the widget's own.
	OnMoveStart func(animator.Frame) tea.Cmd

	// OnMoveEnd is called when a move converges on its target.
	OnMoveEnd func(animator.Frame) tea.Cmd
}

// Model is the projection widget model
type Model struct {
	anim  *animator.Animator
	keys  KeyMap
	help  help.Model
	theme *core_theme.Theme

	width  int
	height int

	distance int
	origin   float64

	frameInterval time.Duration
	title         string

	onMoveStart func(animator.Frame) tea.Cmd
	onMoveEnd   func(animator.Frame) tea.Cmd
}

// New creates a projection widget from the given configuration. Invalid
// configuration fails fast so the caller can log the error and keep the
// surrounding program running without the widget.
func New(cfg Config) (Model, error) {
	if cfg.Prefix == "" {
		cfg.Prefix = config.DefaultPrefix
	}
	if cfg.Step == 0 {
		cfg.Step = config.DefaultStep
	}
	if cfg.FPS == 0 {
		cfg.FPS = config.DefaultFPS
	}
	if cfg.Distance == 0 {
		cfg.Distance = config.DefaultDistance
	}
	if cfg.Origin == 0 {
		cfg.Origin = 0.5
	}

	if cfg.Step < 0 {
		return Model{}, errors.ConfigInvalid("step size must be positive")
	}
	if cfg.FPS < 0 || cfg.FPS > 240 {
		return Model{}, errors.ConfigInvalid("fps must be between 1 and 240")
	}
	if cfg.Distance < 0 {
		return Model{}, errors.ConfigInvalid("perspective distance must be positive")
	}
	if cfg.Origin < 0 || cfg.Origin > 1 {
		return Model{}, errors.ConfigInvalid("perspective origin must be between 0 and 1")
	}

	store, err := buildStore(cfg)
	if err != nil {
		return Model{}, err
	}

	anim, err := animator.New(store, cfg.Step)
	if err != nil {
		return Model{}, err
	}

	th := cfg.Theme
	if th == nil {
		th = core_theme.DefaultTheme
	}

	helpModel := help.New(DefaultKeyMap).WithTitle("Projection Navigator")

	return Model{
		anim:          anim,
		keys:          DefaultKeyMap,
		help:          helpModel,
		theme:         th,
		distance:      cfg.Distance,
		origin:        cfg.Origin,
		frameInterval: time.Second / time.Duration(cfg.FPS),
		title:         cfg.Title,
		onMoveStart:   cfg.OnMoveStart,
		onMoveEnd:     cfg.OnMoveEnd,
	}, nil
}

func buildStore(cfg Config) (*scene.Store, error) {
	sources := 0
	if cfg.Root != nil {
		sources++
	}
	if cfg.ScenePath != "" {
		sources++
	}
	if len(cfg.Layers) > 0 {
		sources++
	}
	if sources != 1 {
		return nil, errors.ConfigInvalid("exactly one scene source (root, path, or layers) must be set")
	}

	switch {
	case cfg.Root != nil:
		return scene.Build(cfg.Root, cfg.Prefix)
	case cfg.ScenePath != "":
		doc, err := scene.LoadFile(cfg.ScenePath)
		if err != nil {
			return nil, err
		}
		return doc.Build(cfg.Prefix)
	default:
		return scene.NewStore(cfg.Layers)
	}
}

// Init initializes the widget.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		if !m.anim.Animating() {
			return m, nil
		}
		done := m.anim.Step()
		if done {
			frame := m.frame()
			var cmds []tea.Cmd
			cmds = append(cmds, moveFinishedCmd(frame))
			if m.onMoveEnd != nil {
				if cmd := m.onMoveEnd(frame); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
			return m, tea.Batch(cmds...)
		}
		return m, m.frameCmd()

	case SceneReloadedMsg:
		if msg.Err != nil || msg.Store == nil {
			// Keep showing the last good scene
			return m, nil
		}
		anim, err := animator.New(msg.Store, m.anim.StepSize())
		if err != nil {
			return m, nil
		}
		// Try to stay on the same panel after a reload. If a move was in
		// flight its tick is still pending, so only the notifications go
		// out; scheduling another tick would double the step rate.
		wasAnimating := m.anim.Animating()
		panel := m.anim.Panel()
		if panel >= anim.PanelCount() {
			panel = anim.PanelCount() - 1
		}
		m.anim = anim
		if panel > 0 && m.anim.MoveToPanel(panel) {
			if wasAnimating {
				return m, m.startNotifyCmds()
			}
			return m, m.startedCmds()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			return m.startMove(m.anim.Advance())
		case tea.MouseButtonWheelUp:
			return m.startMove(m.anim.Retreat())
		}
		return m, nil

	case tea.KeyMsg:
		// If help is visible, it consumes all key presses
		if m.help.ShowAll {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Advance):
			return m.startMove(m.anim.Advance())

		case key.Matches(msg, m.keys.Retreat):
			return m.startMove(m.anim.Retreat())

		case key.Matches(msg, m.keys.First):
			return m.startMove(m.anim.MoveToPanel(0))

		case key.Matches(msg, m.keys.Last):
			return m.startMove(m.anim.MoveToPanel(m.anim.PanelCount() - 1))

		case key.Matches(msg, m.keys.GoTo):
			// Digit keys address panels starting at 1
			index := int(msg.String()[0] - '1')
			return m.startMove(m.anim.MoveToPanel(index))

		case key.Matches(msg, m.keys.ZoomIn):
			m.SetPerspective(m.distance - 50)
			return m, nil

		case key.Matches(msg, m.keys.ZoomOut):
			m.SetPerspective(m.distance + 50)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.Toggle()
			return m, nil

		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// startMove schedules frame ticks and notifications when a move was accepted.
func (m Model) startMove(accepted bool) (tea.Model, tea.Cmd) {
	if !accepted {
		return m, nil
	}
	return m, m.startedCmds()
}

func (m Model) startedCmds() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.startNotifyCmds())
}

// startNotifyCmds returns the move-start notifications without scheduling a
// frame tick, for paths where a tick is already pending.
func (m Model) startNotifyCmds() tea.Cmd {
	frame := m.frame()
	cmds := []tea.Cmd{moveStartedCmd(frame)}
	if m.onMoveStart != nil {
		if cmd := m.onMoveStart(frame); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) frame() animator.Frame {
	return animator.Frame{
		Current: m.anim.Current(),
		Target:  m.anim.Target(),
		Panel:   m.anim.Panel(),
	}
}

// SetDepth animates toward an arbitrary depth. The request is dropped while
// a move is in flight.
func (m *Model) SetDepth(depth int) tea.Cmd {
	if !m.anim.SetDepth(depth) {
		return nil
	}
	return m.startedCmds()
}

// SetPerspective sets the visible depth range behind the camera, with a
// floor to keep the projection sane.
func (m *Model) SetPerspective(distance int) {
	if distance < 50 {
		distance = 50
	}
	m.distance = distance
}

// SetPerspectiveOrigin sets the horizontal vanishing point, clamped to 0..1.
func (m *Model) SetPerspectiveOrigin(origin float64) {
	if origin < 0 {
		origin = 0
	}
	if origin > 1 {
		origin = 1
	}
	m.origin = origin
}

// Panel returns the current panel index.
func (m Model) Panel() int { return m.anim.Panel() }

// PanelCount returns the number of panels.
func (m Model) PanelCount() int { return m.anim.PanelCount() }

// CurrentDepth returns the current depth position.
func (m Model) CurrentDepth() int { return m.anim.Current() }

// Animating reports whether a move is in flight.
func (m Model) Animating() bool { return m.anim.Animating() }

// Animator exposes the underlying animation driver, e.g. for subscribing
// lifecycle listeners.
func (m Model) Animator() *animator.Animator { return m.anim }
