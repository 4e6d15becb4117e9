package projection

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grovetools/projection/animator"
	"github.com/grovetools/projection/scene"
)

// MoveStartedMsg is emitted to the parent program when a move is accepted.
type MoveStartedMsg struct {
	Frame animator.Frame
}

// MoveFinishedMsg is emitted to the parent program when a move converges.
type MoveFinishedMsg struct {
	Frame animator.Frame
}

// SceneReloadedMsg carries a freshly built layer store after the watched
// scene file changed. The parent program forwards it to the widget.
type SceneReloadedMsg struct {
	Store *scene.Store
	Err   error
}

// frameMsg drives one animation step
type frameMsg time.Time

// frameCmd returns a command that sends the next frame message after the
// configured frame interval.
func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func moveStartedCmd(frame animator.Frame) tea.Cmd {
	return func() tea.Msg {
		return MoveStartedMsg{Frame: frame}
	}
}

func moveFinishedCmd(frame animator.Frame) tea.Cmd {
	return func() tea.Msg {
		return MoveFinishedMsg{Frame: frame}
	}
}
