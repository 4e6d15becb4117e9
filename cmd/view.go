package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grovetools/projection/cli"
	"github.com/grovetools/projection/config"
	"github.com/grovetools/projection/scene"
	"github.com/grovetools/projection/state"
	"github.com/grovetools/projection/tui"
	proj "github.com/grovetools/projection/tui/components/projection"
	"github.com/grovetools/projection/util/pathutil"
)

// NewViewCmd creates the `view` command
func NewViewCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"view [scene.yml]",
		"Navigate a scene file along its depth axis",
	)
	cmd.Long = `This command launches an interactive viewer for a depth-annotated scene.
Layers are stacked along a simulated depth axis; advancing and retreating
animates the view between panels.

The scene path can come from the argument or from projection.yml. The last
viewed panel is remembered per scene and restored on the next launch.

Examples:
  # View a scene file
  projection view scene.yml

  # Reload the view whenever the file changes
  projection view scene.yml --watch

  # Start from the first panel, ignoring remembered position
  projection view scene.yml --reset`

	cmd.Flags().Bool("watch", false, "Reload the scene when the file changes")
	cmd.Flags().Bool("reset", false, "Start from the first panel instead of the remembered one")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := cli.GetLogger(cmd)
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := loadConfig(opts.ConfigFile)
		if err != nil {
			return handler.Handle(err)
		}

		scenePath := cfg.Scene.Path
		if len(args) > 0 {
			scenePath = args[0]
		}
		if scenePath != "" {
			scenePath, err = pathutil.Expand(scenePath)
			if err != nil {
				return handler.Handle(err)
			}
		}

		watch, _ := cmd.Flags().GetBool("watch")
		reset, _ := cmd.Flags().GetBool("reset")
		if !watch {
			watch = cfg.Scene.Watch
		}

		widgetCfg := proj.Config{
			Prefix:   cfg.Scene.Prefix,
			Step:     cfg.Animation.Step,
			FPS:      cfg.Animation.FPS,
			Distance: cfg.Perspective.Distance,
			Origin:   cfg.Perspective.Origin,
		}

		switch {
		case scenePath != "":
			widgetCfg.ScenePath = scenePath
			widgetCfg.Title = filepath.Base(scenePath)
		case len(cfg.Scene.Layers) > 0:
			widgetCfg.Layers = configLayers(cfg)
			widgetCfg.Title = "projection"
		default:
			return handler.Handle(fmt.Errorf("no scene to view: pass a scene file or configure one in projection.yml"))
		}

		widget, err := proj.New(widgetCfg)
		if err != nil {
			return handler.Handle(err)
		}

		tui.InitializeTUI()

		model := viewModel{
			widget:    widget,
			scenePath: scenePath,
			restore:   scenePath != "" && !reset,
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

		// Live reload runs outside the bubbletea loop and feeds results in
		// through p.Send.
		if watch && scenePath != "" {
			watcher, err := scene.NewWatcher(scenePath, cfg.Scene.Prefix, 0, func(store *scene.Store, err error) {
				p.Send(proj.SceneReloadedMsg{Store: store, Err: err})
			})
			if err != nil {
				logger.WithError(err).Warn("Could not watch scene file, live reload disabled")
			} else {
				ctx, cancel := context.WithCancel(context.Background())
				defer cancel()
				defer watcher.Stop()
				go watcher.Start(ctx)
			}
		}

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
			return err
		}

		return nil
	}

	return cmd
}

// loadConfig loads projection.yml from an explicit path or by searching
// upward. Running without a config file is fine, defaults apply.
func loadConfig(configFile string) (*config.Config, error) {
	path, err := cli.InitConfig(configFile)
	if err != nil {
		return nil, err
	}
	if path == "" {
		cfg := &config.Config{}
		cfg.ApplyDefaults()
		return cfg, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configLayers converts configured layers into scene layers. Validation has
// already run, so every layer carries a depth.
func configLayers(cfg *config.Config) []scene.Layer {
	layers := make([]scene.Layer, 0, len(cfg.Scene.Layers))
	for _, lc := range cfg.Scene.Layers {
		layers = append(layers, scene.Layer{
			ID:    lc.ID,
			Depth: *lc.Depth,
			Node:  &scene.Node{ID: lc.ID, Content: lc.Content},
		})
	}
	return layers
}

// restoreMsg triggers the jump back to the remembered panel after startup.
type restoreMsg struct{}

// viewModel wraps the projection widget for standalone use: it restores the
// remembered panel on startup and persists the panel whenever a move lands.
type viewModel struct {
	widget    proj.Model
	scenePath string
	restore   bool
}

func (m viewModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.widget.Init()}
	if m.restore {
		cmds = append(cmds, func() tea.Msg { return restoreMsg{} })
	}
	return tea.Batch(cmds...)
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restoreMsg:
		panel, ok, err := state.LastPanel(m.scenePath)
		if err != nil || !ok || panel <= 0 || panel >= m.widget.PanelCount() {
			return m, nil
		}
		target := m.widget.Animator().Store().At(panel).Depth
		cmd := m.widget.SetDepth(target)
		return m, cmd

	case proj.MoveFinishedMsg:
		if m.scenePath != "" {
			// Persistence failures should not interrupt navigation
			_ = state.SetLastPanel(m.scenePath, msg.Frame.Panel)
		}
		return m, nil
	}

	inner, cmd := m.widget.Update(msg)
	m.widget = inner.(proj.Model)
	return m, cmd
}

func (m viewModel) View() string {
	return m.widget.View()
}
