// Package cli provides the Cobra command tree for ringring. The bare
// `ringring` invocation is the Claude Code hook entry point: it reads one
// event payload from stdin, dispatches it, and always exits zero.
// Management commands (install, theme, doctor) behave like a normal CLI.
package cli

import (
	"os"

	"github.com/ariel-frischer/ringring/internal/audio"
	"github.com/ariel-frischer/ringring/internal/config"
	"github.com/ariel-frischer/ringring/internal/dispatch"
	"github.com/ariel-frischer/ringring/internal/hook"
	"github.com/ariel-frischer/ringring/internal/notify"
	"github.com/ariel-frischer/ringring/internal/state"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ringring",
	Short: "Sound and notification cues for Claude Code",
	Long: `ringring plays themed sound cues and desktop notifications for Claude
Code lifecycle events (session start, task completion, permission
requests, idle prompts).

Invoked with no arguments it acts as the hook entry point: it reads one
event payload from stdin and exits immediately. Claude Code invokes it
this way after 'ringring install' registers the hooks.`,
	Example: `  # Register hooks and install the binary
  ringring install

  # Install a theme bundle and make it the default
  ringring theme install https://example.com/peon.zip
  ringring theme use peon

  # Inspect the environment
  ringring doctor`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHook,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// runHook is the hook entry point. Every failure path returns nil: the
// hook sits in Claude Code's synchronous control path and an unparseable
// payload or a dead audio device must never surface as a hook error.
func runHook(cmd *cobra.Command, _ []string) error {
	in, ok := hook.ReadInput(cmd.InOrStdin())
	if !ok {
		return nil
	}

	soundsDir := config.SoundsDir()
	player := audio.NewPlayer()
	notifier := notify.New()

	d := dispatch.Dispatcher{
		SoundsDir: soundsDir,
		Config:    config.Load(soundsDir),
		Store:     state.NewStore(os.Getenv("RINGRING_STATE_DIR")),
		EnvTheme:  os.Getenv("CLAUDE_SOUND_THEME"),
		Sinks: dispatch.Sinks{
			Play: player.Play,
			Notify: func(title, body, icon string) error {
				return notifier.Send(notify.Notification{Title: title, Body: body, Icon: icon})
			},
		},
	}

	cwd, _ := os.Getwd()
	d.Dispatch(in, cwd)
	return nil
}
