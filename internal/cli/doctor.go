package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/ariel-frischer/ringring/internal/audio"
	"github.com/ariel-frischer/ringring/internal/claude"
	"github.com/ariel-frischer/ringring/internal/config"
	"github.com/ariel-frischer/ringring/internal/notify"
	"github.com/ariel-frischer/ringring/internal/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the ringring environment",
	Long: `Reports platform capabilities, configured directories, and the
currently resolved theme so playback problems can be diagnosed without
waiting for a hook event.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	soundsDir := config.SoundsDir()
	cfg := config.Load(soundsDir)

	fmt.Fprintf(out, "Platform:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "Interactive:     %v\n", term.IsTerminal(int(os.Stdout.Fd())))
	fmt.Fprintf(out, "Sound playback:  %s\n", availability(audio.NewPlayer().Available()))
	fmt.Fprintf(out, "Notifications:   %s\n", availability(notify.New().Available()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config dir:      %s\n", config.ConfigDir())
	fmt.Fprintf(out, "Sounds dir:      %s\n", soundsDir)
	fmt.Fprintf(out, "Claude settings: %s\n", claude.DefaultPath())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Selection mode:  %s\n", orNone(cfg.Mode))
	fmt.Fprintf(out, "Default theme:   %s\n", orNone(cfg.Theme))
	fmt.Fprintf(out, "Random pool:     %d themes\n", len(cfg.RandomPool))
	fmt.Fprintf(out, "Workspace pins:  %d\n", len(cfg.Workspaces))

	active := theme.Resolver{
		SoundsDir: soundsDir,
		Config:    cfg,
		EnvTheme:  os.Getenv("CLAUDE_SOUND_THEME"),
	}.Resolve("", "")
	status := "missing manifest"
	if _, ok := theme.LoadManifest(theme.Dir(soundsDir, active)); ok {
		status = "ok"
	}
	fmt.Fprintf(out, "Resolved theme:  %s (%s)\n", active, status)
	return nil
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}

func orNone(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
