package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariel-frischer/ringring/internal/claude"
	ringerrors "github.com/ariel-frischer/ringring/internal/errors"
	"github.com/ariel-frischer/ringring/internal/install"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the ringring binary and register Claude Code hooks",
	Long: `Copies the running binary into the install directory and merges
ringring hook entries into the Claude Code settings file. Both steps are
idempotent; existing settings fields are preserved.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().String("bin-dir", defaultBinDir(), "Directory to install the binary into")
	installCmd.Flags().String("settings", claude.DefaultPath(), "Path to the Claude Code settings file")
	installCmd.Flags().Bool("skip-binary", false, "Only register hooks, do not copy the binary")
	rootCmd.AddCommand(installCmd)
}

func defaultBinDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bin")
	}
	return filepath.Join(home, ".local", "bin")
}

func runInstall(cmd *cobra.Command, _ []string) error {
	binDir, _ := cmd.Flags().GetString("bin-dir")
	settingsPath, _ := cmd.Flags().GetString("settings")
	skipBinary, _ := cmd.Flags().GetBool("skip-binary")

	out := cmd.OutOrStdout()

	if !skipBinary {
		dest, err := install.Binary(binDir)
		if err != nil {
			return ringerrors.NewRuntimeError("installing binary failed", err)
		}
		fmt.Fprintf(out, "Installed binary to %s\n", dest)
	}

	settings := claude.Load(settingsPath)
	if settings.EnsureHooks() {
		if err := settings.Save(); err != nil {
			return ringerrors.NewRuntimeError("updating Claude settings failed", err)
		}
		fmt.Fprintf(out, "Registered hooks in %s\n", settingsPath)
	} else {
		fmt.Fprintf(out, "Hooks already registered in %s\n", settingsPath)
	}

	return nil
}
