package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ariel-frischer/ringring/internal/config"
	ringerrors "github.com/ariel-frischer/ringring/internal/errors"
	"github.com/ariel-frischer/ringring/internal/install"
	"github.com/ariel-frischer/ringring/internal/theme"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage sound themes",
}

var themeInstallCmd = &cobra.Command{
	Use:   "install <zip-path-or-url>",
	Short: "Install a theme bundle from a local zip or an http(s) URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInstall,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeUse,
}

func init() {
	themeInstallCmd.Flags().Bool("force", false, "Overwrite an existing theme with the same name")
	themeCmd.AddCommand(themeInstallCmd, themeListCmd, themeUseCmd)
	rootCmd.AddCommand(themeCmd)
}

func runThemeInstall(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dataDir := config.SoundsDir()

	// Spinner only on an interactive terminal; writes to stderr so it
	// never mixes into parseable stdout.
	var spin *spinner.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = " Installing theme..."
		spin.Start()
	}

	name, err := install.Theme(cmd.Context(), args[0], dataDir, force)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return ringerrors.NewRuntimeError("theme install failed", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Installed theme %q to %s\n", name, filepath.Join(dataDir, name))
	return nil
}

func runThemeList(cmd *cobra.Command, _ []string) error {
	dataDir := config.SoundsDir()
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No themes installed.")
			return nil
		}
		return ringerrors.NewRuntimeError("reading themes directory failed", err)
	}

	type info struct{ name, display string }
	var themes []info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m, ok := theme.LoadManifest(filepath.Join(dataDir, entry.Name()))
		if !ok {
			continue
		}
		themes = append(themes, info{name: entry.Name(), display: m.DisplayName})
	}

	if len(themes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No themes installed.")
		return nil
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].name < themes[j].name })
	active := config.Load(dataDir).Theme
	for _, t := range themes {
		marker := " "
		if t.name == active {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s - %s\n", marker, t.name, t.display)
	}
	return nil
}

func runThemeUse(cmd *cobra.Command, args []string) error {
	name := args[0]
	dataDir := config.SoundsDir()

	if _, ok := theme.LoadManifest(theme.Dir(dataDir, name)); !ok {
		return ringerrors.NewArgumentError(
			fmt.Sprintf("theme %q is not installed", name),
			"run 'ringring theme list' to see installed themes",
			"run 'ringring theme install <zip-or-url>' to install one",
		)
	}

	if err := config.SetTheme(dataDir, name); err != nil {
		return ringerrors.NewRuntimeError("updating config failed", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Default theme set to %q\n", name)
	return nil
}
