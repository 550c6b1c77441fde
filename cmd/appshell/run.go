package main

import (
	"context"
	"runtime"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/manifold/appshell/pkg/shell"
	"github.com/manifold/appshell/pkg/tray"
)

var (
	appID    string
	title    string
	tooltip  string
	iconPath string
)

// `appshell run` command
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Runs a scripted shell app",
		Long:  "Runs a tengo shell app with its menu in the system tray.",
		Args:  cobra.ExactArgs(1),
		Run:   runShell,
	}
	cmd.Flags().StringVar(&appID, "app-id", "", "application identifier in reverse-DNS form")
	cmd.Flags().StringVar(&title, "title", "", "tray title")
	cmd.Flags().StringVar(&tooltip, "tooltip", "", "tray tooltip")
	cmd.Flags().StringVar(&iconPath, "icon", "", "tray icon path")
	return cmd
}

func runShell(cmd *cobra.Command, args []string) {
	icon, err := loadIcon(iconPath)
	fatal(err)

	sh, err := shell.New(shell.Options{
		AppID:      appID,
		Title:      title,
		Tooltip:    tooltip,
		Icon:       icon,
		ScriptPath: args[0],
		SocketPath: socketPath,
		Debug:      debugMode,
	})
	fatal(err)
	fatal(sh.Run(context.Background()))
}

// loadIcon picks the icon variant the running platform accepts: a
// path on Linux, raw bytes elsewhere.
func loadIcon(path string) (tray.Icon, error) {
	if path == "" {
		return nil, nil
	}
	if runtime.GOOS == "linux" {
		return tray.FileIcon{Path: path}, nil
	}
	return tray.ReadIcon(afero.NewOsFs(), path)
}
