package main

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "appshell",
		Short: "Desktop application shell",
		Long:  "Runs scripted desktop apps with a system tray, notifications, and an RPC bridge.",
	}

	socketPath string
	debugMode  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "run in debug mode")
	rootCmd.PersistentFlags().StringVarP(&socketPath, "socket", "s", "", "bridge socket path (default is ~/.appshell/shell.sock)")
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(callCmd())
}

func main() {
	rootCmd.Execute()
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
