package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/manifold/qtalk/libmux/mux"
	"github.com/manifold/qtalk/qrpc"
	"github.com/spf13/cobra"
)

// `appshell call` command
func callCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> <arg>",
		Short: "Makes a QRPC call to a running shell",
		Long:  "Makes a QRPC call to a running shell over its bridge socket. The argument is sent as JSON when it parses as JSON, as a plain string otherwise.",
		Args:  cobra.ExactArgs(2),
		Run:   runCall,
	}
}

func runCall(cmd *cobra.Command, args []string) {
	method := args[0]
	arg := args[1]
	start := time.Now()
	if err := bridgeCall(os.Stdout, method, arg); err != nil && err != io.EOF {
		fmt.Printf("qrpc: %s [%s(%q) %s]\n", err, method, arg, time.Since(start))
		os.Exit(1)
		return
	}
	fmt.Printf("qrpc: %s(%q) %s\n", method, arg, time.Since(start))
}

func bridgeCall(w io.Writer, method, arg string) error {
	var sess mux.Session
	var err error
	if os.Getenv("QRPC_HOST") != "" {
		sess, err = mux.DialWebsocket(os.Getenv("QRPC_HOST"))
	} else {
		path, perr := bridgeSocketPath()
		if perr != nil {
			return perr
		}
		sess, err = mux.DialUnix(path)
	}
	if err != nil {
		return err
	}

	client := &qrpc.Client{Session: sess}
	var msg string
	if _, err := client.Call(method, callArg(arg), &msg); err != nil {
		return err
	}
	if len(msg) > 0 {
		fmt.Fprintf(w, "REPLY => %s\n", msg)
	}
	return nil
}

// callArg decodes arg as JSON when possible so structured requests can
// be passed from the command line.
func callArg(arg string) interface{} {
	var v interface{}
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func bridgeSocketPath() (string, error) {
	if socketPath != "" {
		return socketPath, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(u.HomeDir, ".appshell", "shell.sock"), nil
}
