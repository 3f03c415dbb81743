// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/staranto/hexdiff/internal/command"
	"github.com/staranto/hexdiff/internal/config"
	"github.com/staranto/hexdiff/internal/log"
	"github.com/staranto/hexdiff/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
// Arguments after "--" are file names and never match.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--" {
			break
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no arguments are provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// expandSets replaces the first @name argument with the entries of the
// sets.name list in the config file. Each entry may hold several
// whitespace-separated arguments, so "--bytes 8" becomes two. An @name that
// is an existing file, or that names no configured set, is left in place.
func expandSets(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	for i := 1; i < len(args); i++ {
		if args[i] == "--" {
			break
		}
		if !strings.HasPrefix(args[i], "@") || isExistingFile(args[i]) {
			continue
		}

		set := args[i][1:]
		entries, err := config.GetStringSlice("sets." + set)
		if err != nil {
			log.Debugf("no set @%s, keeping argument: %v", set, err)
			continue
		}

		var expanded []string
		for _, e := range entries {
			expanded = append(expanded, strings.Fields(e)...)
		}

		out := make([]string, 0, len(args)-1+len(expanded))
		out = append(out, args[:i]...)
		out = append(out, expanded...)
		out = append(out, args[i+1:]...)
		log.Debugf("args after set expansion: args=%v", out)
		return out
	}

	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

// run is realMain without the process globals. An interrupt cancels ctx and
// the pager reports it; that path still exits 0.
func run(ctx context.Context, args []string) int {
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)
	args = expandSets(args)

	return initAndRunApp(ctx, args)
}

// isExistingFile checks if the given path exists and is a file.
func isExistingFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func realMain() int {
	log.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, os.Args)
}
