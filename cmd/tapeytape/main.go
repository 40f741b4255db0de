// Copyright 2025 The Tapey Tape Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the Tapey Tape daemon and its lookup CLI.

Tapey Tape writes a paper tape for stenographers: one line per stroke showing
the keys pressed, what they translated to, and, when a shorter outline exists
for what was just written, the outlines to practise instead.

# Usage

Run as a child of the steno engine, which streams stroke events on stdin:

	tapeytape

Use a custom config file and enable debug logging:

	tapeytape -config ~/steno/tapey_tape.toml -d

Look up outlines interactively:

	tapeytape -c -limit 20

Compile a JSON dictionary into the faster msgpack form:

	tapeytape -compile main.json -o main.msgpack

# Configuration

Settings come from a flat TOML file, created with defaults on first run in
the config directory ($XDG_CONFIG_HOME/tapeytape or ~/.config/tapeytape):

	output_file = "tapey_tape.txt"
	line_format = "%b |%S| %D  %s"
	suggestion_windows = 10
	dictionaries = ["user.json", "main.json"]

Relative paths are taken from the directory holding the config file.

# IPC Protocol

The daemon reads msgpack requests on stdin and replies on stdout. See
package server for the message shapes. EOF on stdin ends the session and
flushes a line still waiting for its suggestions.

# Command Line Flags

	-config string
	    Path to a custom config file
	-d  Enable debug mode with detailed logging
	-c  Run the lookup CLI instead of the daemon
	-limit int
	    Number of translations listed when browsing in the CLI
	-compile string
	    Dictionary to compile to msgpack, then exit
	-o string
	    Output path for -compile (default: input with .msgpack extension)
	-version
	    Show current version
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bastiangx/tapeytape/internal/cli"
	"github.com/bastiangx/tapeytape/internal/utils"
	"github.com/bastiangx/tapeytape/pkg/config"
	"github.com/bastiangx/tapeytape/pkg/dictionary"
	"github.com/bastiangx/tapeytape/pkg/server"
	"github.com/bastiangx/tapeytape/pkg/tape"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "tapeytape"
	gh      = "https://github.com/bastiangx/tapeytape"
)

// sigHandler exits on interrupt. A line waiting for suggestions is lost;
// engines end a session by closing stdin instead.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; the work happens in the packages it calls.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the lookup CLI instead of the daemon")
	limit := flag.Int("limit", cli.DefaultLimit, "Number of translations listed when browsing by prefix")
	compileSrc := flag.String("compile", "", "Compile a dictionary to msgpack and exit")
	compileDst := flag.String("o", "", "Output path for -compile")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *compileSrc != "" {
		dst := *compileDst
		if dst == "" {
			dst = strings.TrimSuffix(*compileSrc, filepath.Ext(*compileSrc)) + ".msgpack"
		}
		n, err := dictionary.Compile(*compileSrc, dst)
		if err != nil {
			log.Fatalf("Failed to compile %s: %v", *compileSrc, err)
		}
		log.Infof("Compiled %d entries into %s", n, dst)
		return
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Error("Either env is not set or system is not supported")
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	for k, v := range pathResolver.GetRuntimeInfo() {
		log.Debug("runtime", k, v)
	}

	defaultPath, err := pathResolver.GetConfigPath(config.FileName)
	if err != nil {
		log.Warnf("Failed to determine default config path: %v", err)
		defaultPath = ""
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile, defaultPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", configPath, err)
	}
	log.Debugf("Config: %s", appConfig)

	stack, err := dictionary.LoadStack(appConfig.Dictionaries)
	if err != nil {
		log.Warnf("Some dictionaries were not loaded: %v", err)
	}
	if stack.Len() == 0 {
		log.Warn("No dictionaries loaded, suggestions are disabled")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", *limit, "dictionaries", stack.Len())

		inputHandler := cli.NewInputHandler(stack, *limit, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	output, err := appConfig.OpenOutput()
	if err != nil {
		log.Fatalf("Failed to open tape: %v", err)
	}
	defer output.Close()

	writer := bufio.NewWriter(output)
	lookups := dictionary.NewCache(stack, dictionary.DefaultCacheSize)
	recorder := tape.New(appConfig, lookups, writer)
	srv := server.NewServer(recorder, os.Stdin, bufio.NewWriter(os.Stdout))

	showStartupInfo(configPath, appConfig.OutputFile, stack.Len())

	if err := srv.Start(); err != nil {
		output.Close()
		log.Fatalf("Server stopped: %v", err)
	}
	log.Debug("Lookup cache", "stats", lookups.Stats())
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Tapey Tape ] A paper tape that suggests shorter outlines")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the session at debug level.
func showStartupInfo(configPath, tapePath string, dictionaries int) {
	log.Debug("===========")
	log.Debugf("%s %s", AppName, Version)
	log.Debugf("Process ID: [ %d ]", os.Getpid())
	log.Debugf("config: ( %s )", configPath)
	log.Debugf("tape: ( %s )", tapePath)
	log.Debugf("dictionaries: %d", dictionaries)
	log.Debug("status: ready")
	log.Debug("===========")
}
