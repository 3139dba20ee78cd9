/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the urlbuilder command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jplu/urlbuilder/internal/config"
	"github.com/jplu/urlbuilder/urlbuilder"
)

// Exit codes. ExitDifferent is returned by commands answering a yes/no
// question (compare, match, between, file) when the answer is no.
const (
	ExitOK        = 0
	ExitDifferent = 1
	ExitFailure   = 2
)

// app holds the state shared by the commands of one invocation.
type app struct {
	loadOpts   config.LoadOptions
	configPath string
	verbose    bool
	base       string

	cfg    *config.Config
	logger *log.Logger
}

// Execute runs the root command with the process arguments and exits.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, config.LoadOptions{}))
}

func run(args []string, stdout, stderr io.Writer, loadOpts config.LoadOptions) int {
	cmd := newRootCmd(loadOpts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(stderr, "Error:", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitFailure
}

func newRootCmd(loadOpts config.LoadOptions) *cobra.Command {
	a := &app{loadOpts: loadOpts}

	cmd := &cobra.Command{
		Use:   "urlbuilder",
		Short: "Build, compare and navigate URLs with path parameters",
		Long: `urlbuilder builds URLs from templates such as
"https://api.example.com/users/:id/posts" and renders, compares or
navigates them.

Relative URLs are resolved against --base, or the "base" key of the
configuration file ($XDG_CONFIG_HOME/urlbuilder/config.yaml), or the
URLBUILDER_BASE environment variable.

Examples:
  urlbuilder render https://api.example.com/users/:id -p id=42
  urlbuilder compare /users/42 /users/42?page=2 --base https://example.com
  urlbuilder parent https://example.com/a/b/c -n 2`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/urlbuilder/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.base, "base", "", "base URL resolving relative inputs")

	cmd.AddCommand(
		renderCmd(a),
		compareCmd(a),
		matchCmd(a),
		parentCmd(a),
		betweenCmd(a),
		mergeCmd(a),
		segmentsCmd(a),
		fileCmd(a),
		versionCmd(),
	)
	return cmd
}

// init loads the configuration and sets up the logger.
func (a *app) init(cmd *cobra.Command) error {
	opts := a.loadOpts
	if a.configPath != "" {
		opts.ConfigFilePath = a.configPath
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "urlbuilder",
		Level:  level,
	})
	a.logger.Debug("configuration loaded", "base", cfg.Base, "log_level", cfg.LogLevel, "file", cfg.File)
	return nil
}

// parse parses raw against the effective base URL. forceFile splits a
// trailing file name even when the configuration does not ask for it.
func (a *app) parse(raw string, forceFile bool) (*urlbuilder.URL, error) {
	base := a.base
	if base == "" {
		base = a.cfg.Base
	}

	var opts []urlbuilder.ParseOption
	if base != "" {
		opts = append(opts, urlbuilder.WithBase(base))
	}
	if forceFile || a.cfg.File {
		opts = append(opts, urlbuilder.AsFile())
	}

	u, err := urlbuilder.Parse(raw, opts...)
	if err != nil {
		a.logger.Debug("parse failed", "input", raw, "base", base, "err", err)
		return nil, err
	}
	a.logger.Debug("parsed", "input", raw, "url", u)
	return u, nil
}
