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

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jplu/urlbuilder/urlbuilder"
)

var errNotFile = errors.New("not a file name")

func segmentsCmd(a *app) *cobra.Command {
	var trim bool

	cmd := &cobra.Command{
		Use:   "segments <path>",
		Short: "Split a path into segments",
		Long: `Print the non-empty segments of a path, one per line, with "{name}"
placeholders rewritten to ":name". With --trim, print the path without its leading and trailing
slashes instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if trim {
				fmt.Fprintln(cmd.OutOrStdout(), urlbuilder.TrimPath(args[0]))
				return nil
			}
			segments := urlbuilder.SplitPath(args[0])
			a.logger.Debug("split path", "path", args[0], "count", len(segments))
			for _, s := range segments {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trim, "trim", false, "print the trimmed path")
	return cmd
}

func fileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "file <name>",
		Short: "Split a file name into name and extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := urlbuilder.ParseFile(args[0])
			if !ok {
				a.logger.Debug("no extension found", "input", args[0])
				return &ExitError{Code: ExitDifferent, Err: fmt.Errorf("%w: %q", errNotFile, args[0])}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "name: %s\next: %s\n", f.Name, f.Ext)
			return nil
		},
	}
}
