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
)

var errNoSegment = errors.New("no segment between")

func parentCmd(a *app) *cobra.Command {
	var levels int

	cmd := &cobra.Command{
		Use:   "parent <url>",
		Short: "Print the URL n levels up",
		Long: `Drop the last path segments of a URL. The query is removed; the
fragment is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Parent(levels))
			return nil
		},
	}

	cmd.Flags().IntVarP(&levels, "levels", "n", 1, "number of levels to go up")
	return cmd
}

func betweenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "between <url> <a> <b>",
		Short: "Print the segment following a, when b comes later",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], false)
			if err != nil {
				return err
			}
			segment, ok := u.Between2Segments(args[1], args[2])
			if !ok {
				return &ExitError{Code: ExitDifferent, Err: fmt.Errorf("%w %q and %q", errNoSegment, args[1], args[2])}
			}
			fmt.Fprintln(cmd.OutOrStdout(), segment)
			return nil
		},
	}
}

func mergeCmd(a *app) *cobra.Command {
	var file bool

	cmd := &cobra.Command{
		Use:   "merge <url> <other>",
		Short: "Append the path and parameters of other to url",
		Long: `Append the path segments, path parameters and query parameters of
<other> to <url>. The file of <other> replaces the file of <url>.

Example:
  urlbuilder merge https://example.com/api /users/:id?page=1 --base https://example.com`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], file)
			if err != nil {
				return err
			}
			other, err := a.parse(args[1], file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.MergePathWith(other))
			return nil
		},
	}

	cmd.Flags().BoolVar(&file, "file", false, "treat trailing name.ext segments as files")
	return cmd
}
