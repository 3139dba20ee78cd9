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
	"fmt"

	"github.com/spf13/cobra"
)

func compareCmd(a *app) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "compare <url> <other>",
		Short: "Compare two URLs",
		Long: `Compare the relative paths of two URLs, or the full URLs with --full.
Prints "equal" or "different"; the exit status is 1 when they differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], false)
			if err != nil {
				return err
			}
			other, err := a.parse(args[1], false)
			if err != nil {
				return err
			}

			if !u.CompareTo(other, !full) {
				fmt.Fprintln(cmd.OutOrStdout(), "different")
				return &ExitError{Code: ExitDifferent}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "compare full URLs instead of relative paths")
	return cmd
}

func matchCmd(a *app) *cobra.Command {
	var (
		params   []string
		unfilled bool
	)

	cmd := &cobra.Command{
		Use:   "match <template> <path>",
		Short: "Check a path against a URL template",
		Long: `Check whether a path matches the path of a URL template. Literal
segments match case-insensitively; ":name" placeholders match the value
bound with --param, or anything with --unfilled.
Prints "match" or "no match"; the exit status is 1 on no match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], false)
			if err != nil {
				return err
			}
			pathParams, err := parseAssignments(params)
			if err != nil {
				return err
			}
			u.PathParams().SetEntries(pathParams...)

			if !u.MatchPath(args[1], unfilled) {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return &ExitError{Code: ExitDifferent}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "path parameter key=value (repeatable)")
	cmd.Flags().BoolVarP(&unfilled, "unfilled", "u", false, "let placeholders match any segment")
	return cmd
}
