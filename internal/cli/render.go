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

	"github.com/jplu/urlbuilder/urlbuilder"
)

func renderCmd(a *app) *cobra.Command {
	var (
		file         bool
		params       []string
		queries      []string
		addPaths     []string
		fragment     string
		scheme       string
		port         int
		relative     bool
		withQuery    bool
		withFragment bool
	)

	cmd := &cobra.Command{
		Use:   "render <url>",
		Short: "Fill a URL template and print it",
		Long: `Parse a URL, apply path parameters, query parameters and other
overrides, then print the resulting URL.

Examples:
  urlbuilder render https://example.com/users/:id -p id=10
  urlbuilder render /books/{id} --base https://example.com -p id=7 -q lang=en
  urlbuilder render https://example.com/users/:id/avatar.png --file -p id=1 --relative`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.parse(args[0], file)
			if err != nil {
				return err
			}

			if scheme != "" {
				u.SetScheme(urlbuilder.Scheme(scheme))
			}
			if cmd.Flags().Changed("port") {
				u.SetPort(port)
			}
			for _, p := range addPaths {
				u.AddPath(p, nil)
			}
			pathParams, err := parseAssignments(params)
			if err != nil {
				return err
			}
			u.PathParams().SetEntries(pathParams...)
			queryParams, err := parseAssignments(queries)
			if err != nil {
				return err
			}
			u.QueryParams().SetEntries(queryParams...)
			if cmd.Flags().Changed("fragment") {
				u.SetFragment(fragment)
			}

			if relative {
				fmt.Fprintln(cmd.OutOrStdout(), u.RelativePath(withQuery, withFragment))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		},
	}

	cmd.Flags().BoolVar(&file, "file", false, "treat a trailing name.ext segment as a file")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "path parameter key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "query parameter key=value (repeatable)")
	cmd.Flags().StringArrayVar(&addPaths, "add-path", nil, "path appended to the URL (repeatable)")
	cmd.Flags().StringVar(&fragment, "fragment", "", "fragment, without '#'")
	cmd.Flags().StringVar(&scheme, "scheme", "", "scheme override")
	cmd.Flags().IntVar(&port, "port", 0, "port override, 0 removes the port")
	cmd.Flags().BoolVarP(&relative, "relative", "r", false, "print the relative path only")
	cmd.Flags().BoolVar(&withQuery, "with-query", false, "include the query in the relative path")
	cmd.Flags().BoolVar(&withFragment, "with-fragment", false, "include the fragment in the relative path")

	return cmd
}
