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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jplu/urlbuilder/internal/config"
	"github.com/jplu/urlbuilder/urlbuilder"
)

type result struct {
	stdout string
	stderr string
	code   int
}

func executeWith(t *testing.T, loadOpts config.LoadOptions, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, loadOpts)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	return executeWith(t, config.LoadOptions{ConfigDirPath: t.TempDir()}, args...)
}

func TestRender(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "path and query params",
			args: []string{"render", "https://example.com/users/:id/comments", "-p", "id=10", "-q", "page=2", "--fragment", "top"},
			want: "https://example.com/users/10/comments?page=2#top\n",
		},
		{
			name: "brace params with base",
			args: []string{"render", "/books/{id}", "--base", "https://example.com", "-p", "id=7"},
			want: "https://example.com/books/7\n",
		},
		{
			name: "file relative",
			args: []string{"render", "https://example.com/users/:id/avatar.png", "--file", "-p", "id=1", "--relative"},
			want: "/users/1/avatar.png\n",
		},
		{
			name: "relative with query",
			args: []string{"render", "https://example.com/a?x=1#f", "--relative", "--with-query"},
			want: "/a?x=1\n",
		},
		{
			name: "scheme and port",
			args: []string{"render", "https://example.com/a", "--scheme", "http", "--port", "8080"},
			want: "http://example.com:8080/a\n",
		},
		{
			name: "port removed",
			args: []string{"render", "http://example.com:8080/a", "--port", "0"},
			want: "http://example.com/a\n",
		},
		{
			name: "add path",
			args: []string{"render", "https://example.com/api", "--add-path", "users/:id", "-p", "id=3"},
			want: "https://example.com/api/users/3\n",
		},
		{
			name: "typed query values",
			args: []string{"render", "https://example.com/s", "-q", "active=true", "-q", "ratio=1.50", "-q", "name=bob"},
			want: "https://example.com/s?active=true&ratio=1.50&name=bob\n",
		},
		{
			name: "values keep their text",
			args: []string{"render", "https://example.com/users/:id/v/:ver", "-p", "id=007", "-p", "ver=1.10", "-q", "zip=01234"},
			want: "https://example.com/users/007/v/1.10?zip=01234\n",
		},
		{
			name: "query set replaces",
			args: []string{"render", "https://example.com/s?page=1&size=10", "-q", "page=3"},
			want: "https://example.com/s?page=3&size=10\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, tc.args...)
			require.Equal(t, ExitOK, res.code, res.stderr)
			assert.Equal(t, tc.want, res.stdout)
		})
	}
}

func TestRender_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "relative without base", args: []string{"render", "/users"}, wantErr: "Relative URL without a base"},
		{name: "bad assignment", args: []string{"render", "https://example.com", "-p", "id"}, wantErr: "expected key=value"},
		{name: "empty key", args: []string{"render", "https://example.com", "-q", "=1"}, wantErr: "expected key=value"},
		{name: "missing argument", args: []string{"render"}, wantErr: "accepts 1 arg(s)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, tc.args...)
			assert.Equal(t, ExitFailure, res.code)
			assert.Contains(t, res.stderr, "Error:")
			assert.Contains(t, res.stderr, tc.wantErr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestCompare(t *testing.T) {
	res := execute(t, "compare", "https://example.com/a?x=1", "https://other.org/a")
	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "equal\n", res.stdout)

	res = execute(t, "compare", "https://example.com/a?x=1", "https://other.org/a", "--full")
	assert.Equal(t, ExitDifferent, res.code)
	assert.Equal(t, "different\n", res.stdout)
	assert.Empty(t, res.stderr)

	res = execute(t, "compare", "/a/b", "https://example.com/a/b", "--base", "https://example.com", "--full")
	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "equal\n", res.stdout)
}

func TestMatch(t *testing.T) {
	const template = "https://example.com/users/:id/comments"

	testCases := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{name: "bound param", args: []string{"match", template, "/Users/10/comments", "-p", "id=10"}, wantCode: ExitOK, want: "match\n"},
		{name: "unbound param", args: []string{"match", template, "/users/10/comments"}, wantCode: ExitDifferent, want: "no match\n"},
		{name: "unfilled", args: []string{"match", template, "/users/10/comments", "--unfilled"}, wantCode: ExitOK, want: "match\n"},
		{name: "wrong value", args: []string{"match", template, "/users/11/comments", "-p", "id=10"}, wantCode: ExitDifferent, want: "no match\n"},
		{name: "leading zeros", args: []string{"match", template, "/users/007/comments", "-p", "id=007"}, wantCode: ExitOK, want: "match\n"},
		{name: "length differs", args: []string{"match", template, "/users/10", "-u"}, wantCode: ExitDifferent, want: "no match\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, tc.args...)
			assert.Equal(t, tc.wantCode, res.code)
			assert.Equal(t, tc.want, res.stdout)
		})
	}
}

func TestParent(t *testing.T) {
	res := execute(t, "parent", "https://example.com/a/b/c?x=1#f", "-n", "2")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://example.com/a#f\n", res.stdout)

	res = execute(t, "parent", "https://example.com/a/b")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://example.com/a\n", res.stdout)
}

func TestBetween(t *testing.T) {
	res := execute(t, "between", "https://example.com/users/10/comments/2", "users", "comments")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "10\n", res.stdout)

	res = execute(t, "between", "https://example.com/users/10/comments/2", "comments", "users")
	assert.Equal(t, ExitDifferent, res.code)
	assert.Contains(t, res.stderr, "no segment between")
}

func TestMerge(t *testing.T) {
	res := execute(t, "merge", "https://example.com/api", "/users/:id?page=1", "--base", "https://example.com")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://example.com/api/users/:id?page=1\n", res.stdout)

	res = execute(t, "merge", "https://example.com/docs/old.md", "https://example.com/v2/new.html", "--file")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://example.com/docs/v2/new.html\n", res.stdout)
}

func TestSegments(t *testing.T) {
	res := execute(t, "segments", "/users/{id}//comments/")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "users\n:id\ncomments\n", res.stdout)

	res = execute(t, "segments", "/users/:id/", "--trim")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "users/:id\n", res.stdout)
}

func TestFile(t *testing.T) {
	res := execute(t, "file", "report.tar.gz")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "name: report.tar\next: gz\n", res.stdout)

	res = execute(t, "file", "README")
	assert.Equal(t, ExitDifferent, res.code)
	assert.Contains(t, res.stderr, "not a file name")
}

func TestVersion(t *testing.T) {
	origVersion := Version
	t.Cleanup(func() { Version = origVersion })
	Version = "v1.2.3"

	res := execute(t, "version")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "urlbuilder v1.2.3")
}

func TestVersion_IgnoresConfig(t *testing.T) {
	t.Setenv("URLBUILDER_BASE", "/not/absolute")
	t.Setenv("URLBUILDER_LOG_LEVEL", "loud")

	res := execute(t, "version")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "urlbuilder ")

	res = execute(t, "segments", "/a")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "invalid")
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("base: https://cfg.example.com/\nfile: true\n"), 0o600))
	opts := config.LoadOptions{ConfigDirPath: dir}

	res := executeWith(t, opts, "render", "/a/index.html", "--relative")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "/a/index.html\n", res.stdout)

	res = executeWith(t, opts, "parent", "/a/index.html")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://cfg.example.com/index.html\n", res.stdout, "the file survives Parent")

	res = executeWith(t, opts, "render", "/a", "--base", "https://flag.example.com")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "https://flag.example.com/a\n", res.stdout)
}

func TestConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base: http://localhost:3000\n"), 0o600))

	res := execute(t, "--config", path, "render", "/health")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "http://localhost:3000/health\n", res.stdout)

	res = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "render", "/health")
	assert.Equal(t, ExitFailure, res.code)
	assert.Contains(t, res.stderr, "failed to read config file")
}

func TestVerbose(t *testing.T) {
	res := execute(t, "render", "https://example.com/a")
	require.Equal(t, ExitOK, res.code)
	assert.Empty(t, res.stderr)

	res = execute(t, "-v", "render", "https://example.com/a")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stderr, "parsed")
	assert.Contains(t, res.stderr, "configuration loaded")
}

func TestInferValue(t *testing.T) {
	testCases := []struct {
		in       string
		wantKind urlbuilder.Kind
		wantStr  string
	}{
		{in: "10", wantKind: urlbuilder.KindNumber, wantStr: "10"},
		{in: "-3", wantKind: urlbuilder.KindNumber, wantStr: "-3"},
		{in: "2.5", wantKind: urlbuilder.KindNumber, wantStr: "2.5"},
		{in: "true", wantKind: urlbuilder.KindBool, wantStr: "true"},
		{in: "false", wantKind: urlbuilder.KindBool, wantStr: "false"},
		{in: "True", wantKind: urlbuilder.KindString, wantStr: "True"},
		{in: "Inf", wantKind: urlbuilder.KindString, wantStr: "Inf"},
		{in: "NaN", wantKind: urlbuilder.KindString, wantStr: "NaN"},
		{in: "", wantKind: urlbuilder.KindString, wantStr: ""},
		{in: "a=b", wantKind: urlbuilder.KindString, wantStr: "a=b"},
		{in: "007", wantKind: urlbuilder.KindString, wantStr: "007"},
		{in: "01234", wantKind: urlbuilder.KindString, wantStr: "01234"},
		{in: "1.10", wantKind: urlbuilder.KindString, wantStr: "1.10"},
		{in: "+5", wantKind: urlbuilder.KindString, wantStr: "+5"},
		{in: "-0", wantKind: urlbuilder.KindString, wantStr: "-0"},
		{in: "1e3", wantKind: urlbuilder.KindString, wantStr: "1e3"},
		{in: "0", wantKind: urlbuilder.KindNumber, wantStr: "0"},
		{in: "0.5", wantKind: urlbuilder.KindNumber, wantStr: "0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v := inferValue(tc.in)
			assert.Equal(t, tc.wantKind, v.Kind())
			assert.Equal(t, tc.wantStr, v.String())
		})
	}
}

func TestParseAssignments(t *testing.T) {
	params, err := parseAssignments([]string{"id=10", "q=a=b"})
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "id", params[0].Key)
	assert.Equal(t, "10", params[0].Value.String())
	assert.Equal(t, "q", params[1].Key)
	assert.Equal(t, "a=b", params[1].Value.String())

	_, err = parseAssignments([]string{"novalue"})
	require.ErrorIs(t, err, errAssignment)
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")

	err := &ExitError{Code: 3, Err: inner}
	assert.Equal(t, "boom", err.Error())
	require.ErrorIs(t, err, inner)

	assert.Equal(t, "exit status 1", (&ExitError{Code: 1}).Error())
}
