/*
Copyright 2026 The Redux Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name: "redux",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "c"},
			&cli.BoolFlag{Name: "d"},
			&cli.StringFlag{Name: "i"},
			&cli.StringFlag{Name: "o"},
		},
		Action: action,
		// Keep cli from exiting the test process so Run returns the error.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func TestCompressThenDecompressViaFiles(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	dir := t.TempDir()

	src := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(src, []byte("the quick brown fox"), 0o644))

	compressed := filepath.Join(dir, "compressed.bin")
	app := newApp(func(c *cli.Context) error { return run(c, sugar) })
	require.NoError(t, app.Run([]string{"redux", "-c", "-i", src, "-o", compressed}))

	restored := filepath.Join(dir, "restored.txt")
	app = newApp(func(c *cli.Context) error { return run(c, sugar) })
	require.NoError(t, app.Run([]string{"redux", "-d", "-i", compressed, "-o", restored}))

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, "the quick brown fox", string(got))
}

func TestRunRejectsConflictingFlags(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	app := newApp(func(c *cli.Context) error { return run(c, sugar) })

	err := app.Run([]string{"redux", "-c", "-d"})
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	require.Equal(t, exitUsage, exitErr.ExitCode())
}

func TestRunFailsToOpenMissingInput(t *testing.T) {
	sugar := zap.NewNop().Sugar()
	app := newApp(func(c *cli.Context) error { return run(c, sugar) })

	err := app.Run([]string{"redux", "-c", "-i", "/nonexistent/path/for/redux/tests"})
	require.Error(t, err)

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok)
	require.Equal(t, exitOpen, exitErr.ExitCode())
}
