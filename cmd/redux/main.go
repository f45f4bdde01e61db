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

// Command redux is a minimal compress/decompress driver over the redux
// adaptive arithmetic coder.
package main

import (
	"io"
	"os"

	redux "github.com/peterbudai/redux"
	"github.com/peterbudai/redux/stream"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	exitUsage = 1
	exitOpen  = 2
	exitCodec = 3
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	app := &cli.App{
		Name:  "redux",
		Usage: "adaptive arithmetic coder for byte streams",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "c", Usage: "compress"},
			&cli.BoolFlag{Name: "d", Usage: "decompress"},
			&cli.StringFlag{Name: "i", Usage: "input path (default stdin)"},
			&cli.StringFlag{Name: "o", Usage: "output path (default stdout)"},
		},
		Action: func(c *cli.Context) error {
			return run(c, sugar)
		},
		// Exit codes are handled below, after logging.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			sugar.Errorw("redux failed", "error", exitErr.Error())
			os.Exit(exitErr.ExitCode())
		}
		// run wraps all of its errors in cli.Exit, so anything else comes
		// from argument parsing.
		sugar.Errorw("redux failed", "error", err.Error())
		os.Exit(exitUsage)
	}
}

func run(c *cli.Context, sugar *zap.SugaredLogger) error {
	compress := c.Bool("c")
	decompress := c.Bool("d")

	if compress == decompress {
		return cli.Exit("exactly one of -c or -d is required", exitUsage)
	}

	in, err := openInput(c.String("i"))
	if err != nil {
		return cli.Exit(err.Error(), exitOpen)
	}
	defer in.Close()

	out, err := openOutput(c.String("o"))
	if err != nil {
		return cli.Exit(err.Error(), exitOpen)
	}
	defer out.Close()

	var bytesIn, bytesOut uint64

	if compress {
		bytesIn, bytesOut, err = stream.Compress(in, out)
	} else {
		bytesIn, bytesOut, err = stream.Decompress(in, out)
	}

	if err != nil {
		if re, ok := err.(*redux.Error); ok {
			sugar.Errorw("codec error", "kind", re.Kind().String(), "error", re.Error())
		} else {
			sugar.Errorw("codec error", "error", err.Error())
		}
		return cli.Exit(err.Error(), exitCodec)
	}

	ratio := float64(0)
	if bytesIn > 0 {
		ratio = float64(bytesOut) / float64(bytesIn) * 100
	}

	if compress {
		sugar.Infow("compressed", "bytesIn", bytesIn, "bytesOut", bytesOut, "ratioPercent", ratio)
	} else {
		sugar.Infow("decompressed", "bytesIn", bytesIn, "bytesOut", bytesOut, "ratioPercent", ratio)
	}

	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
