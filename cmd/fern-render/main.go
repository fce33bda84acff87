package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fernpond/internal/app"
	"fernpond/internal/logging"
	"fernpond/internal/render"
	"fernpond/internal/scene"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	cfg := app.NewConfig()
	var (
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:          "fern-render",
		Short:        "Render a fern pond to an image file",
		Long:         `Render ferns, their reflection and water ripples once and write the result as PNG or SVG.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.Setup(cfg.LogLevel)
			if format == "" {
				format = formatFromPath(out)
			}

			// The image is buffered so a failed render leaves no file behind.
			var buf bytes.Buffer
			backend, err := render.Open(format, &buf)
			if err != nil {
				return err
			}
			comp := scene.NewCompositor(scene.WithLogger(log), scene.WithWorkers(cfg.Workers))
			sc := scene.New(cfg.Scene(), comp)
			if err := sc.Render(backend); err != nil {
				log.Error().Err(err).Msg("render failed")
				return err
			}

			if out == "-" {
				_, err = stdout.Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			stats := sc.LastStats()
			log.Info().
				Str("path", out).
				Str("format", format).
				Int64("seed", sc.Seed()).
				Int("segments", stats.Segments).
				Dur("elapsed", stats.Elapsed).
				Msg("fern pond written")
			return nil
		},
	}
	cfg.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "fernpond.png", "output path, - for stdout")
	cmd.Flags().StringVar(&format, "format", "", "output format ("+strings.Join(render.Formats(), ", ")+"), inferred from --out when empty")
	return cmd
}

func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "png"
	}
	return ext
}
