// Command imagebatch renders a file of prompts, one per line, and writes the
// successful images to a zip archive.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"promptstudio/internal/batch"
	"promptstudio/internal/imaging"
	"promptstudio/internal/imaging/transcode"
	"promptstudio/internal/infra"
	"promptstudio/internal/providers/imagen"
	"promptstudio/internal/studio"
	"promptstudio/pkg/zip"
)

type options struct {
	promptsPath string
	outPath     string
	token       string
	format      string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "imagebatch",
		Short:        "Render one image per prompt line and archive the results",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.promptsPath, "prompts", "p", "-", "file with one prompt per line, - for stdin")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "images.zip", "archive to write")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "bearer token for the image API (defaults to IMAGEN_TOKEN)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "png or webp (defaults to IMAGE_OUTPUT_FORMAT)")
	return cmd
}

func run(ctx context.Context, opts options) error {
	format, err := outputFormat(opts.format)
	if err != nil {
		return err
	}
	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	text, err := readPrompts(opts.promptsPath)
	if err != nil {
		return fmt.Errorf("read prompts: %w", err)
	}
	token := opts.token
	if token == "" {
		token = cfg.ImagenToken
	}
	if format == "" {
		format = cfg.ImageOutputFormat
	}

	svc := studio.NewService(studio.Options{
		Images: imagen.NewClient(imagen.Options{
			BaseURL:        cfg.ImagenBaseURL,
			Model:          cfg.ImagenModel,
			Logger:         &logger,
			RequestTimeout: cfg.ImagenTimeout,
		}),
		ImageInterval: cfg.ImageBatchInterval,
		ImageBurst:    cfg.ImageBatchBurst,
		Output:        transcode.ForFormat(format, cfg.WebPQuality),
		Logger:        &logger,
	})

	results, err := svc.GenerateImages(ctx, token, text, func(completed, total int) {
		logger.Info().Int("completed", completed).Int("total", total).Msg("imagebatch: progress")
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Failed() {
			logger.Warn().Str("prompt", res.Label).Str("error", res.Error).Msg("imagebatch: prompt failed")
		}
	}

	images := studio.Successful(results)
	if len(images) == 0 {
		return errors.New("no images were generated")
	}
	if err := writeArchive(opts.outPath, images); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	logger.Info().
		Str("out", opts.outPath).
		Int("images", len(images)).
		Int("failed", len(results)-len(images)).
		Msg("imagebatch: done")
	return nil
}

// outputFormat validates the --format flag. Empty defers to the config.
func outputFormat(v string) (string, error) {
	switch v = strings.ToLower(strings.TrimSpace(v)); v {
	case "", "png", "webp":
		return v, nil
	}
	return "", fmt.Errorf("--format must be png or webp, got %q", v)
}

func readPrompts(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	if len(batch.Lines(string(data))) == 0 {
		return "", errors.New("no prompts found")
	}
	return string(data), nil
}

func writeArchive(path string, images []imaging.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	assets := make([]zip.Asset, len(images))
	for i, img := range images {
		assets[i] = zip.Asset{Filename: img.Name, MIME: img.MIME, Data: img.Data}
	}
	return zip.Archive(f, assets)
}
