package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"image-converter/internal/app"
	"image-converter/internal/converter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert image files without opening the window",
	Long: `Convert writes every FILE to <saveLocation>/<name>.<saveFormat> using the
stored settings. --output-dir and --format override them for this run only.
Files are converted concurrently; the command fails if any file fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		outputDir, _ := cmd.Flags().GetString("output-dir")
		format, _ := cmd.Flags().GetString("format")

		svc := converter.NewService(store, app.NewRegistry(), log)
		overrides := converter.Overrides{SaveLocation: outputDir, SaveFormat: format}

		return convertFiles(cmd.Context(), svc, args, overrides, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	convertCmd.Flags().String("output-dir", "", "write into this folder instead of the saved location")
	convertCmd.Flags().String("format", "", "output format instead of the saved one (jpeg, png, gif, bmp, tiff)")

	rootCmd.AddCommand(convertCmd)
}

// convertFiles converts every file, printing one line per result. Failures
// do not stop the remaining files.
func convertFiles(ctx context.Context, svc *converter.Service, files []string, o converter.Overrides, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		mu     sync.Mutex
		failed int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, file := range files {
		g.Go(func() error {
			dst, err := svc.ConvertWith(ctx, file, o)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				format := o.SaveFormat
				if format == "" {
					format = svc.Format()
				}
				fmt.Fprintf(stderr, "%s: %s\n", file, converter.FailureMessage(format))
				return nil
			}
			fmt.Fprintf(stdout, "%s -> %s\n", file, dst)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be converted", failed, len(files))
	}
	return nil
}
