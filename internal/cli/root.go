// Package cli implements the imgconv command using Cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cumulus13/imgconv/internal/codec"
	"github.com/cumulus13/imgconv/internal/config"
	"github.com/cumulus13/imgconv/internal/convert"
	"github.com/cumulus13/imgconv/internal/format"
	"github.com/cumulus13/imgconv/internal/ui"
)

// Version is stamped at build time via
// -ldflags "-X github.com/cumulus13/imgconv/internal/cli.Version=...".
var Version = "dev"

const longHelp = `imgconv converts images between raster formats.
Supports PNG, JPEG, GIF, BMP, ICO, TIFF, WebP, AVIF, and more.

Examples:
  # Simple conversion (format auto-detected from extension)
  imgconv input.webp output.png

  # With explicit input/output flags
  imgconv -i image.jpg -o image.webp

  # Specify quality for lossy formats
  imgconv input.png output.jpg -q 85

  # Force output format
  imgconv input.jpg output -f png

  # Paste from clipboard
  imgconv -c output_image

  # Paste and convert to specific format
  imgconv -c output_image -e jpg`

type options struct {
	input     string
	output    string
	clipboard bool
	format    string
	extension string
	quality   int
	version   bool
}

func NewRootCommand() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "imgconv [input] [output]",
		Short:         "convert images between raster formats",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintf(cmd.OutOrStdout(), "imgconv %s\n", Version)
				return nil
			}
			return run(cmd.Context(), cfg, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "input image file")
	flags.StringVarP(&opts.output, "output", "o", "", "output image file")
	flags.BoolVarP(&opts.clipboard, "clipboard", "c", false, "paste image from clipboard")
	flags.StringVarP(&opts.format, "format", "f", "", "output format (auto-detected from extension if not specified)")
	flags.StringVarP(&opts.extension, "extension", "e", "", "extension for the output file (clipboard mode)")
	flags.IntVarP(&opts.quality, "quality", "q", cfg.Quality, "quality for lossy formats like JPEG (1-100)")
	flags.BoolVarP(&opts.version, "version", "V", false, "print version and exit")
	cmd.MarkFlagsMutuallyExclusive("input", "clipboard")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts *options, args []string) error {
	if opts.extension != "" && !opts.clipboard {
		return errors.New("--extension only applies to clipboard mode (-c)")
	}

	input, output, err := resolveArgs(opts, args)
	if err != nil {
		return err
	}

	var explicit format.Format
	if opts.format != "" {
		explicit, err = format.Parse(opts.format)
		if err != nil {
			return err
		}
	}

	printer := ui.NewPrinter(cfg.Color)

	var source convert.Source
	if opts.clipboard {
		printer.Infof("reading image from clipboard...")
		source = convert.ClipboardSource{}
	} else {
		printer.Infof("reading image from: %s", input)
		source = convert.FileSource{Path: input}
	}

	if err := codec.Startup(); err != nil {
		return fmt.Errorf("start codec runtime: %w", err)
	}
	defer codec.Shutdown()

	converter, err := convert.New(source, printer)
	if err != nil {
		return err
	}

	result, err := converter.Run(ctx, convert.Request{
		OutputPath:    output,
		FromClipboard: opts.clipboard,
		Format:        explicit,
		Extension:     opts.extension,
		Quality:       opts.quality,
	})
	if err != nil {
		return err
	}

	printer.Successf("output size: %d KB", result.Bytes/1024)
	printer.Successf("successfully converted to: %s", result.Path)
	return nil
}

// resolveArgs merges positional arguments with the -i/-o flags. File mode
// takes input then output positionals; clipboard mode takes a single
// output positional.
func resolveArgs(opts *options, args []string) (input, output string, err error) {
	pos := args

	if !opts.clipboard {
		input = opts.input
		if input == "" && len(pos) > 0 {
			input, pos = pos[0], pos[1:]
		}
		if input == "" {
			return "", "", errors.New("input file is required: imgconv <input> <output> or imgconv -c <output>")
		}
	}

	output = opts.output
	if output == "" && len(pos) > 0 {
		output, pos = pos[0], pos[1:]
	}
	if output == "" {
		return "", "", errors.New("output file is required: imgconv <input> <output> or imgconv -c <output>")
	}

	if len(pos) > 0 {
		return "", "", fmt.Errorf("unexpected argument: %s", pos[0])
	}
	return input, output, nil
}
