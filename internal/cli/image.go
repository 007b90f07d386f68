package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"lsbsteg/pkg/codec"
	"lsbsteg/pkg/quality"
	"lsbsteg/pkg/steg"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type embedOpts struct {
	sourceImage    string
	outputImage    string
	message        string
	messageFile    string
	pngCompression string
	format         string
}

func (o embedOpts) secretText(stdin io.Reader) (string, error) {
	switch o.messageFile {
	case "":
		return o.message, nil
	case "-":
		raw, err := io.ReadAll(stdin)
		return string(raw), err
	default:
		raw, err := os.ReadFile(o.messageFile)
		return string(raw), err
	}
}

func (a *app) embedCommand() *cobra.Command {
	opts := embedOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Example: "lsbsteg embed --image source.png --output stego.png --message \"meet at dawn\"",
		Short:   "Hide a text message in an image",
		Long: "Hide a text message in the least significant bit of every red, green and blue channel of an image. " +
			"The result is always written in a lossless format; when the output has no lossless extension one is appended",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.embed(cmd, opts)
		},
	}

	embedCmd.Flags().StringVar(&opts.sourceImage, "image", "", "Image to hide the message in, it is never modified")
	embedCmd.Flags().StringVar(&opts.outputImage, "output", "", "Path for the generated stego image")
	embedCmd.Flags().StringVar(&opts.message, "message", "", "Message to hide")
	embedCmd.Flags().StringVar(&opts.messageFile, "message-file", "", "File holding the message to hide, - reads from stdin")
	embedCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "", "Compression for output png. Options are default, none, fast, best")
	embedCmd.Flags().StringVar(&opts.format, "format", "", "Format used when the output has no lossless extension. Options are png, bmp, tiff")

	MarkFlagsRequired(embedCmd, "image", "output")
	embedCmd.MarkFlagsOneRequired("message", "message-file")
	embedCmd.MarkFlagsMutuallyExclusive("message", "message-file")

	return embedCmd
}

func (a *app) embed(cmd *cobra.Command, opts embedOpts) error {
	secretText, err := opts.secretText(cmd.InOrStdin())
	if err != nil {
		return err
	}

	imageConfig := a.config.Image
	if opts.pngCompression != "" {
		imageConfig.PngCompression = opts.pngCompression
	}
	if opts.format != "" {
		imageConfig.OutputFormat = opts.format
	}
	encodeOpts, err := imageConfig.EncodeOptions()
	if err != nil {
		return err
	}

	s := NewSpinner(cmd.ErrOrStderr())
	s.Prefix = "Embedding message "
	s.Start()
	embedder := steg.NewEmbedder(encodeOpts)
	outputPath, err := embedder.EmbedFile(opts.sourceImage, secretText, opts.outputImage)
	s.Stop()
	if err != nil {
		return err
	}

	stats := embedder.Stats()
	a.logger.Debug("Embedded message",
		"image_decoding", stats.ImageDecoding.String(),
		"data_encoding", stats.DataEncoding.String(),
		"output_image_encoding", stats.OutputImageEncoding.String(),
	)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with a %s message embedded\n", outputPath, humanize.Bytes(uint64(len(secretText))))
	return err
}

func (a *app) extractCommand() *cobra.Command {
	var stegoImage, outputFile string

	extractCmd := &cobra.Command{
		Use:     "extract",
		Example: "lsbsteg extract --image stego.png",
		Short:   "Extract a message hidden by lsbsteg",
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor := steg.NewExtractor()
			message, err := extractor.ExtractFile(stegoImage)
			if err != nil {
				return err
			}
			stats := extractor.Stats()
			a.logger.Debug("Extracted message", "image_decoding", stats.ImageDecoding.String(), "data_decoding", stats.DataDecoding.String())
			if codec.IsLossy(message) {
				a.logger.Warn("Message contained invalid UTF-8, affected bytes were replaced", "marker", codec.SubstitutionMarker)
			}

			if outputFile != "" {
				return os.WriteFile(outputFile, []byte(message), 0o644)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), message)
			return err
		},
	}

	extractCmd.Flags().StringVar(&stegoImage, "image", "", "Image generated by lsbsteg")
	extractCmd.Flags().StringVar(&outputFile, "output", "", "Write the message to this file instead of stdout")
	MarkFlagsRequired(extractCmd, "image")

	return extractCmd
}

func (a *app) psnrCommand() *cobra.Command {
	var original, modified string
	var asJSON bool

	psnrCmd := &cobra.Command{
		Use:     "psnr",
		Aliases: []string{"quality"},
		Example: "lsbsteg psnr --original source.png --modified stego.png",
		Short:   "Measure the quality loss between two images of the same size",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := steg.AnalyzeFiles(original, modified)
			if err != nil {
				return err
			}
			if asJSON {
				return writeReportJSON(cmd.OutOrStdout(), report)
			}
			return writeReport(cmd.OutOrStdout(), report)
		},
	}

	psnrCmd.Flags().StringVar(&original, "original", "", "Original image")
	psnrCmd.Flags().StringVar(&modified, "modified", "", "Modified image, usually the output of embed")
	psnrCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	MarkFlagsRequired(psnrCmd, "original", "modified")

	return psnrCmd
}

func formatPSNR(psnr float64) string {
	if math.IsInf(psnr, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.4f dB", psnr)
}

func writeReport(w io.Writer, report quality.Report) error {
	_, err := fmt.Fprintf(w, "PSNR: %s\nMSE: %.6f\nSSIM: %.6f\nChanged samples: %s of %s\n",
		formatPSNR(report.PSNR),
		report.MSE,
		report.SSIM,
		humanize.Comma(int64(report.ChangedSamples)),
		humanize.Comma(int64(report.Shape.Width*report.Shape.Height*report.Shape.Channels)),
	)
	if err != nil {
		return err
	}
	for _, channel := range report.Channels {
		if _, err = fmt.Fprintf(w, "  %-5s PSNR: %s MSE: %.6f\n", channel.Channel, formatPSNR(channel.PSNR), channel.MSE); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Verdict: %s\n", report.Verdict())
	return err
}

type reportJSON struct {
	quality.Report
	PSNR    string `json:"psnr"`
	Verdict string `json:"verdict"`
}

func writeReportJSON(w io.Writer, report quality.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{Report: report, PSNR: formatPSNR(report.PSNR), Verdict: report.Verdict()})
}

func (a *app) capacityCommand() *cobra.Command {
	var sourceImage string

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Example: "lsbsteg capacity --image source.png",
		Short:   "Report how much text an image can carry",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := steg.Capacity(sourceImage)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s bits, of which %d are the length header. Up to %s (%s bytes) of text\n",
				info.Shape,
				humanize.Comma(int64(info.CapacityBits)),
				info.HeaderBits,
				humanize.Bytes(uint64(info.MaxMessageBytes)),
				humanize.Comma(int64(info.MaxMessageBytes)),
			)
			return err
		},
	}

	capacityCmd.Flags().StringVar(&sourceImage, "image", "", "Image to inspect")
	MarkFlagsRequired(capacityCmd, "image")

	return capacityCmd
}
