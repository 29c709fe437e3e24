package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"github.com/BerylCAtieno/careerpath-agent/internal/render"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a career report from a profile JSON file",
	Long:  "Generate one career report for the profile in --profile and write it as JSON, Markdown, HTML or PDF.",
	RunE:  runGenerate,
}

var (
	generateProfile string
	generateFormat  string
	generateOut     string
)

func init() {
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "i", "", "Path to the student profile JSON")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "json", "Output format: json, markdown, html or pdf")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file (default stdout; required for pdf)")
	_ = generateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	switch generateFormat {
	case "json", "markdown", "html":
	case "pdf":
		if generateOut == "" {
			return fmt.Errorf("--out is required for pdf output")
		}
	default:
		return fmt.Errorf("unknown format %q", generateFormat)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	profile, err := readProfile(generateProfile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	gen, client, err := newGenerator(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	report, err := gen.GenerateCareerReport(ctx, profile)
	if err != nil {
		log.Error("report generation failed", "error", err)
		return errors.New(models.GenerationFailedMessage)
	}

	data, err := encodeReport(ctx, report, generateFormat, render.PDFOptions{
		Timeout:  cfg.PDF.Timeout,
		ExecPath: cfg.PDF.ChromePath,
	})
	if err != nil {
		return err
	}

	if generateOut == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(generateOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", generateOut)
	return nil
}

func encodeReport(ctx context.Context, report *models.CareerReport, format string, pdfOpts render.PDFOptions) ([]byte, error) {
	switch format {
	case "markdown":
		return []byte(render.Markdown(report)), nil
	case "html":
		var buf bytes.Buffer
		err := render.Report(&buf, report)
		return buf.Bytes(), err
	case "pdf":
		var buf bytes.Buffer
		if err := render.Report(&buf, report); err != nil {
			return nil, err
		}
		return render.PDF(ctx, buf.String(), pdfOpts)
	default:
		var buf bytes.Buffer
		if err := writeJSON(&buf, report); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
