package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder/internal/config"
	"resume-builder/internal/draft"
	"resume-builder/internal/layout"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume draft to PDF",
	Long:  "Lays out a saved resume draft with one of the six templates and writes the PDF. Without --in the configured draft file is used.",
	RunE:  runExport,
}

var (
	exportInFile     string
	exportTemplate   string
	exportOutDir     string
	exportRenderer   string
	exportChromePath string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInFile, "in", "i", "", "Path to a resume JSON file (defaults to DRAFT_PATH)")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template id: modern, minimal, creative, executive, tech or classic (required)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", ".", "Directory the PDF is written to")
	exportCmd.Flags().StringVar(&exportRenderer, "renderer", config.RendererFPDF, "PDF renderer: fpdf or chromium")
	exportCmd.Flags().StringVar(&exportChromePath, "chrome-path", "", "Chrome executable for the chromium renderer")
	_ = exportCmd.MarkFlagRequired("template")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	in := exportInFile
	if in == "" {
		in = config.Defaults().DraftPath
		if v := os.Getenv("DRAFT_PATH"); v != "" {
			in = v
		}
	}
	raw, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}
	data, err := draft.Decode(raw)
	if err != nil {
		return err
	}

	var renderer usecase.Renderer
	switch exportRenderer {
	case config.RendererFPDF:
		renderer = infra.NewFPDFRenderer()
	case config.RendererChromium:
		renderer = infra.NewChromedpRenderer(exportChromePath)
	default:
		return fmt.Errorf("unknown renderer %q", exportRenderer)
	}

	exporter := usecase.NewExporter(layout.NewEngine(layout.WithTimestamp(time.Now)), renderer, infra.NewQREncoder())
	art, err := exporter.ExportPDF(context.Background(), data, exportTemplate)
	if err != nil {
		return err
	}

	out := filepath.Join(exportOutDir, art.FileName)
	if err := infra.WriteFileAtomic(out, art.Data, 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(art.Data))
	return nil
}
