package main

import (
	"context"
	"fmt"

	"resume-builder/internal/layout"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr <text>",
	Short: "Render a QR code PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runQR,
}

var qrOutFile string

func init() {
	qrCmd.Flags().StringVarP(&qrOutFile, "out", "o", usecase.QRFileName, "Path to output PNG file")
	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, args []string) error {
	exporter := usecase.NewExporter(layout.NewEngine(), infra.NewFPDFRenderer(), infra.NewQREncoder())
	art, err := exporter.ExportQR(context.Background(), args[0])
	if err != nil {
		return err
	}
	if err := infra.WriteFileAtomic(qrOutFile, art.Data, 0o644); err != nil {
		return fmt.Errorf("write qr: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", qrOutFile)
	return nil
}
