package main

import (
	"fmt"

	"resume-builder/internal/archive"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [paths...]",
	Short: "Package the project into a zip file",
	Long:  "Zips the listed project files and directories at best compression. Missing paths are skipped. Without arguments the default project layout is packed.",
	RunE:  runArchive,
}

var (
	archiveRoot    string
	archiveOutFile string
)

func init() {
	archiveCmd.Flags().StringVar(&archiveRoot, "root", ".", "Project root the paths are relative to")
	archiveCmd.Flags().StringVarP(&archiveOutFile, "out", "o", archive.DefaultName, "Path to output zip file")
	rootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	entries := args
	if len(entries) == 0 {
		entries = archive.DefaultEntries
	}
	res, err := archive.Create(cmd.Context(), archiveRoot, archiveOutFile, entries)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, s := range res.Skipped {
		fmt.Fprintf(w, "skipped missing %s\n", s)
	}
	fmt.Fprintln(w, "Project packaged successfully!")
	fmt.Fprintf(w, "File size: %d bytes\n", res.Size)
	fmt.Fprintf(w, "Download: %s\n", res.Path)
	return nil
}
