package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atrova/internal/extraction"
)

var scanCmd = &cobra.Command{
	Use:   "scan [completion...]",
	Short: "Parse a raw model completion the way the pipeline does",
	Long: `scan locates the JSON object in a model completion and prints it with the
exact span that was parsed. No model is called.`,
	RunE: runScan,
}

type scanResult struct {
	Span   string         `json:"span" yaml:"span"`
	Object map[string]any `json:"object" yaml:"object"`
}

func init() {
	scanCmd.Flags().String("scanner", string(extraction.ScanFirstBrace), "first_brace or balanced")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	scanner, _ := cmd.Flags().GetString("scanner")

	mode := extraction.ScanMode(scanner)
	if mode != extraction.ScanFirstBrace && mode != extraction.ScanBalanced {
		return fmt.Errorf("unknown scanner %q", scanner)
	}

	raw, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	obj, span, err := extraction.ScanJSONObject(raw, mode)
	if err != nil {
		if werr := write(cmd.OutOrStdout(), format, failure{Error: err.Error(), Kind: extraction.KindName(err)}); werr != nil {
			return werr
		}
		return err
	}
	return write(cmd.OutOrStdout(), format, scanResult{Span: span, Object: obj})
}
