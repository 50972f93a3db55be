package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"atrova/config"
	"atrova/internal/extraction"
	extractionUC "atrova/internal/extraction/usecase"
	"atrova/pkg/datemath"
	"atrova/pkg/llmprovider"
	"atrova/pkg/log"
)

var runCmd = &cobra.Command{
	Use:   "run [message...]",
	Short: "Extract a task from a message using the configured LLM providers",
	Long: `run joins its arguments into one message (or reads stdin when none are given)
and prints the extracted task. --now pins the "current time" used for relative
phrases like "tomorrow at 5pm"; without it the wall clock is used.`,
	RunE: runExtract,
}

func init() {
	runCmd.Flags().String("now", "", `anchor time as "YYYY-MM-DD HH:MM:SS" in extraction.timezone`)
	runCmd.Flags().BoolP("verbose", "v", false, "log provider calls to stderr")

	rootCmd.AddCommand(runCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	format, _ := cmd.Flags().GetString("format")
	cfgPath, _ := cmd.Flags().GetString("config")
	nowFlag, _ := cmd.Flags().GetString("now")
	verbose, _ := cmd.Flags().GetBool("verbose")

	text, err := readMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	var cfg *config.Config
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true})
	}

	parser, err := datemath.NewParser(cfg.Extraction.Timezone)
	if err != nil {
		return err
	}
	manager, err := llmprovider.NewManagerFromConfig(&cfg.LLM, logger)
	if err != nil {
		return err
	}
	uc := extractionUC.New(logger, manager, extraction.Options{
		Timeout:    cfg.Extraction.Timeout,
		Concurrent: cfg.Extraction.Concurrent,
		Scanner:    extraction.ScanMode(cfg.Extraction.Scanner),
		Location:   parser.Location(),
	})

	var result extraction.ExtractedTask
	if nowFlag != "" {
		now, perr := parser.ParseTimestamp(nowFlag)
		if perr != nil {
			return fmt.Errorf("--now: %w", perr)
		}
		result, err = uc.Extract(ctx, extraction.TaskRequest{Text: text, ReceivedAt: now})
	} else {
		result, err = uc.GetTaskDetails(ctx, text)
	}
	if err != nil {
		if werr := write(cmd.OutOrStdout(), format, newFailure(err)); werr != nil {
			return werr
		}
		return err
	}
	return write(cmd.OutOrStdout(), format, result)
}

func readMessage(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no message given: pass it as arguments or on stdin")
		}
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
