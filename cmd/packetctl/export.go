package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/dispute-evidence-api/config"
	"github.com/linesmerrill/dispute-evidence-api/export"
	"github.com/linesmerrill/dispute-evidence-api/verification"
)

// gateFor picks the verification strategy for the configuration
func gateFor(cfg *config.Config) verification.Strategy {
	if cfg.LocalDev {
		zap.S().Warnw("LOCAL_DEV is set, human verification is bypassed")
		return verification.AlwaysAllow{}
	}
	return verification.NewRemoteCheck(cfg.RelayBaseURL, cfg.VerifyTimeout)
}

func newExportCmd(st *cliState) *cobra.Command {
	var (
		attach []string
		token  string
		outDir string
	)
	cmd := &cobra.Command{
		Use:       "export <pdf|zip> <case.yaml>",
		Short:     "Export the evidence PDF or the full ZIP packet",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(export.FormatPDF), string(export.FormatZIP)},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := export.Format(args[0])
			if format != export.FormatPDF && format != export.FormatZIP {
				return fmt.Errorf("unknown export format %q (want pdf or zip)", args[0])
			}
			sess, err := openSession(args[1], attach)
			if err != nil {
				return err
			}

			exp := export.New(gateFor(st.cfg), st.cfg.Branding)
			run := exp.PDF
			if format == export.FormatZIP {
				run = exp.ZIP
			}
			art, err := run(context.Background(), sess, token)
			if err != nil {
				return err
			}

			dest := filepath.Join(outDir, art.Filename)
			if err := os.WriteFile(dest, art.Bytes, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %s (%d bytes, %d pages)\n", dest, len(art.Bytes), art.PageCount)
			for _, msg := range art.Warnings {
				fmt.Fprintf(out, "Warning: %s\n", msg)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "attachment file, optionally path=note (repeatable)")
	cmd.Flags().StringVar(&token, "token", "", "human verification token")
	cmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	return cmd
}
