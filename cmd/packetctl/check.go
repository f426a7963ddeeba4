package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/linesmerrill/dispute-evidence-api/document"
	"github.com/linesmerrill/dispute-evidence-api/evidence"
	"github.com/linesmerrill/dispute-evidence-api/export"
	"github.com/linesmerrill/dispute-evidence-api/models"
)

func newCheckCmd(st *cliState) *cobra.Command {
	var attach []string
	cmd := &cobra.Command{
		Use:   "check <case.yaml>",
		Short: "Show the evidence checklist and export warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(args[0], attach)
			if err != nil {
				return err
			}
			c, items := export.Checklist(sess)
			_, attachments := sess.Snapshot()

			pages := 0
			doc, err := document.Compose(c, attachments, items, document.Options{Branding: st.cfg.Branding})
			if err == nil {
				pages = doc.PageCount
			}
			printChecklist(cmd.OutOrStdout(), c, items, evidence.Guardrails(c, items, pages))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&attach, "attach", nil, "attachment file, optionally path=note (repeatable)")
	return cmd
}

func printChecklist(w io.Writer, c models.DisputeCase, items []models.EvidenceItem, warnings []string) {
	fmt.Fprintf(w, "Dispute reason: %s\n\n", c.Reason.Resolve().Label())

	fmt.Fprintln(w, "Checklist:")
	for _, it := range evidence.ByPriority(items) {
		fmt.Fprintf(w, "  [%-11s] %-26s %s\n", it.Priority, it.Label, it.Status())
	}

	fmt.Fprintln(w, "\nStrongest first:")
	for _, it := range evidence.ByStrength(items) {
		fmt.Fprintf(w, "  %-7s %s: %s\n", it.Status(), it.Label, it.Rationale)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, msg := range warnings {
			fmt.Fprintf(w, "  - %s\n", msg)
		}
	}
}
