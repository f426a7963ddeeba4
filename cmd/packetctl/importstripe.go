package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linesmerrill/dispute-evidence-api/models"
	"github.com/linesmerrill/dispute-evidence-api/stripeimport"
)

func newImportStripeCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "import-stripe <dispute_id> <case.yaml>",
		Short: "Prefill a case file from a Stripe dispute",
		Long: `Fetches the dispute (STRIPE_SECRET_KEY) and merges it into the case file.
Fields Stripe does not know about, such as the merchant name, are kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := stripeimport.NewClient(st.cfg.StripeSecretKey)
			if err != nil {
				return err
			}
			return importStripe(cmd, stripeimport.Importer{Fetcher: client}, args[0], args[1])
		},
	}
}

func importStripe(cmd *cobra.Command, im stripeimport.Importer, disputeID, path string) error {
	base := models.DisputeCase{}
	if _, err := os.Stat(path); err == nil {
		if base, err = loadCase(path); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	c, err := im.Import(cmd.Context(), disputeID, base)
	if err != nil {
		return err
	}
	if err := saveCase(path, c); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s into %s (order %s, %s)\n", disputeID, path, c.OrderID, c.Reason.Label())
	return nil
}
