package main

import (
	"github.com/spf13/cobra"

	"github.com/linesmerrill/dispute-evidence-api/config"
)

type cliState struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	rootCmd := &cobra.Command{
		Use:   "packetctl",
		Short: "Chargeback evidence packet builder",
		Long: `packetctl turns a dispute case file and your proof files into a
submission-ready evidence PDF or ZIP packet.

Attachments are read from disk and bundled locally; they are never uploaded.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(st.cfgFile)
			if err != nil {
				return err
			}
			st.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&st.cfgFile, "config", "", "config file (default: $CONFIG_FILE)")

	rootCmd.AddCommand(
		newInitCmd(),
		newCheckCmd(st),
		newExportCmd(st),
		newImportStripeCmd(st),
	)
	return rootCmd
}
