package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compile a configuration document and report every error",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	res, err := config.Load(configFile)
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d tenants, %d options, %d overrides)\n",
		configFile, len(res.Tenants), len(res.Options), len(res.Overrides))
	return nil
}
