package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hateftavakkoli/MongooseIM/internal/core/config"
	"github.com/hateftavakkoli/MongooseIM/internal/core/state"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Compile a configuration document and print the assembled tables",
	RunE:  runDump,
}

var dumpTenant string

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVar(&dumpTenant, "tenant", "", "print one tenant's effective options instead of the global table")
}

func runDump(cmd *cobra.Command, args []string) error {
	res, err := config.Load(configFile)
	if err != nil {
		return err
	}
	st := state.Assemble(res)

	if dumpTenant != "" {
		found := false
		for _, t := range st.Tenants {
			if t == dumpTenant {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown tenant %q", dumpTenant)
		}
		for _, k := range st.TenantKeys(dumpTenant) {
			v, _ := st.TenantOption(dumpTenant, k)
			fmt.Printf("%s = %v\n", k, v)
		}
		return nil
	}

	for _, k := range st.Keys() {
		fmt.Printf("%s = %v\n", k, st.Global[k])
	}
	for _, o := range st.Overrides {
		fmt.Printf("override %s\n", o.Scope)
	}
	return nil
}
