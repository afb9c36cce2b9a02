package main

import (
	"github.com/spf13/cobra"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/format"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/out"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper"
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Prints the backing report of the wrapped token.",
	RunE:  runReserve,
}

var jsonFlag bool

func init() {
	reserveCmd.Flags().BoolVar(&jsonFlag, "json", false, "print the report as JSON")
	rootCmd.AddCommand(reserveCmd)
}

func runReserve(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}
	c := wrapper.Get(ctx)

	r, err := c.Reserve(ctx)
	if err != nil {
		out.Errof("[Error] %s\n", errors.Message(err))
		return errors.Newf("%s", errors.Details(err))
	}

	if jsonFlag {
		out.Normf("%s\n", format.JSONIndentedString(r))
	} else {
		out.Fieldf(12, "Contract", "%s", c.Self)
		out.Fieldf(12, "Reserve", "%s", r.Native)
		out.Fieldf(12, "Supply", "%s", r.Supply)
		out.Fieldf(12, "Float", "%s", r.Float)
		out.Fieldf(12, "Circulating", "%s", r.Circulating)
	}

	if err := c.CheckBacking(ctx); err != nil {
		out.Errof("[Error] %s\n", errors.Message(err))
		return errors.Newf("%s", errors.Details(err))
	}
	if r.Native.Amount > r.Circulating.Amount {
		out.Warnf("[Warning] Reserve exceeds circulating supply by %d units\n",
			r.Native.Amount-r.Circulating.Amount)
	} else {
		out.Examf("Fully backed.\n")
	}
	return nil
}
