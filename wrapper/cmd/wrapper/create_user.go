package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/VaultaFoundation/vaulta-system-contract/lib/chain"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/db"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/errors"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/logging"
	"github.com/VaultaFoundation/vaulta-system-contract/lib/out"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/app"
	"github.com/VaultaFoundation/vaulta-system-contract/wrapper/model"
)

var (
	usrFlag  string
	pasFlag  string
	fundFlag string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Creates or updates an API user.",
	Long: `Upserts the API user authenticating as the account of the same name.
In QA, --fund transfers native currency to the account from the market.`,
	RunE: runCreateUser,
}

func init() {
	createUserCmd.Flags().StringVar(&usrFlag, "username", "", "account name of the user to upsert")
	createUserCmd.Flags().StringVar(&pasFlag, "password", "", "password of the user to upsert")
	createUserCmd.Flags().StringVar(&fundFlag, "fund", "", "native quantity to fund the account with (qa only), e.g. `100.0000 EOS`")

	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	ctx, err := setup(cmd)
	if err != nil {
		return err
	}

	username, err := chain.NewName(usrFlag)
	if err != nil {
		return errors.Newf("Invalid username: %s", usrFlag)
	}
	if pasFlag == "" {
		return errors.Newf("A password is required")
	}

	err = db.Transact(ctx, func(ctx context.Context) error {
		if err := upsertUser(ctx, username, pasFlag); err != nil {
			return errors.Trace(err)
		}
		if fundFlag == "" {
			return nil
		}
		quantity, err := chain.ParseAsset(fundFlag)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(app.Fund(ctx, username, quantity))
	})
	if err != nil {
		out.Errof("[Error] %s\n", errors.Message(err))
		return errors.Newf("%s", errors.Details(err))
	}

	out.Boldf("User ready: ")
	out.Normf("%s\n", username)
	return nil
}

func upsertUser(
	ctx context.Context,
	username chain.Name,
	password string,
) error {
	user, err := model.LoadUserByUsername(ctx, string(username))
	if err != nil {
		return errors.Trace(err)
	}

	if user != nil {
		logging.Logf(ctx, "Updating user: %s", username)
		if err := user.UpdatePassword(ctx, password); err != nil {
			return errors.Trace(err)
		}
		return errors.Trace(user.Save(ctx))
	}

	logging.Logf(ctx, "Creating user: %s", username)
	_, err = model.CreateUser(ctx, string(username), password)
	return errors.Trace(err)
}
