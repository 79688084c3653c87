package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Draketheb4dass/reaction-admin/service/catalog"
)

var variantCreateCmd = &cobra.Command{
	Use:   "variant:create",
	Short: "Create a new variant under a product",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		if err := scope.orch.CreateVariant(ctx, scope.sel.ProductID, scope.sel.ShopID); err != nil {
			os.Exit(1)
		}
	},
}

var variantVisibilityCmd = &cobra.Command{
	Use:   "variant:visibility",
	Short: "Toggle variant visibility",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		product := scope.loader.Load(ctx, scope.sel.ProductID, scope.sel.ShopID)
		variant := catalog.FindVariant(product, scope.sel.VariantID)
		if err := scope.orch.ToggleVariantVisibility(ctx, variant, scope.sel.ShopID); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	addSelectionFlags(variantCreateCmd, false)
	addSelectionFlags(variantVisibilityCmd, true)
	variantVisibilityCmd.MarkFlagRequired("variant")

	rootCmd.AddCommand(variantCreateCmd, variantVisibilityCmd)
}
