package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	archiveRedirect string
	removeTagID     string
)

var productShowCmd = &cobra.Command{
	Use:   "product:show",
	Short: "Fetch and print the product aggregate",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		product := scope.loader.Load(ctx, scope.sel.ProductID, scope.sel.ShopID)
		if product == nil {
			fmt.Printf("Product %s not found\n", scope.sel.ProductID)
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(product, "", "  ")
		fmt.Println(string(out))
	},
}

var productArchiveCmd = &cobra.Command{
	Use:   "product:archive",
	Short: "Archive a product",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		product := scope.loader.Load(ctx, scope.sel.ProductID, scope.sel.ShopID)
		if err := scope.orch.ArchiveProduct(ctx, product, archiveRedirect); err != nil {
			os.Exit(1)
		}
	},
}

var productCloneCmd = &cobra.Command{
	Use:   "product:clone",
	Short: "Duplicate a product",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		if err := scope.orch.CloneProduct(ctx, scope.sel.ProductID); err != nil {
			os.Exit(1)
		}
	},
}

var productVisibilityCmd = &cobra.Command{
	Use:   "product:visibility",
	Short: "Toggle product visibility",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		// The toggle submits the negation of the loaded value, so load first.
		scope.loader.Load(ctx, scope.sel.ProductID, scope.sel.ShopID)
		if err := scope.orch.ToggleProductVisibility(ctx); err != nil {
			os.Exit(1)
		}
	},
}

var productTagRemoveCmd = &cobra.Command{
	Use:   "product:tag-remove",
	Short: "Remove one tag from a product",
	Run: func(cmd *cobra.Command, args []string) {
		scope := newCLIScope()
		ctx, cancel := cliContext()
		defer cancel()

		scope.loader.Load(ctx, scope.sel.ProductID, scope.sel.ShopID)
		if err := scope.orch.RemoveTag(ctx, removeTagID); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	addSelectionFlags(productShowCmd, false)
	addSelectionFlags(productArchiveCmd, false)
	productArchiveCmd.Flags().StringVar(&archiveRedirect, "redirect", "", "Path to navigate to after a successful archive")
	addSelectionFlags(productCloneCmd, false)
	addSelectionFlags(productVisibilityCmd, false)
	addSelectionFlags(productTagRemoveCmd, false)
	productTagRemoveCmd.Flags().StringVarP(&removeTagID, "tag", "t", "", "Tag ID to remove (required)")
	productTagRemoveCmd.MarkFlagRequired("tag")

	rootCmd.AddCommand(productShowCmd, productArchiveCmd, productCloneCmd, productVisibilityCmd, productTagRemoveCmd)
}
