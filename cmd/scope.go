package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/config"
	auditRepo "github.com/Draketheb4dass/reaction-admin/model/repository/audit"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
	"github.com/Draketheb4dass/reaction-admin/service/mutation"
)

// Selection flags shared by the catalog commands. Shop falls back to SHOP_ID.
var (
	flagProduct string
	flagVariant string
	flagShop    string
)

func addSelectionFlags(c *cobra.Command, withVariant bool) {
	c.Flags().StringVarP(&flagProduct, "product", "p", "", "Product ID (required)")
	c.MarkFlagRequired("product")
	if withVariant {
		c.Flags().StringVarP(&flagVariant, "variant", "v", "", "Variant ID")
	}
	c.Flags().StringVarP(&flagShop, "shop", "s", "", "Shop ID (defaults to SHOP_ID)")
}

// printNavigator renders navigation targets to stdout; the CLI has no router
// to hand them to.
type printNavigator struct{}

func (printNavigator) NavigateTo(path string) {
	fmt.Printf("Next: %s\n", path)
}

// cliScope is one command invocation's wiring: resolved selection, remote
// client, aggregate loader and orchestrator with the logrus notifier.
type cliScope struct {
	sel    catalog.Selection
	client *client.Client
	loader *catalog.Loader
	orch   *mutation.Orchestrator
}

func newCLIScope() *cliScope {
	config.LoadAppConfig()
	sel := catalog.Resolve(catalog.RouteParams{
		ProductID: flagProduct,
		VariantID: flagVariant,
		ShopID:    flagShop,
	}, catalog.Args{}, config.CurrentShopID())

	c := client.NewClient(config.LoadCommerceAPIConfig(), nil)
	loader := catalog.NewLoader(c)

	opts := []mutation.Option{mutation.WithNavigator(printNavigator{})}
	if db, err := config.NewDB(); err == nil {
		if repo, err := auditRepo.NewAuditRepository(db); err == nil {
			opts = append(opts, mutation.WithAudit(repo))
		} else {
			fmt.Printf("audit trail disabled: %v\n", err)
		}
	} else {
		fmt.Printf("audit trail disabled: %v\n", err)
	}

	return &cliScope{
		sel:    sel,
		client: c,
		loader: loader,
		orch:   mutation.New(c, loader, notify.NewLogNotifier(nil), sel, opts...),
	}
}

func cliContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
