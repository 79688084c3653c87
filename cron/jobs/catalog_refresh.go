package jobs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/cron"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
)

func init() {
	cron.Register("catalogrefresh", "@every 10m", CatalogRefreshJob)
}

// CatalogRefreshJob re-fetches the configured product aggregate so the shared
// Redis copy stays warm. Product id comes from args or REFRESH_PRODUCT_ID.
func CatalogRefreshJob(args ...string) {
	productID := os.Getenv("REFRESH_PRODUCT_ID")
	if len(args) > 0 && args[0] != "" {
		productID = args[0]
	}
	shopID := config.CurrentShopID()
	if productID == "" || shopID == "" {
		log.Println("catalogrefresh: REFRESH_PRODUCT_ID and SHOP_ID must be set, skipping")
		return
	}

	c := client.NewClient(config.LoadCommerceAPIConfig(), nil)
	loader := catalog.NewLoader(c, catalog.WithRedis(config.RedisClient, 10*time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	loader.Load(ctx, productID, shopID)
	if p := loader.Refetch(ctx); p == nil {
		log.Printf("catalogrefresh: product %s not available", productID)
		return
	}
	log.Printf("catalogrefresh: product %s refreshed", productID)
}
