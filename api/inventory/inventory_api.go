package inventory

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/api"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/model"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
	"github.com/Draketheb4dass/reaction-admin/service/mutation"
)

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

func selection(c echo.Context) catalog.Selection {
	return catalog.Resolve(catalog.RouteParams{
		ProductID: c.Param("productId"),
		VariantID: c.Param("variantId"),
		ShopID:    c.QueryParam("shopId"),
	}, catalog.Args{}, config.CurrentShopID())
}

func RegisterInventoryRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/products/:productId/variants/:variantId/inventory")

	// GET — inventory record for the (product, variant) pair
	g.GET("", func(c echo.Context) error {
		sel := selection(c)
		info, err := catalog.LoadInventory(c.Request().Context(), deps.Client, sel.ProductID, sel.VariantID, sel.ShopID)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error()})
		}
		if info == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no inventory record"})
		}
		return c.JSON(http.StatusOK, info)
	})

	// PUT — replace the inventory record (validated client-side)
	g.PUT("", func(c echo.Context) error {
		var input model.InventoryInput
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := mutation.ValidateInventoryInput(input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		sel := selection(c)
		rec := notify.NewRecorder()
		loader := catalog.NewLoader(deps.Client, catalog.WithRedis(config.RedisClient, 0))
		ctx := c.Request().Context()
		loader.Load(ctx, sel.ProductID, sel.ShopID)
		var opts []mutation.Option
		if deps.Audit != nil {
			opts = append(opts, mutation.WithAudit(deps.Audit))
		}
		orch := mutation.New(deps.Client, loader, rec, sel, opts...)
		err := orch.UpdateInventory(ctx, input, sel.ProductID, sel.VariantID)
		status := http.StatusOK
		if err != nil {
			status = http.StatusBadGateway
		}
		return c.JSON(status, api.NewOperationResponse(err, rec, ""))
	})

	// POST /recalculate — server recomputes the reserved count
	g.POST("/recalculate", func(c echo.Context) error {
		sel := selection(c)
		rec := notify.NewRecorder()
		loader := catalog.NewLoader(deps.Client)
		var opts []mutation.Option
		if deps.Audit != nil {
			opts = append(opts, mutation.WithAudit(deps.Audit))
		}
		orch := mutation.New(deps.Client, loader, rec, sel, opts...)
		err := orch.RecalculateReservedInventory(c.Request().Context(), sel.ProductID, sel.VariantID)
		status := http.StatusOK
		if err != nil {
			status = http.StatusBadGateway
		}
		return c.JSON(status, api.NewOperationResponse(err, rec, ""))
	})
}
