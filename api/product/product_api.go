package product

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/api"
	"github.com/Draketheb4dass/reaction-admin/config"
	"github.com/Draketheb4dass/reaction-admin/notify"
	"github.com/Draketheb4dass/reaction-admin/service/catalog"
	"github.com/Draketheb4dass/reaction-admin/service/mutation"
)

func init() {
	api.RegisterModule(RegisterProductRoutes)
}

// navigationRecorder captures the redirect target so the facade can return it
// instead of navigating.
type navigationRecorder struct {
	path string
}

func (n *navigationRecorder) NavigateTo(path string) {
	n.path = path
}

// routeParams extracts the identifier route parameters echo matched for this
// request; the shop id may also arrive as a query parameter.
func routeParams(c echo.Context) catalog.RouteParams {
	return catalog.RouteParams{
		ProductID: c.Param("productId"),
		VariantID: c.Param("variantId"),
		OptionID:  c.Param("optionId"),
		ShopID:    c.QueryParam("shopId"),
	}
}

// requestScope wires a per-request loader, recorder, and orchestrator around
// the resolved selection.
type requestScope struct {
	sel    catalog.Selection
	loader *catalog.Loader
	rec    *notify.Recorder
	nav    *navigationRecorder
	orch   *mutation.Orchestrator
}

func newRequestScope(c echo.Context, deps *api.Deps, explicit catalog.Args) *requestScope {
	sel := catalog.Resolve(routeParams(c), explicit, config.CurrentShopID())
	loader := catalog.NewLoader(deps.Client, catalog.WithRedis(config.RedisClient, 0))
	rec := notify.NewRecorder()
	nav := &navigationRecorder{}
	var opts []mutation.Option
	opts = append(opts, mutation.WithNavigator(nav))
	if deps.Audit != nil {
		opts = append(opts, mutation.WithAudit(deps.Audit))
	}
	return &requestScope{
		sel:    sel,
		loader: loader,
		rec:    rec,
		nav:    nav,
		orch:   mutation.New(deps.Client, loader, rec, sel, opts...),
	}
}

func (s *requestScope) respond(c echo.Context, err error) error {
	resp := api.NewOperationResponse(err, s.rec, s.nav.path)
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	return c.JSON(status, resp)
}

func RegisterProductRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/products")

	// GET /api/products/:productId — aggregate plus located variant/option
	g.GET("/:productId", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{
			VariantID: c.QueryParam("variantId"),
			OptionID:  c.QueryParam("optionId"),
		})
		product := s.loader.Load(c.Request().Context(), s.sel.ProductID, s.sel.ShopID)
		if product == nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		variant, option := catalog.Locate(product, s.sel.VariantID, s.sel.OptionID)
		return c.JSON(http.StatusOK, echo.Map{
			"product": product,
			"variant": variant,
			"option":  option,
		})
	})

	// POST /api/products/:productId/archive
	g.POST("/:productId/archive", func(c echo.Context) error {
		var body struct {
			Redirect string `json:"redirect"`
		}
		_ = c.Bind(&body)
		s := newRequestScope(c, deps, catalog.Args{})
		ctx := c.Request().Context()
		product := s.loader.Load(ctx, s.sel.ProductID, s.sel.ShopID)
		err := s.orch.ArchiveProduct(ctx, product, body.Redirect)
		return s.respond(c, err)
	})

	// POST /api/products/:productId/clone
	g.POST("/:productId/clone", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{})
		err := s.orch.CloneProduct(c.Request().Context(), s.sel.ProductID)
		return s.respond(c, err)
	})

	// POST /api/products/:productId/visibility — toggle
	g.POST("/:productId/visibility", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{})
		ctx := c.Request().Context()
		s.loader.Load(ctx, s.sel.ProductID, s.sel.ShopID)
		err := s.orch.ToggleProductVisibility(ctx)
		return s.respond(c, err)
	})

	// PATCH /api/products/:productId — generic field patch
	g.PATCH("/:productId", func(c echo.Context) error {
		var fields mutation.ProductFields
		if err := c.Bind(&fields); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		s := newRequestScope(c, deps, catalog.Args{})
		err := s.orch.UpdateProduct(c.Request().Context(), fields, s.sel.ProductID, s.sel.ShopID)
		return s.respond(c, err)
	})

	// DELETE /api/products/:productId/tags/:tagId
	g.DELETE("/:productId/tags/:tagId", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{})
		ctx := c.Request().Context()
		s.loader.Load(ctx, s.sel.ProductID, s.sel.ShopID)
		err := s.orch.RemoveTag(ctx, c.Param("tagId"))
		return s.respond(c, err)
	})

	// POST /api/products/:productId/variants — create variant
	g.POST("/:productId/variants", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{})
		err := s.orch.CreateVariant(c.Request().Context(), s.sel.ProductID, s.sel.ShopID)
		return s.respond(c, err)
	})

	// PATCH /api/products/:productId/variants/:variantId
	g.PATCH("/:productId/variants/:variantId", func(c echo.Context) error {
		var fields mutation.VariantFields
		if err := c.Bind(&fields); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		s := newRequestScope(c, deps, catalog.Args{})
		err := s.orch.UpdateVariant(c.Request().Context(), fields, s.sel.VariantID, s.sel.ShopID)
		return s.respond(c, err)
	})

	// POST /api/products/:productId/variants/:variantId/visibility — toggle
	g.POST("/:productId/variants/:variantId/visibility", func(c echo.Context) error {
		s := newRequestScope(c, deps, catalog.Args{})
		ctx := c.Request().Context()
		product := s.loader.Load(ctx, s.sel.ProductID, s.sel.ShopID)
		variant := catalog.FindVariant(product, s.sel.VariantID)
		err := s.orch.ToggleVariantVisibility(ctx, variant, s.sel.ShopID)
		return s.respond(c, err)
	})
}
