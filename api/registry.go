package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/Draketheb4dass/reaction-admin/client"
	"github.com/Draketheb4dass/reaction-admin/core/registry"
	auditRepo "github.com/Draketheb4dass/reaction-admin/model/repository/audit"
)

var mu sync.Mutex

// Deps is everything an API module may need. Audit is nil when the audit
// database is not configured.
type Deps struct {
	Client *client.Client
	Audit  *auditRepo.AuditRepository
}

// --- /api group modules (authenticated) ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, deps *Deps)

func getModules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryAPI) {
		panic("api/registry: API modules locked (register only during init)")
	}
	list := getModules()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, list)
}

// ApplyModules calls all registered /api modules. Locks the registry.
func ApplyModules(g *echo.Group, deps *Deps) {
	for _, fn := range getModules() {
		fn(g, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// --- Root-level routes (public: health, custom, etc.) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, deps *Deps)

const keyRegistryRoutes = "registry:routes"

func getRoutes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(keyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(keyRegistryRoutes) {
		panic("api/registry: routes locked (register only during init)")
	}
	list := getRoutes()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(keyRegistryRoutes, list)
}

// RegisterGET is shorthand for registering a simple GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for registering a simple POST route on root.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *Deps) {
		e.POST(path, handler)
	})
}

// ApplyRoutes calls all registered root-level routes. Locks the registry.
func ApplyRoutes(e *echo.Echo, deps *Deps) {
	for _, fn := range getRoutes() {
		fn(e, deps)
	}
	registry.GlobalRegistry.Lock(keyRegistryRoutes)
}
