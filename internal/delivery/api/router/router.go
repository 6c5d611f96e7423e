// Package router contains the route table and its registration on echo.
package router

import (
	"net/http"
	"path"

	"authgate/config"
	"authgate/internal/delivery/api/middleware"
	"authgate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Route is one entry of the static route table.
type Route struct {
	Method       string
	Path         string
	Handler      echo.HandlerFunc
	AuthRequired bool
}

type RouterParams struct {
	fx.In

	AuthenticationHandler *handler.AuthenticationHandler
	UserHandler           *handler.UserHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authenticationHandler *handler.AuthenticationHandler
	userHandler           *handler.UserHandler
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authenticationHandler: params.AuthenticationHandler,
		userHandler:           params.UserHandler,
		authMiddleware:        params.AuthMiddleware,
		config:                params.Config,
	}
}

// Routes is the route table mounted under the API base path.
func (r *router) Routes() []Route {
	return []Route{
		{Method: http.MethodPost, Path: "/authentication/login", Handler: r.authenticationHandler.Login},
		{Method: http.MethodPost, Path: "/authentication/sign-up", Handler: r.authenticationHandler.SignUp},
		{Method: http.MethodPost, Path: "/authentication/logout", Handler: r.authenticationHandler.Logout, AuthRequired: true},
		{Method: http.MethodGet, Path: "/users/me", Handler: r.userHandler.Me, AuthRequired: true},
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	basePath := r.config.API.BasePath
	routes := r.Routes()
	whitelist := Whitelist(basePath, routes, r.config.API.WhitelistedPaths)

	Mount(e.Group(basePath), routes, middleware.Unless(whitelist, r.authMiddleware.Authenticate))
}

// Whitelist lists the full paths that bypass authentication: every public
// route in the table plus any extra paths from configuration.
func Whitelist(basePath string, routes []Route, extra []string) []string {
	whitelist := make([]string, 0, len(routes)+len(extra))
	for _, route := range routes {
		if !route.AuthRequired {
			whitelist = append(whitelist, path.Join(basePath, route.Path))
		}
	}

	return append(whitelist, extra...)
}

// Mount registers the routes on group behind gate.
func Mount(group *echo.Group, routes []Route, gate echo.MiddlewareFunc) {
	group.Use(gate)
	for _, route := range routes {
		group.Add(route.Method, route.Path, route.Handler)
	}
}
