package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quotehub/quote-api/internal/application/admin"
	"github.com/quotehub/quote-api/internal/application/auth"
	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SetupUC     *usecase.SetupUseCase
	CompanyUC   *usecase.CompanyUseCase
	MemberUC    *usecase.MemberUseCase
	CustomerUC  *usecase.CustomerUseCase
	QuoteUC     *usecase.QuoteUseCase
	DashboardUC *admin.DashboardUseCase
	Resolver    *session.Resolver
	JWTSecret   string
}

// Router registers the API routes. Everything except register/login sits
// behind AuthMiddleware + SessionMiddleware; the destination gates
// (RequireCompany, RequireNoCompany, RequireSuperAdmin) decide per group.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes: token + resolved session
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), SessionMiddleware(deps.Resolver))

	// Session endpoint — available in every setup state
	protected.Get("/me", authHandler.Me)

	// Company bootstrap — only while the user has no company
	setupHandler := NewSetupHandler(deps.SetupUC)
	protected.Post("/setup", RequireNoCompany(), setupHandler.Setup)

	// Company-scoped routes
	tenant := protected.Group("/", RequireCompany())

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company := tenant.Group("/company")
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Update)
	company.Get("/subscription", companyHandler.Subscription)

	memberHandler := NewMemberHandler(deps.MemberUC)
	members := tenant.Group("/members")
	members.Get("/", memberHandler.List)
	members.Post("/", memberHandler.Invite)
	members.Put("/:userId/role", memberHandler.UpdateRole)
	members.Delete("/:userId", memberHandler.Remove)

	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := tenant.Group("/customers")
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.Get)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	quotes := tenant.Group("/quotes")
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.Get)
	quotes.Put("/:id", quoteHandler.Update)
	quotes.Delete("/:id", quoteHandler.Delete)

	// Super-admin dashboard — cross-tenant, gated on the admin_users flag
	adminHandler := NewAdminHandler(deps.DashboardUC)
	adminGroup := protected.Group("/admin", RequireSuperAdmin())
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Post("/subscriptions/:id/toggle", adminHandler.ToggleSubscription)
	adminGroup.Post("/companies/:companyId/subscription", adminHandler.CreateSubscription)
}
