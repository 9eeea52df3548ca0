package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/web-mihir/manufacturer-website-server-side/internal/handlers"
	"github.com/web-mihir/manufacturer-website-server-side/internal/service"
	"github.com/web-mihir/manufacturer-website-server-side/internal/store"
)

func NewServer(cfg Config) (*gin.Engine, func(), error) {
	ctx := context.Background()

	// --- store ---
	st, cleanup, err := store.Open(ctx, cfg.DBURI)
	if err != nil {
		return nil, nil, err
	}
	// the connection is attempted once at boot; a failure is logged and the
	// server keeps listening, so requests fail individually until the
	// database comes back
	if err := st.Ping(ctx); err != nil {
		log.Println("mongo ping failed:", err)
	}

	// --- gin ---
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// allow-all CORS; Authorization must be granted explicitly or browser
	// preflights for the guarded routes are refused
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	// --- services ---
	tokens := service.NewTokenService(cfg.TokenSecret)
	users := service.NewUserService(st.Users)
	catalog := service.NewCatalogService(st.Products, st.Reviews)
	orders := service.NewOrderService(st.Orders, st.Products)
	payments := service.NewPaymentService(cfg.StripeKey)

	// --- handlers ---
	guard := handlers.NewGuard(tokens, users)
	productH := handlers.NewProductHandler(catalog)
	userH := handlers.NewUserHandler(users, tokens)
	reviewH := handlers.NewReviewHandler(catalog)
	orderH := handlers.NewOrderHandler(orders)
	paymentH := handlers.NewPaymentHandler(payments)
	portfolioH := handlers.NewPortfolioHandler(st.Information, st.Projects, st.Blogs)

	// --- routes ---
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Manufacture Site Running") })
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	r.GET("/products", productH.List)
	r.GET("/products/:id", productH.Get)
	r.POST("/product", productH.Create)
	r.PUT("/product-update/:id", productH.Update)
	r.DELETE("/delete-product/:id", productH.Delete)

	r.PUT("/user/:email", userH.Upsert)
	r.PUT("/user/admin/:email", guard.RequireAuth, guard.RequireAdmin, userH.MakeAdmin)
	r.GET("/user-info/:email", userH.Info)
	r.GET("/users", userH.List)
	r.GET("/admin/:email", userH.AdminStatus)

	r.POST("/reviews", reviewH.Create)
	r.GET("/reviews", reviewH.List)
	r.GET("/review/:email", reviewH.ByEmail)
	r.DELETE("/review/:id", reviewH.Delete)

	r.POST("/orders/:id", orderH.Create)
	r.PUT("/order-confirm/:orderId", orderH.Confirm)
	r.PUT("/order-payment/:orderId", orderH.Pay)
	r.GET("/my-orders/:email", orderH.ByEmail)
	r.DELETE("/delete-my-order/:orderId", orderH.Cancel)
	r.GET("/all-orders", orderH.All)
	r.GET("/order/:id", orderH.Get)

	r.POST("/create-payment-intent", guard.RequireAuth, paymentH.CreateIntent)

	r.GET("/information", portfolioH.Info)
	r.GET("/my-project", portfolioH.ProjectList)
	r.GET("/blogs", portfolioH.BlogList)

	return r, cleanup, nil
}
