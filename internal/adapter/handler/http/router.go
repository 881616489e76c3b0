package http

import (
	"net/http"
	"strings"

	"github.com/elitemotors/storefront/internal/config"
	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	resolver SessionResolver,
	metricsHandler http.Handler,
	inventoryHandler *InventoryHandler,
	carHandler *CarHandler,
	authHandler *AuthHandler,
	favoritesHandler *FavoritesHandler,
	testDriveHandler *TestDriveHandler,
	userHandler *UserHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg.AllowedOrigins),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Inventory routes; a session only personalizes the result
	inventory := router.Group("/inventory")
	inventory.Use(OptionalAuth(resolver))
	{
		inventory.GET("", inventoryHandler.Browse)
		inventory.GET("/filter", inventoryHandler.Refilter)
		inventory.GET("/facets", inventoryHandler.Facets)
		inventory.POST("/reload", inventoryHandler.Reload)
	}

	cars := router.Group("/cars")
	{
		cars.GET("/featured", carHandler.Featured)
		cars.GET("/:id", carHandler.GetCar)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", AuthMiddleware(resolver), authHandler.Logout)
		auth.GET("/me", AuthMiddleware(resolver), authHandler.Me)
	}

	favorites := router.Group("/favorites")
	favorites.Use(AuthMiddleware(resolver), RequireRoles(domain.ErrCustomersOnly, domain.Customer))
	{
		favorites.GET("", favoritesHandler.List)
		favorites.POST("/:car_id", favoritesHandler.Add)
		favorites.DELETE("/:car_id", favoritesHandler.Remove)
	}

	testDrives := router.Group("/test-drives")
	testDrives.Use(AuthMiddleware(resolver))
	{
		testDrives.POST("", RequireRoles(domain.ErrTestDriveRole, domain.Customer), testDriveHandler.Submit)
		testDrives.GET("/my", testDriveHandler.ListMine)
	}

	// Owner routes
	owner := router.Group("/owner")
	owner.Use(AuthMiddleware(resolver), RequireRoles(domain.ErrOwnersOnly, domain.Owner, domain.Admin))
	{
		owner.GET("/dashboard", testDriveHandler.Dashboard)
		owner.GET("/cars", carHandler.ListCars)
		owner.POST("/cars", carHandler.CreateCar)
		owner.PUT("/cars/:id", carHandler.UpdateCar)
		owner.DELETE("/cars/:id", carHandler.DeleteCar)
		owner.GET("/test-drives", testDriveHandler.ListAll)
		owner.PUT("/test-drives/:id/status", testDriveHandler.UpdateStatus)
	}

	// Admin routes
	admin := router.Group("/admin")
	admin.Use(AuthMiddleware(resolver), RequireRoles(domain.ErrAdminsOnly, domain.Admin))
	{
		admin.GET("/users", userHandler.List)
		admin.PUT("/users/:id/role", userHandler.ChangeRole)
		admin.DELETE("/users/:id", userHandler.Delete)
	}

	return &Router{router: router}, nil
}

func allowedOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
