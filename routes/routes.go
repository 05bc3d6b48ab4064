package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	staffSvc := services.NewStaffService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catCtrl := controllers.NewCategoryController(catRepo)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerGroupCtrl := controllers.NewGroupController(staffSvc, entity.RoleManager, "manager")
	crewGroupCtrl := controllers.NewGroupController(staffSvc, entity.RoleDelivery, "delivery crew")

	authed := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	managerOnly := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager, entity.RoleAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Categories
	r.GET("/categories", authed, catCtrl.List)
	r.POST("/categories", managerOnly, catCtrl.Create)

	// Menu items: reads for everyone logged in, writes for managers
	r.GET("/menu-items", authed, menuCtrl.List)
	r.GET("/menu-items/export", managerOnly, menuCtrl.Export)
	r.GET("/menu-items/:id", authed, menuCtrl.Detail)
	r.POST("/menu-items", managerOnly, menuCtrl.Create)
	r.PUT("/menu-items/:id", managerOnly, menuCtrl.Replace)
	r.PATCH("/menu-items/:id", managerOnly, menuCtrl.Patch)
	r.DELETE("/menu-items/:id", managerOnly, menuCtrl.Delete)

	// Staff groups (manager only)
	groups := r.Group("/groups", managerOnly)
	{
		groups.GET("/manager/users", managerGroupCtrl.List)
		groups.POST("/manager/users", managerGroupCtrl.Assign)
		groups.DELETE("/manager/users/:id", managerGroupCtrl.Remove)

		groups.GET("/delivery-crew/users", crewGroupCtrl.List)
		groups.POST("/delivery-crew/users", crewGroupCtrl.Assign)
		groups.DELETE("/delivery-crew/users/:id", crewGroupCtrl.Remove)
	}

	// Cart
	cart := r.Group("/cart", authed)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders: permission branching happens in the service layer
	orders := r.Group("/orders", authed)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Create)
		orders.GET("/:id", orderCtrl.Detail)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Update)
		orders.DELETE("/:id", orderCtrl.Delete)
	}
}
