package routes

import (
	"time"

	"github.com/darshan2121/PlantApp/config"
	orderControllers "github.com/darshan2121/PlantApp/controllers/order"
	plantControllers "github.com/darshan2121/PlantApp/controllers/plant"
	"github.com/darshan2121/PlantApp/middleware"
	"github.com/darshan2121/PlantApp/repository"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server is everything the route groups share.
type Server struct {
	Config config.Server
	Store  repository.Store
	Hub    *orderControllers.Hub
	Log    zerolog.Logger
}

// NewRouter builds the engine with CORS, request logging, static uploads
// and every route group under /api.
func NewRouter(s Server) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20

	r.Use(middleware.RequestLogger(s.Log))
	origins := s.Config.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static(plantControllers.PublicUploadPath, s.Config.UploadDir)

	api := r.Group("/api")
	SetupAuthRoutes(api, s)
	SetupCatalogRoutes(api, s)
	SetupUserRoutes(api, s)
	SetupOrderRoutes(api, s)
	SetupAdminRoutes(api, s)
	return r
}
