// api/server.go

package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skillplot/skillplot/config"
	db "github.com/skillplot/skillplot/db/sqlc"
	"github.com/skillplot/skillplot/jooble"
	"github.com/skillplot/skillplot/match"
	"github.com/skillplot/skillplot/token"
)

// Server serves HTTP requests for the SkillPlot API.
type Server struct {
	config     config.Config
	store      *db.Store
	tokenMaker *token.JWTMaker
	jobSource  jooble.Searcher
	roles      *match.RoleCatalog
	router     *gin.Engine
}

// NewServer creates a server with all routes registered. The job source is
// injected so tests can stub the external provider.
func NewServer(
	cfg config.Config,
	store *db.Store,
	jobSource jooble.Searcher,
	roles *match.RoleCatalog,
) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(cfg.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:     cfg,
		store:      store,
		tokenMaker: tokenMaker,
		jobSource:  jobSource,
		roles:      roles,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	router := gin.Default()

	// The web client lives on a different origin; allow it explicitly.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{server.config.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	// Public routes.
	router.POST("/auth/register", server.registerUser)
	router.POST("/auth/login", server.loginUser)
	router.GET("/portfolio/:slug", server.getPortfolio)
	router.GET("/roles", server.listRoles)

	// Everything else requires a valid access token.
	authRoutes := router.Group("/").Use(authMiddleware(server.tokenMaker))

	authRoutes.GET("/users/me", server.getCurrentUser)
	authRoutes.PUT("/users/me", server.updateCurrentUser)
	authRoutes.PUT("/users/me/password", server.changePassword)
	authRoutes.DELETE("/users/me", server.deleteCurrentUser)

	authRoutes.GET("/skills", server.listSkills)
	authRoutes.POST("/skills", server.createSkill)
	authRoutes.PUT("/skills/:id", server.updateSkill)
	authRoutes.DELETE("/skills/:id", server.deleteSkill)

	authRoutes.GET("/projects", server.listProjects)
	authRoutes.POST("/projects", server.createProject)
	authRoutes.PUT("/projects/:id", server.updateProject)
	authRoutes.DELETE("/projects/:id", server.deleteProject)

	authRoutes.GET("/jobs", server.listJobs)
	authRoutes.POST("/jobs", server.createJob)
	authRoutes.GET("/jobs/match", server.matchStoredJobs)
	authRoutes.POST("/jooble/search", server.searchExternalJobs)

	authRoutes.GET("/roles/:role/comparison", server.compareRole)
	authRoutes.GET("/resume", server.getResume)

	server.router = router
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// errorResponse shapes an error into the JSON body every failed request
// returns.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
