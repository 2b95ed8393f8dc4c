// Package httpapi exposes the public HTTP surface of the MealSnap server:
// account endpoints, the bearer-token auth gate, and the meal intake
// operations behind it.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mealsnap/mealsnap/internal/logging"
	"github.com/mealsnap/mealsnap/internal/server/services"
)

// Server wires the gin engine to the business services.
type Server struct {
	address   string
	engine    *gin.Engine
	logger    logging.Logger
	users     *services.UserService
	meals     *services.MealService
	jwtSecret []byte
}

// NewServer builds the engine, registers middleware and routes, and returns
// a Server ready to Run.
func NewServer(address string, l logging.Logger, us *services.UserService, ms *services.MealService, secretKey string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	s := &Server{
		address:   address,
		engine:    engine,
		logger:    l.With("module", "httpapi"),
		users:     us,
		meals:     ms,
		jwtSecret: []byte(secretKey),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.POST("/signup", s.signUp)
	s.engine.POST("/signin", s.signIn)

	protected := s.engine.Group("/", s.authRequired())
	protected.POST("/meals", s.createMeal)
	protected.GET("/meals", s.listMeals)
	protected.GET("/meals/:mealId", s.getMealByID)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
