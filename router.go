// router.go
package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go-league-table/config"
	"go-league-table/controllers"
	"go-league-table/logger"
	"go-league-table/metrics"
	"go-league-table/middleware"
	"go-league-table/services"
)

const sessionName = "league_session"

// setupRouter wires every route. templatesGlob and staticDir are relative
// to the working directory.
func setupRouter(cfg *config.Config, league services.LeagueServiceInterface, publisher metrics.Publisher, templatesGlob, staticDir string) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Frame-Options", "SAMEORIGIN")
		c.Next()
	})

	// Initialize session store
	store := cookie.NewStore([]byte(cfg.App.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(sessionName, store))

	logger.Debug.Printf("setupRouter: loading templates from %s", templatesGlob)
	router.SetFuncMap(controllers.TemplateFuncs())
	router.LoadHTMLGlob(templatesGlob)
	router.Static("/static", staticDir)

	authController := controllers.NewAuthController(league)
	pageController := controllers.NewPageController(cfg.App.BaseURL)
	teamController := controllers.NewTeamController(league, publisher)
	matchController := controllers.NewMatchController(league, publisher)
	tableController := controllers.NewTableController(league)
	reportController := controllers.NewReportController(league, publisher)

	// Public routes
	router.GET("/health", controllers.Health)
	router.GET("/login", authController.ShowLoginPage)
	router.POST("/login", authController.LoginHandler)
	router.GET("/logout", authController.Logout)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/", pageController.Home)
		protected.GET("/qrcode", pageController.GetQRCode)
		protected.GET("/teams", teamController.ListTeams)
		protected.GET("/matches", matchController.ListMatches)
		protected.GET("/schedule", tableController.Schedule)
		protected.GET("/standings", tableController.Standings)
		protected.GET("/statistics", tableController.Statistics)
		protected.GET("/charts", tableController.Charts)
		protected.GET("/export/matches.pdf", reportController.ExportMatches)
		protected.GET("/export/standings.pdf", reportController.ExportStandings)
	}

	// Admin routes
	admin := protected.Group("/", middleware.AdminRequired())
	{
		admin.GET("/teams/new", teamController.NewTeamForm)
		admin.POST("/teams", teamController.CreateTeam)
		admin.GET("/matches/new", matchController.NewMatchForm)
		admin.POST("/matches", matchController.CreateMatch)
		admin.GET("/matches/:id/edit", matchController.EditMatchForm)
		admin.POST("/matches/:id", matchController.UpdateMatch)
		admin.POST("/matches/:id/delete", matchController.DeleteMatch)
	}

	return router
}
