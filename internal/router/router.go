package router

import (
	"net/http"
	"time"

	"github.com/AarazooSingh1506/autism-detction-system/internal/assessment"
	"github.com/AarazooSingh1506/autism-detction-system/internal/config"
	"github.com/AarazooSingh1506/autism-detction-system/internal/handlers"
	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitExceeded(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests, try again later"})
}

// Setup builds the gin engine with the full middleware chain and routes.
func Setup(log *zap.Logger, questionnaire *models.Questionnaire, flow *assessment.Flow) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	store := cookie.NewStore([]byte(config.Conf.Server.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	router.Use(sessions.Sessions("asd_session", store))

	router.Use(CSRFProtection())
	router.Use(UserLoaderMiddleware(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
	})

	authHandler := handlers.NewAuthHandler(log)
	assessmentHandler := handlers.NewAssessmentHandler(log, questionnaire, flow)
	resultsHandler := handlers.NewResultsHandler(log)
	adminHandler := handlers.NewAdminHandler(log)

	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 5,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: rateLimitExceeded,
		KeyFunc:      keyFunc,
	})

	router.GET("/api/csrf", CSRFToken)
	router.POST("/register", limiter, authHandler.Register)
	router.POST("/login", limiter, authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	api := router.Group("/api")
	api.Use(AuthRequired(log))
	{
		api.GET("/questions", assessmentHandler.Questions)
		api.POST("/assessment/answers", assessmentHandler.SubmitAnswers)
		api.POST("/assessment/score", assessmentHandler.Score)
		api.GET("/results/latest", resultsHandler.Latest)
		api.GET("/results", resultsHandler.History)

		admin := api.Group("/admin")
		admin.Use(AdminRequired())
		{
			admin.GET("/summary", adminHandler.Summary)
			admin.GET("/assessments", adminHandler.Assessments)
			admin.GET("/users", adminHandler.Users)
			admin.GET("/analytics", adminHandler.Analytics)
		}
	}

	return router
}
