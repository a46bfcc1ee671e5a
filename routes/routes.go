package routes

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"minimalapi/config"
	"minimalapi/docs"
	"minimalapi/handlers"
	"minimalapi/middleware"
	"minimalapi/utils"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SwaggerDocPath is where the raw OpenAPI document is served.
const SwaggerDocPath = "/swagger/v1/swagger.json"

// NewRouter builds the engine with the middleware chain and every route.
func NewRouter(cfg config.Config, logger *zap.Logger, hb *handlers.HandlerBundle) (*gin.Engine, error) {
	router := gin.New()
	// Forwarding headers name the client only when sent by a listed proxy.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(middleware.RequestIDMiddleware(logger))
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	RegisterRoutes(router, hb, cfg)
	return router, nil
}

// RegisterGeneralRoutes registers the root greeting and the health check.
func RegisterGeneralRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HelloHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterGeneratorRoutes registers the identifier and random number endpoints.
func RegisterGeneratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/guid", hb.NewGUIDHandler)
	r.GET("/randoms", hb.GetRandomsHandler)
}

// RegisterWorkDaysRoutes registers both work day endpoints.
func RegisterWorkDaysRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/workdays", hb.GetWorkDaysHandler)
	r.POST("/workdays2", hb.GetWorkDays2Handler)
}

// RegisterDocsRoutes serves the Swagger UI under /swagger and the document at
// SwaggerDocPath.
func RegisterDocsRoutes(r *gin.Engine) {
	ui := ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(SwaggerDocPath))

	r.GET("/swagger/*any", func(c *gin.Context) {
		switch c.Param("any") {
		case "", "/":
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		case strings.TrimPrefix(SwaggerDocPath, "/swagger"):
			doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
			if err != nil {
				utils.JSONError(c, http.StatusInternalServerError, "failed to read API document", err.Error())
				return
			}
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
		default:
			ui(c)
		}
	})
}

// RegisterStaticFiles serves files under dir for any GET or HEAD request that
// no route claims.
func RegisterStaticFiles(r *gin.Engine, dir string) {
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}

		urlPath := c.Request.URL.Path
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))
		info, err := os.Stat(name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if !strings.HasSuffix(urlPath, "/") {
				c.Redirect(http.StatusMovedPermanently, urlPath+"/")
				return
			}
			name = filepath.Join(name, "index.html")
			if info, err = os.Stat(name); err != nil || info.IsDir() {
				return
			}
		}

		f, err := os.Open(name)
		if err != nil {
			return
		}
		defer f.Close()
		http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, cfg config.Config) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	RegisterGeneralRoutes(r, hb)
	RegisterGeneratorRoutes(r, hb)
	RegisterWorkDaysRoutes(r, hb)

	// The API document and its UI exist only while developing.
	if cfg.IsDevelopment() {
		RegisterDocsRoutes(r)
	}

	if cfg.StaticDir != "" {
		RegisterStaticFiles(r, cfg.StaticDir)
	}
}
