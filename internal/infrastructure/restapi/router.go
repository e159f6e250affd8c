package restapi

import (
	"net/http"
	"net/http/pprof"

	"file_wallet/internal/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configures and returns the Gin router. The browser shell
// is served from another origin, hence the permissive CORS policy.
func SetupRouter(routeHandler *RouteHandler, assetHandler *AssetHandler, custodialHandler *CustodialHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(utils.ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/route/plan", routeHandler.PlanRouteHandler)
		v1.POST("/route/validate", routeHandler.ValidateHandler)
		v1.POST("/route/split", routeHandler.SplitHandler)

		v1.POST("/assets/from-token", assetHandler.FromTokenHandler)
		v1.POST("/assets/from-inscription", assetHandler.FromInscriptionHandler)
		v1.POST("/assets/export", assetHandler.ExportContainerHandler)
		v1.POST("/assets/import", assetHandler.ImportContainerHandler)
		v1.POST("/assets/to-transaction", assetHandler.ToTransactionHandler)
		v1.POST("/assets/catalog", assetHandler.CatalogHandler)

		v1.GET("/custodial/status", custodialHandler.StatusHandler)
		v1.GET("/custodial/balance", custodialHandler.BalanceHandler)
		v1.POST("/custodial/pay", custodialHandler.PayHandler)
	}

	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protect these in a production deployment.
	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.POST("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/allocs", gin.WrapH(pprof.Handler("allocs")))
		pprofRouter.GET("/block", gin.WrapH(pprof.Handler("block")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofRouter.GET("/mutex", gin.WrapH(pprof.Handler("mutex")))
		pprofRouter.GET("/threadcreate", gin.WrapH(pprof.Handler("threadcreate")))
	}

	return router
}
