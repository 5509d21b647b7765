package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BeerBase/pkg/server/middlewares"
	"droscher.com/BeerBase/pkg/version"
)

const APIPrefix = "/api/v1"

// NewRouter builds the gin engine serving the catalog API under /api/v1.
func NewRouter(beerServer *BeerServer, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middlewares.RequestID(),
		ginzap.GinzapWithConfig(logger.Named("http"), &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			Context:    middlewares.RequestIDField,
		}),
		ginzap.RecoveryWithZap(logger, true),
	)

	api := router.Group(APIPrefix)
	beerServer.Register(api)
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": version.Get()})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

// NewHandler mounts the API next to the gRPC health and reflection services, wrapped in CORS and h2c.
func NewHandler(router http.Handler, checker grpchealth.Checker, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(APIPrefix+"/", router)

	interceptors := connect.WithInterceptors(logInterceptor(logger))

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	mux.Handle(grpchealth.NewHandler(checker, interceptors))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))

	return h2c.NewHandler(configureCORS(mux), &http2.Server{})
}

func logInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			response, err := next(ctx, req)
			if err != nil {
				logger.Warn("rpc failed", zap.String("procedure", req.Spec().Procedure), zap.Error(err))
			}

			return response, err
		}
	}
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
