package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	gemini "github.com/veda-labs/jyotish/internal/adapters/genai/gemini"
	api "github.com/veda-labs/jyotish/internal/adapters/http/api"
	swagger "github.com/veda-labs/jyotish/internal/adapters/http/swagger"
	service "github.com/veda-labs/jyotish/internal/app"
	"github.com/veda-labs/jyotish/internal/config"
	"github.com/veda-labs/jyotish/pkg/logger"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		log := logger.Get()

		convey.Convey("When testing configuration loading", func() {
			t.Setenv("JYOTISH_ADDR", ":8080")
			t.Setenv("JYOTISH_GEMINI_API_KEY", "test-key")

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.GeminiAPIKey, convey.ShouldEqual, "test-key")
			})
		})

		convey.Convey("When testing full application wiring", func() {
			t.Setenv("JYOTISH_GEMINI_API_KEY", "test-key")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)

			generator := gemini.NewClient(
				&http.Client{Timeout: time.Duration(cfg.UpstreamTimeoutMS) * time.Millisecond},
				cfg.GeminiAPIKey,
				cfg.GeminiBaseURL,
				cfg.GeminiModel,
				log.Named("gemini"),
			)
			convey.So(generator, convey.ShouldNotBeNil)

			svc := service.New(generator, service.WithLogger(log.Named("service")))
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then routes should register without panicking", func() {
				mux := http.NewServeMux()
				server := api.NewServer(svc, cfg.MaxBodyBytes, log.Named("api"))
				convey.So(server, convey.ShouldNotBeNil)

				convey.So(func() {
					server.Register(ctx, mux)
					swagger.Register(ctx, mux)
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the generation API key is absent", func() {
			t.Setenv("JYOTISH_GEMINI_API_KEY", "")

			convey.Convey("Then configuration loading should fail at startup", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the listen address is empty", func() {
			t.Setenv("JYOTISH_GEMINI_API_KEY", "test-key")
			t.Setenv("JYOTISH_ADDR", "")

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
