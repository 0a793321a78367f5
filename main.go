package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"recruitment-dashboard/config"
	"recruitment-dashboard/controllers/admin"
	"recruitment-dashboard/controllers/web"
	"recruitment-dashboard/fiberlog"
	"recruitment-dashboard/initializers"
	"recruitment-dashboard/metrics"
	"recruitment-dashboard/middleware"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Use(middleware.RequestID())
	app.Use(middleware.BackendSession())
	app.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST",
	}))
	app.Use(middleware.WithBodyLimit(config.Conf.App.BodyLimitKB * 1024))

	app.Get("/metrics", metrics.Handler())

	web.InitDashboardRouters(app, initializers.State)
	web.InitExportRouters(app, initializers.State)
	web.InitChartsRouters(app, initializers.State, config.Conf.Charts.Width, config.Conf.Charts.Height, config.Conf.Charts.MaxRenders)
	web.InitDetailsRouters(app, initializers.State, time.Duration(config.Conf.Print.DelayMs)*time.Millisecond)
	web.InitStatusRouters(app)
	web.InitUploadsRouters(app)

	//админка
	adminPanel := app.Group("/admin")
	admin.InitUsersRouters(adminPanel)
	admin.InitFormRouters(adminPanel)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
