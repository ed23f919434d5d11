package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"recruitment-desk-backend/config"
	apiv1 "recruitment-desk-backend/controllers/v1"
	"recruitment-desk-backend/fiberlog"
	"recruitment-desk-backend/initializers"
	"recruitment-desk-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: int(config.Conf.S3.MaxResumeSize) + 1024*1024,
	})
	app.Use(fiberRecover.New())

	if _, err := os.Stat(config.Conf.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.Swagger.FilePath,
		}))
	} else {
		log.WithField("file_path", config.Conf.Swagger.FilePath).Warn("swagger файл не найден, документация недоступна")
	}

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.ErrNotify(config.Conf.NotifyBot.AddrErr))
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods:  "GET, POST, DELETE, PUT",
		ExposeHeaders: "Content-Disposition, X-Request-ID",
	}))
	app.Mount("/api/v1", apiV1)
	apiv1.InitApplicantApiRouters(apiV1, config.Conf.Export.FontDir, config.Conf.S3.MaxResumeSize)
	apiv1.InitDepartmentApiRouters(apiV1)
	apiv1.InitJobApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
