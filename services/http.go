package services

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	_ "github.com/codemastery/course_api/docs"
	"github.com/codemastery/course_api/services/handlers"
	"github.com/codemastery/course_api/shared"
)

type HttpService struct {
	context.DefaultService

	monSvc *MonitoringService

	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	progressHandler *handlers.ProgressHandler
	adminHandler    *handlers.AdminHandler

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.monSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.authHandler = handlers.NewAuthHandler(svc.Service(AUTH_SVC).(*AuthService))
	svc.userHandler = handlers.NewUserHandler(svc.Service(USER_SVC).(*UserService))
	svc.progressHandler = handlers.NewProgressHandler(svc.Service(PROGRESS_SVC).(*ProgressService))
	svc.adminHandler = handlers.NewAdminHandler(svc.Service(ADMIN_SVC).(*AdminService))

	svc.app = svc.setupApp()

	log.Printf("HTTP server listening on :%d", svc.port)
	return svc.app.Listen(fmt.Sprintf(":%d", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) setupApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          shared.ErrorHandler,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(svc.requestLogger())

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Get("/health", svc.health)

	auth := api.Group("/auth")
	auth.Post("/register", svc.authHandler.Register)
	auth.Post("/login", svc.authHandler.Login)

	progress := api.Group("/progress")
	progress.Post("/update", svc.progressHandler.Update)
	progress.Get("/:userId", svc.progressHandler.Get)

	api.Put("/users/profile", svc.userHandler.UpdateProfile)

	admin := api.Group("/admin")
	admin.Get("/users", svc.adminHandler.ListUsers)
	admin.Delete("/users/:id", svc.adminHandler.DeleteUser)

	return app
}

// requestLogger tags every request with an id, resolves errors through the
// shared handler so the recorded status is the one the client saw, and feeds
// the monitoring service.
func (svc *HttpService) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals(shared.RequestID, requestID)
		c.Set("X-Request-ID", requestID)

		if err := c.Next(); err != nil {
			if handlerErr := shared.ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		duration := time.Since(start)

		if svc.monSvc != nil {
			svc.monSvc.RecordRequest(c.Route().Path, c.Method(), status, duration.Seconds())
		}

		log.WithFields(log.Fields{
			shared.RequestID: requestID,
			"method":         c.Method(),
			"path":           c.Path(),
			"status":         status,
			"duration_ms":    duration.Milliseconds(),
		}).Debug("Request handled")

		return nil
	}
}

// @Summary Health check
// @Description Reports whether the service is up.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func (svc *HttpService) health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}
