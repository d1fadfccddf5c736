package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	docs "github.com/disparador-app/disparador_api/docs"

	"github.com/disparador-app/disparador_api/middleware"
	"github.com/disparador-app/disparador_api/services/handlers"
	"github.com/disparador-app/disparador_api/shared"
)

type HttpService struct {
	context.DefaultService

	jwtSvc        *JWTService
	redisSvc      *RedisService
	monitoringSvc *MonitoringService

	sessionHandler     *handlers.SessionHandler
	statsHandler       *handlers.StatsHandler
	achievementHandler *handlers.AchievementHandler
	timerHandler       *handlers.TimerHandler
	breakdownHandler   *handlers.BreakdownHandler
	shareHandler       *handlers.ShareHandler

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
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.sessionHandler = handlers.NewSessionHandler(svc.Service(DEVICE_SVC).(*DeviceService))
	svc.statsHandler = handlers.NewStatsHandler(svc.Service(STATS_SVC).(*StatsService))
	svc.achievementHandler = handlers.NewAchievementHandler(svc.Service(ACHIEVEMENT_SVC).(*AchievementService))
	svc.timerHandler = handlers.NewTimerHandler(svc.Service(TIMER_SVC).(*TimerService))
	svc.breakdownHandler = handlers.NewBreakdownHandler(svc.Service(BREAKDOWN_SVC).(*BreakdownService))
	svc.shareHandler = handlers.NewShareHandler(svc.Service(SHARE_SVC).(*ShareService))

	docs.SwaggerInfo.BasePath = ""

	svc.app = fiber.New(fiber.Config{
		AppName:      "Disparador API",
		JSONEncoder:  shared.JSONEncoder,
		JSONDecoder:  shared.JSONDecoder,
		ErrorHandler: svc.handleError,
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	svc.app.Use(MonitoringMiddleware(svc.monitoringSvc))

	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	limits := middleware.DefaultConfigs()

	v1 := svc.app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/session", middleware.RateLimit(svc.redisSvc, limits["session_create"]), svc.sessionHandler.CreateSession)

	authed := v1.Group("", middleware.RequiredAuth(svc.jwtSvc))

	authed.Get("/stats", svc.statsHandler.GetStats)
	authed.Get("/stats/history", svc.statsHandler.GetHistory)
	authed.Post("/session/complete", middleware.RateLimit(svc.redisSvc, limits["session_complete"]), svc.statsHandler.CompleteSession)

	authed.Get("/achievements", svc.achievementHandler.GetAchievements)
	authed.Get("/share", svc.shareHandler.GetShareContent)

	authed.Post("/breakdown", middleware.RateLimit(svc.redisSvc, limits["breakdown"]), svc.breakdownHandler.GetBreakdown)
	authed.Post("/victory-title", middleware.RateLimit(svc.redisSvc, limits["victory_title"]), svc.breakdownHandler.GetVictoryTitle)

	authed.Post("/timer/start", svc.timerHandler.Start)
	authed.Post("/timer/pause", svc.timerHandler.Pause)
	authed.Post("/timer/resume", svc.timerHandler.Resume)
	authed.Post("/timer/abandon", svc.timerHandler.Abandon)
	authed.Get("/timer", svc.timerHandler.State)

	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if fiberErr, ok := err.(*fiber.Error); ok {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
