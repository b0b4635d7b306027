package bootstrap

import (
	"context"
	"log"

	"grantflow-be/internal/config"
	"grantflow-be/internal/controller"
	"grantflow-be/internal/handler"
	"grantflow-be/internal/pkg/logger"
	"grantflow-be/internal/pkg/mailer"
	"grantflow-be/internal/repository/memory"
	"grantflow-be/internal/repository/unitofwork"
	"grantflow-be/internal/service"
	"grantflow-be/internal/websocket"
	"grantflow-be/pkg/events"
	"grantflow-be/pkg/markdown"
	pktNats "grantflow-be/pkg/nats"
	"grantflow-be/pkg/workflow"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WorkflowController  controller.IWorkflowController
	PromptController    controller.IPromptController
	TemplateController  controller.ITemplateController
	FavoriteController  controller.IFavoriteController
	CommentController   controller.ICommentController
	CommunityController controller.ICommunityController
	ProfileController   controller.IProfileController

	// Background services, run by main.go
	WorkflowService     service.IWorkflowService
	SaveConsumer        service.IConsumerService
	CommunityService    service.ICommunityService
	NotificationService *service.NotificationService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
	Sessions            *memory.SessionRepository

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	renderer := markdown.NewRenderer()

	var emailService mailer.IEmailService = mailer.NopEmailService{}
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
			cfg.App.ClientURL,
		)
	} else {
		log.Println("[INFO] SMTP_HOST not set, email notifications disabled")
	}

	c := &Container{Logger: sysLogger}

	// 2. In-process save queue
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Event bus. The app keeps working without NATS; events are dropped.
	var eventPublisher events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	var eventSubscriber service.EventSubscriber
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		eventSubscriber = natsSub
		c.closers = append(c.closers, natsSub.Close)
	}

	// Redis fans notifications out across instances.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	c.closers = append(c.closers, func() { _ = rdb.Close() })

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)

	// 4. Workflow
	tracker := workflow.NewTracker(workflow.DefaultCatalog(), service.NewProgressStore(uowFactory))
	sessions := memory.NewSessionRepository(cfg.Workflow.SessionTTL)
	c.Sessions = sessions
	saveQueue := service.NewPublisherService(cfg.Workflow.SaveTopic, pubSub)
	workflowService := service.NewWorkflowService(tracker, sessions, saveQueue, eventPublisher, uowFactory, sysLogger)
	c.WorkflowService = workflowService
	c.SaveConsumer = service.NewWorkflowSaveConsumer(pubSub, cfg.Workflow.SaveTopic, tracker, eventPublisher, sysLogger)

	// 5. Library & community
	promptService := service.NewPromptService(uowFactory, renderer, sysLogger)
	templateService := service.NewTemplateService(uowFactory, renderer, eventPublisher, sysLogger)
	favoriteService := service.NewFavoriteService(uowFactory)
	commentService := service.NewCommentService(uowFactory, renderer, eventPublisher, sysLogger)
	c.CommunityService = service.NewCommunityService(
		uowFactory,
		memory.NewLeaderboardCache(),
		cfg.Community.LeaderboardSize,
		cfg.Community.LeaderboardCron,
		sysLogger,
	)
	profileService := service.NewProfileService(uowFactory, workflowService, renderer)

	// 6. Notifications. The hub implements NotificationDelivery.
	c.NotificationService = service.NewNotificationService(uowFactory, eventSubscriber, c.WebSocketHub, emailService, wsLogger)
	c.NotificationHandler = handler.NewNotificationHandler(c.NotificationService, c.WebSocketHub, wsLogger)

	// 7. Controllers
	c.WorkflowController = controller.NewWorkflowController(workflowService)
	c.PromptController = controller.NewPromptController(promptService)
	c.TemplateController = controller.NewTemplateController(templateService)
	c.FavoriteController = controller.NewFavoriteController(favoriteService)
	c.CommentController = controller.NewCommentController(commentService)
	c.CommunityController = controller.NewCommunityController(c.CommunityService)
	c.ProfileController = controller.NewProfileController(profileService)

	return c
}

// Close releases broker and cache connections in reverse order.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
