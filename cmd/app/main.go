package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/sushihentaime/blogora/internal/blogservice"
	"github.com/sushihentaime/blogora/internal/commentservice"
	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/eventservice"
	"github.com/sushihentaime/blogora/internal/likeservice"
	"github.com/sushihentaime/blogora/internal/mailservice"
	"github.com/sushihentaime/blogora/internal/projectservice"
	"github.com/sushihentaime/blogora/internal/tagservice"
	"github.com/sushihentaime/blogora/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	userService    *userservice.UserService
	blogService    *blogservice.BlogService
	commentService *commentservice.CommentService
	likeService    *likeservice.LikeService
	tagService     *tagservice.TagService
	projectService *projectservice.ProjectService
	eventService   *eventservice.EventService
	mailService    *mailservice.MailService
	broker         *common.MessageBroker
}

func main() {
	// Initialize the logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load the configuration
	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the database
	db, err := common.NewDB(cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Initialize the message broker
	URI := fmt.Sprintf("amqp://%s:%s@%s:%s/", cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port)
	broker, err := common.NewMessageBroker(URI)
	if err != nil {
		logger.Error("failed to connect to the message broker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer broker.Close()

	// Setup the exchange, queue, and binding key
	err = common.SetupUserExchange(broker)
	if err != nil {
		logger.Error("failed to setup the user exchange", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	// Initialize the services. The blog, comment, like, project, and event
	// services take the user, blog, and tag services as their referential
	// checks.
	userService := userservice.NewUserService(db, broker, cfg.Auth.JWTSecret, cfg.Auth.PasswordPepper, cfg.Auth.BcryptCost)
	tagService := tagservice.NewTagService(db)
	blogService := blogservice.NewBlogService(db, cache, userService, tagService)

	app := &application{
		config:         cfg,
		logger:         logger,
		userService:    userService,
		tagService:     tagService,
		blogService:    blogService,
		commentService: commentservice.NewCommentService(db, userService, blogService),
		likeService:    likeservice.NewLikeService(db, userService, blogService),
		projectService: projectservice.NewProjectService(db, userService),
		eventService:   eventservice.NewEventService(db, userService),
		broker:         broker,
		mailService:    mailservice.NewMailService(broker, cfg.Mail.Host, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Sender, cfg.Mail.Port, logger),
	}

	// Initialize the consumer
	go app.mailService.SendWelcomeEmail()

	// Start the HTTP server
	err = app.serve(cfg.Port)
	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
