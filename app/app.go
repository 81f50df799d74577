package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	notificationgrpc "notification-service/ddd/adapter/grpc"
	notificationhttp "notification-service/ddd/adapter/http"
	notificationapp "notification-service/ddd/application/app"
	"notification-service/ddd/infrastructure/redis/persistence"
	"notification-service/pkg/config"
	"notification-service/pkg/grpcutil"
	"notification-service/pkg/logger"
	"notification-service/pkg/manager"
	"notification-service/pkg/middleware"
	"notification-service/pkg/redisclient"
	"notification-service/pkg/restapi"
	"notification-service/pkg/sse"
	notificationpb "notification-service/proto/notification"
)

// Run is the entrypoint of notification-service.
func Run() {
	fmt.Println("[STARTUP] Starting notification service...")

	cfgPath := resolveConfigPath()
	fmt.Println("[STARTUP] Loading config file...")

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	config.SetGlobalConfig(cfg)
	fmt.Printf("[STARTUP] Config file loaded: %s\n", cfgPath)

	fmt.Println("[STARTUP] Initializing logger...")
	logService := logger.NewLogger(cfg)
	logger.SetGlobalLogger(logService)
	logger.Infof("Notification service starting version=%s", "1.0.0")

	// Redis is both the notification store and the channel bus; without it
	// the service cannot do anything useful, so startup fails hard.
	logger.Infof("Initializing Redis client...")
	redisCli, err := redisclient.New(cfg.Redis)
	if err != nil {
		logger.Fatal(fmt.Sprintf("Failed to initialize redis error=%v", err))
	}
	defer func() {
		logger.Infof("Closing Redis client...")
		_ = redisCli.Close()
	}()
	logger.Infof("Redis connected address=%s", cfg.Redis.GetRedisAddr())

	// Wire the pipeline: repository + publisher over redis, in-memory hub
	// for connected SSE clients, and the application service on top.
	repo := persistence.NewNotificationRepository(redisCli.Raw())
	publisher := persistence.NewNotificationPublisher(redisCli.Raw())
	notifApp := notificationapp.NewNotificationApp(repo, publisher)
	hub := sse.NewHub()

	// Fan-out bridge: store channels -> hub rooms. Runs until shutdown,
	// resubscribing with bounded backoff after connection errors.
	bridgeCtx, stopBridge := context.WithCancel(context.Background())
	defer stopBridge()
	bridge := sse.NewBridge(redisCli.Raw(), hub, cfg.Bridge)
	go bridge.Run(bridgeCtx)

	// Create Gin engine and common middlewares.
	logger.Infof("Creating HTTP routes...")
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestContextMiddleware(),
		middleware.RequestLogMiddleware(),
	)

	// Health check endpoint including a store ping.
	healthcheck := redisCli.Healthcheck()
	router.GET("/health", func(c *gin.Context) {
		if err := healthcheck(c.Request.Context()); err != nil {
			restapi.FailedWithStatus(c, err, http.StatusServiceUnavailable)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   "notification-service",
			"timestamp": time.Now().Unix(),
		})
	})

	// Register all controllers via shared manager package.
	logger.Infof("Registering routes...")
	manager.RegisterControllerPlugin(&notificationhttp.NotificationControllerPlugin{
		App: notifApp,
		Hub: hub,
	})
	manager.RegisterAllRoutes(router)
	logger.Infof("Routes registered")

	// Start gRPC server (for inter-service notifications).
	var (
		grpcServer   *grpc.Server
		grpcListener net.Listener
		grpcAddr     string
	)

	if cfg.GRPC.Port > 0 {
		grpcHost := cfg.Server.Host
		if grpcHost == "" {
			grpcHost = "0.0.0.0"
		}
		grpcAddr = fmt.Sprintf("%s:%d", grpcHost, cfg.GRPC.Port)

		logger.Infof("Starting notification gRPC server address=%s", grpcAddr)

		grpcListener, err = net.Listen(cfg.GRPC.Network, grpcAddr)
		if err != nil {
			logger.Fatal(fmt.Sprintf("Failed to listen on gRPC port address=%s error=%v", grpcAddr, err))
		}

		grpcOptions := []grpc.ServerOption{
			grpc.ChainUnaryInterceptor(
				grpcutil.UnaryServerRequestIDInterceptor,
				grpcutil.UnaryServerTimeoutInterceptor(cfg.GRPC.Timeout),
			),
			grpc.MaxRecvMsgSize(cfg.GRPC.MaxRecvMsgSize),
			grpc.MaxSendMsgSize(cfg.GRPC.MaxSendMsgSize),
		}
		if cfg.GRPC.NumStreamWorkers > 0 {
			grpcOptions = append(grpcOptions, grpc.NumStreamWorkers(uint32(cfg.GRPC.NumStreamWorkers)))
		}
		grpcServer = grpc.NewServer(grpcOptions...)
		notificationpb.RegisterNotificationServiceServer(grpcServer, notificationgrpc.NewNotificationGrpcServer(notifApp))

		go func() {
			if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				logger.Errorf("Notification gRPC server exited unexpectedly error=%v", err)
			}
		}()

		logger.Infof("Notification gRPC server started address=%s", grpcAddr)
	} else {
		logger.Warnf("gRPC port is not configured, skipping notification gRPC server startup")
	}

	// Start HTTP server with graceful shutdown.
	port := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("HTTP server starting port=%s service=%s", port, "notification-service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(fmt.Sprintf("Failed to start HTTP server error=%v", err))
		}
	}()

	logger.Infof("HTTP server started port=%s health_url=%s", port, fmt.Sprintf("http://localhost%s/health", port))

	// Wait for termination signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Received shutdown signal, shutting down server...")

	stopBridge()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if grpcServer != nil {
		logger.Infof("Stopping notification gRPC server address=%s", grpcAddr)
		grpcServer.GracefulStop()
	}
	if grpcListener != nil {
		_ = grpcListener.Close()
	}

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("Server forced to close error=%v", err))
	}

	logger.Infof("Server exited safely")

	if logService != nil {
		logger.Infof("Closing logger...")
		logService.Close()
	}
}

// resolveConfigPath determines which config file to use.
func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	if env := os.Getenv("CONFIG_ENV"); env != "" {
		return fmt.Sprintf("configs/config.%s.yaml", env)
	}
	return "configs/config.dev.yaml"
}
