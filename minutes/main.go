package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/routes"
	"minutes/minutes/services/ai"
	"minutes/minutes/services/chatcontext"
	"minutes/minutes/services/recording"
	"minutes/minutes/sources/psql"
	"minutes/minutes/sources/psql/dao"
	"minutes/minutes/sources/storage"
	"minutes/minutes/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	userDAO := dao.NewUserDAO(db.DB)
	workspaceDAO := dao.NewWorkspaceDAO(db.DB)
	meetingDAO := dao.NewMeetingDAO(db.DB)
	transcriptDAO := dao.NewTranscriptDAO(db.DB)
	summaryDAO := dao.NewSummaryDAO(db.DB)
	actionItemDAO := dao.NewActionItemDAO(db.DB)
	chatDAO := dao.NewChatMessageDAO(db.DB)

	aiClient := ai.NewClient(cfg)

	// Audio archiving is optional; without MinIO recordings are transcribed
	// and discarded, and the audio download endpoint reports NotFound.
	var archive recording.AudioArchive
	var audioReader controllers.AudioReader
	if cfg.MinIOEndpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		archive = minioClient
		audioReader = minioClient
	}

	authCtrl := controllers.NewAuthController(userDAO, cfg)
	userCtrl := controllers.NewUserController(userDAO)
	healthCtrl := controllers.NewHealthController()
	meetingsCtrl := controllers.NewMeetingsController(meetingDAO, transcriptDAO, summaryDAO, actionItemDAO, aiClient, audioReader)
	actionItemsCtrl := controllers.NewActionItemsController(actionItemDAO)
	workspacesCtrl := controllers.NewWorkspacesController(workspaceDAO, meetingDAO, actionItemDAO)

	assembler := chatcontext.NewAssembler(dao.NewCorpus(db.DB))
	chatCtrl := controllers.NewChatController(chatDAO, assembler, aiClient)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/auth", routes.AuthRoutes(authCtrl))
	r.Mount("/users", routes.UserRoutes(userCtrl, cfg))
	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Route("/api", func(api chi.Router) {
		api.Mount("/meetings", routes.MeetingRoutes(meetingsCtrl, cfg))
		api.Mount("/workspaces", routes.WorkspaceRoutes(workspacesCtrl, meetingsCtrl, actionItemsCtrl, chatCtrl, cfg))
		api.Mount("/action-items", routes.ActionItemRoutes(actionItemsCtrl, cfg))
		api.Mount("/chat", routes.ChatRoutes(chatCtrl, cfg))
	})
	r.Mount("/ws", routes.RecordingRoutes(routes.RecordingDeps{
		Meetings:    meetingsCtrl,
		Transcriber: aiClient,
		Labeler:     ai.PrefixLabeler{},
		Archive:     archive,
	}, cfg))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
