package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"wildwaste/internal/config"
	"wildwaste/internal/core"
	"wildwaste/internal/db"
	"wildwaste/internal/http/handler"
	"wildwaste/internal/http/handler/middleware"
	"wildwaste/internal/http/payload"
	"wildwaste/internal/http/server"
	"wildwaste/internal/repository"
	"wildwaste/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("wildwaste", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewWasteRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// service
	waste := core.NewWildWaste(logger, repo)

	// handler
	wasteHlr := handler.NewWasteHandler(
		logger,
		payload.DecodeValidator{},
		waste)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Index, wasteHlr.HandleIndex)
	mux.HandleFunc(handler.Register, wasteHlr.HandleRegister)
	mux.HandleFunc(handler.Login, wasteHlr.HandleLogin)
	mux.HandleFunc(handler.SubmitReport, wasteHlr.HandleSubmitReport)
	mux.HandleFunc(handler.GetReports, wasteHlr.HandleGetReports)
	mux.HandleFunc(handler.GetUserReports, wasteHlr.HandleGetUserReports)
	mux.HandleFunc(handler.DeleteReport, wasteHlr.HandleDeleteReport)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
