package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plusone/internal/chain"
	"plusone/internal/config"
	"plusone/internal/core"
	"plusone/internal/db"
	"plusone/internal/http/handler"
	"plusone/internal/http/handler/middleware"
	"plusone/internal/http/payload"
	"plusone/internal/http/server"
	"plusone/internal/identity"
	"plusone/internal/metrics"
	"plusone/internal/repository"
	"plusone/pkg/log"
	"plusone/pkg/token"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("plusone", zapcore.InfoLevel)

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

	// session token service
	tokenService := token.NewService([]byte(config.JWTSecret))

	// repositories
	profileRepo := repository.NewProfileRepository(dbConn)
	transactionRepo := repository.NewTransactionRepository(dbConn)

	err = profileRepo.MigrateTables(
		&repository.Profile{},
		&repository.Transaction{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// identity/key-custody provider
	provider := identity.NewProvider(
		&http.Client{Timeout: 15 * time.Second},
		config.IdentityURL,
		config.IdentityAPIKey)
	if err := provider.Init(context.Background()); err != nil {
		// the provider may come up later, Login stays gated until it does
		logger.Errorw("identity provider not ready yet", "error", err)
	}
	defer provider.Dispose()

	client, err := ethclient.Dial(config.ChainRPCURL)
	if err != nil {
		logger.Errorw("chain rpc connection failed", "error", err)
		return err
	}

	balanceReader := chain.NewReader(client)

	mtr := metrics.New("plusone")

	// wallet core
	wallet := core.NewWallet(
		logger,
		profileRepo,
		transactionRepo,
		tokenService,
		provider,
		balanceReader,
		mtr)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		wallet)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewMetricsMiddleware(mtr).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, walletHlr.HandleRegister)
	mux.HandleFunc(handler.Logout, walletHlr.HandleLogout)
	mux.HandleFunc(handler.GetProfile, walletHlr.HandleGetProfile)
	mux.HandleFunc(handler.GetDashboard, walletHlr.HandleGetDashboard)
	mux.HandleFunc(handler.UpdateBalance, walletHlr.HandleUpdateBalance)
	mux.HandleFunc(handler.GetTransactions, walletHlr.HandleGetTransactions)
	mux.HandleFunc(handler.CreateTransaction, walletHlr.HandleCreateTransaction)
	mux.HandleFunc(handler.SettleTransaction, walletHlr.HandleSettleTransaction)
	mux.HandleFunc(handler.ResolveReferral, walletHlr.HandleResolveReferral)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

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
