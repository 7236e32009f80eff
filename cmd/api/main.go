package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/infrastructure/database/postgres"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/evolution/evolutionclient"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx"
	"github.com/sectorres/vendas-insights-wa/infrastructure/integrator/shx/shxclient"
	"github.com/sectorres/vendas-insights-wa/infrastructure/repository"
	"github.com/sectorres/vendas-insights-wa/internal/api"
	"github.com/sectorres/vendas-insights-wa/internal/config"
	"github.com/sectorres/vendas-insights-wa/internal/scheduler"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/authenticating"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/insighting"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/notifying"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/scheduling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logrus.Warnf("Fuso horário inválido: %s, usando o fuso local", cfg.App.Timezone)
		location = time.Local
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	scheduleRepo := repository.NewScheduleRepository(pgConn)
	historyRepo := repository.NewNotificationHistoryRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	shxClient := shxclient.NewClient(cfg)
	salesFetcher := shx.New(cfg, shxClient)

	evolutionClient := evolutionclient.NewClient(cfg)
	whatsappService := evolution.New(cfg, evolutionClient)

	insightService := insighting.NewService(salesFetcher)
	scheduleService := scheduling.NewService(scheduleRepo)
	notifier := notifying.NewService(scheduleRepo, historyRepo, insightService, whatsappService, location)

	// Agendador que avalia os agendamentos a cada minuto
	dispatchService := scheduler.NewNotificationDispatchService(notifier, cfg, location)

	if err := dispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de despacho de notificações")
	} else {
		logrus.Info("Agendador de despacho de notificações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		scheduleService,
		authenticator,
		whatsappService,
		historyRepo,
		dispatchService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
