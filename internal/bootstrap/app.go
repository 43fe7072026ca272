package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	appsvc "learn-with-jiji/internal/app"
	"learn-with-jiji/internal/cache"
	"learn-with-jiji/internal/config"
	"learn-with-jiji/internal/logging"
	postgresClient "learn-with-jiji/internal/platform/postgres"
	rabbitmqClient "learn-with-jiji/internal/platform/rabbitmq"
	redisClient "learn-with-jiji/internal/platform/redis"
	"learn-with-jiji/internal/repository"
	"learn-with-jiji/internal/worker"
)

// App holds everything built at startup. Unconfigured backends stay nil and
// the services degrade around them; a backend that is configured but
// unreachable fails startup instead.
type App struct {
	Config *config.Config
	Avail  config.Availability
	Log    *logrus.Logger

	DB        *gorm.DB // anonymous-scoped reads
	ServiceDB *gorm.DB // privileged query log writes
	Redis     *redis.Client
	MQConn    *amqp.Connection

	Search    *appsvc.SearchService
	QueryLog  *appsvc.QueryLogService
	LogWorker *worker.QueryLogWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	avail := cfg.Availability()
	log := logging.New(cfg.Log.Level, cfg.Production())

	a := &App{
		Config:    cfg,
		Avail:     avail,
		Log:       log,
		StartedAt: time.Now(),
	}

	if avail.Database {
		a.DB, err = postgresClient.New(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("database unconfigured, search degrades to empty results")
	}

	if avail.ServiceDatabase {
		a.ServiceDB, err = postgresClient.New(ctx, cfg.Database.ServiceURL)
		if err != nil {
			return nil, err
		}
	} else {
		log.Warn("privileged database unconfigured, query logging degrades to a no-op")
	}

	if avail.Cache {
		a.Redis, err = redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
	}

	if avail.Queue {
		a.MQConn, err = rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			return nil, err
		}
	}

	a.buildServices(ctx)
	return a, nil
}

func (a *App) buildServices(ctx context.Context) {
	var finder appsvc.ResourceFinder
	if a.DB != nil {
		finder = repository.NewResourceRepository(a.DB)
	}

	var searchCache appsvc.SearchCache
	if a.Redis != nil {
		searchCache = cache.NewSearchCache(a.Redis, time.Duration(a.Config.Redis.SearchTTLSeconds)*time.Second)
	}

	a.Search = appsvc.NewSearchService(
		finder,
		searchCache,
		a.Config.Storage.PublicBaseURL,
		a.Config.Database.SearchLimit,
		a.Log,
	)

	var publisher appsvc.QueryLogPublisher
	if a.MQConn != nil {
		publisher = rabbitmqClient.NewQueryLogPublisher(a.MQConn, a.Config.RabbitMQ.QueryLogQueue)
	}

	var store appsvc.QueryLogStore
	var queryRepo *repository.QueryRepository
	if a.ServiceDB != nil {
		queryRepo = repository.NewQueryRepository(a.ServiceDB)
		store = queryRepo
	}

	a.QueryLog = appsvc.NewQueryLogService(publisher, store, a.Log)

	// The consumer side of the detached write needs both the broker and the
	// privileged handle; with either missing the queue is someone else's to
	// drain (or the direct-insert fallback is in play anyway).
	if a.MQConn != nil && queryRepo != nil {
		a.LogWorker = worker.NewQueryLogWorker(a.MQConn, queryRepo, a.Config.RabbitMQ.QueryLogQueue, a.Log)
		if err := a.LogWorker.Start(ctx); err != nil {
			a.Log.WithError(err).Warn("query log worker failed to start")
			a.LogWorker = nil
		}
	}
}

func (a *App) Close() error {
	var closeErr error

	if a.QueryLog != nil {
		a.QueryLog.Wait()
	}
	if a.LogWorker != nil {
		a.LogWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	for _, db := range []*gorm.DB{a.DB, a.ServiceDB} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
