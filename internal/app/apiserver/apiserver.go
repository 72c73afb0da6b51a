package apiserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-redis/redis"
	"github.com/katelinlis/FriendState/internal/app/friendstate"
	"github.com/katelinlis/FriendState/internal/app/store"
	"github.com/katelinlis/FriendState/internal/app/store/memstore"
	"github.com/katelinlis/FriendState/internal/app/store/redisstore"
	"github.com/katelinlis/FriendState/internal/app/store/sqlstore"
	"github.com/sirupsen/logrus"
)

//Start ...
func Start(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	st, closeStore, err := newStore(config)
	if err != nil {
		return err
	}
	defer closeStore()

	var notifier friendstate.Notifier = friendstate.LogNotifier{Logger: logger}
	if config.NotificationURL != "" {
		notifier = friendstate.NewHTTPNotifier(config.NotificationURL)
	}

	srv := newServer(st, config, logger, notifier)

	logger.WithFields(logrus.Fields{
		"bind_addr": config.BindAddr,
		"store":     config.Store,
	}).Info("Start webserver")

	return http.ListenAndServe(config.BindAddr, srv)
}

func newStore(config *Config) (store.Store, func(), error) {
	switch config.Store {
	case "", "memory":
		return memstore.New(), func() {}, nil
	case "postgres":
		db, err := newDB(config.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return sqlstore.New(db), func() { db.Close() }, nil
	case "redis":
		client, err := newRedis(config.Redis)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.New(client), func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", config.Store)
	}
}

func newDB(DatabaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := sqlstore.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func newRedis(config Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.Addr, err)
	}

	return client, nil
}
