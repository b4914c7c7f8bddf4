package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/unclebandit/storefront/internal/config"
	"github.com/unclebandit/storefront/internal/controller"
	"github.com/unclebandit/storefront/internal/db"
	"github.com/unclebandit/storefront/internal/handler"
	"github.com/unclebandit/storefront/internal/metrics"
	"github.com/unclebandit/storefront/internal/queue"
	"github.com/unclebandit/storefront/internal/repository"
	"github.com/unclebandit/storefront/internal/service"
)

// App is the fully wired storefront. It owns the store and the queue connection.
type App struct {
	Store   *db.Store
	Queue   queue.Queue
	Handler http.Handler
	Logger  *slog.Logger

	memQueue *queue.InMemoryQueue
	amqp     *queue.AMQPQueue
}

// New opens and seeds the store, picks the order event queue and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	seeded, err := store.Init(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	logger.Info("database ready", "driver", cfg.Database.Driver, "seeded_products", seeded)

	app := &App{Store: store, Logger: logger}

	if cfg.Queue.URL != "" {
		app.amqp, err = queue.DialAMQP(cfg.Queue.URL, logger)
		if err != nil {
			store.Close()
			return nil, err
		}
		app.Queue = app.amqp
		logger.Info("publishing order events to broker", "topic", cfg.Queue.OrderTopic)
	} else {
		app.memQueue = queue.NewInMemoryQueue(logger)
		confirmations := &service.ConfirmationService{
			Sender: &service.LogSender{Logger: logger},
			Logger: logger,
		}
		if err := confirmations.Subscribe(app.memQueue, cfg.Queue.OrderTopic); err != nil {
			store.Close()
			return nil, err
		}
		app.Queue = app.memQueue
	}

	app.Handler = NewRouter(Routes{
		Products: &controller.ProductController{
			Catalog: &service.CatalogService{Products: repository.NewProductRepository(store.DB, store.Dialect)},
			Logger:  logger,
		},
		Orders: &controller.OrderController{
			Orders: &service.OrderService{
				Store:  store,
				Queue:  app.Queue,
				Topic:  cfg.Queue.OrderTopic,
				Logger: logger,
			},
			Logger: logger,
		},
		Pages:   &handler.PageHandler{PublicDir: cfg.PublicDir},
		Latency: metrics.NewRecorder(),
		Logger:  logger,
	})

	return app, nil
}

// Close drains in-process order events, then releases the broker and the store.
func (a *App) Close() error {
	if a.memQueue != nil {
		a.memQueue.Wait()
	}
	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			a.Logger.Warn("closing queue", "error", err)
		}
	}
	return a.Store.Close()
}
