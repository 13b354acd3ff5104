package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"socialsh-front/internal/app"
	"socialsh-front/internal/cart"
	handlersAccount "socialsh-front/internal/handlers/account"
	handlersAdmin "socialsh-front/internal/handlers/admin"
	handlersAuth "socialsh-front/internal/handlers/auth"
	handlersCart "socialsh-front/internal/handlers/cart"
	handlersCheckout "socialsh-front/internal/handlers/checkout"
	handlersGallery "socialsh-front/internal/handlers/gallery"
	handlersPages "socialsh-front/internal/handlers/pages"
	handlersShop "socialsh-front/internal/handlers/shop"
	"socialsh-front/internal/kafka"
	"socialsh-front/internal/middleware"
	"socialsh-front/internal/session"
	"socialsh-front/internal/shopapi"
	"socialsh-front/internal/storage"

	_ "github.com/lib/pq"
)

const (
	cfgPath = "config/config.yaml"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init redis - сессии живут тут всегда, независимо от хранилища корзин
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.RedisAddr,
		Password: "",
		DB:       0, // стандартная БД
	})

	// init storage для корзин.
	// Недоступное хранилище не валит сервис: корзина fail-soft, при сбое
	// на старте переключаемся на память и магазин продолжает торговать.
	var cartStorage storage.Storage
	switch c.Storage {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
		)

		db, err := sql.Open("postgres", dsn)
		if err != nil {
			logger.Fatalf("error to database start: %v", err)
		}

		db.SetMaxOpenConns(c.MaxOpenConns)
		if err := db.Ping(); err != nil {
			logger.Warnf("failed to ping postgres, falling back to in-memory carts: %v", err)
			cartStorage = storage.NewMemoryStorage()
		} else {
			cartStorage = storage.NewPostgresStorage(db, logger)
		}
	default:
		cartStorage = storage.NewRedisStorage(redisClient, logger)
	}

	// init kafka producer для событий поведения
	producer := kafka.NewProducer(c.CfgKafka.BrokerList(), c.CfgKafka.Topic, logger)
	defer producer.Close()

	// init вспомогательные сервисы
	notifier := cart.NewNotifier()
	notifier.Subscribe(middleware.ObserveCartChange)

	carts := cart.NewStores(cartStorage, notifier, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.SessionDuration)
	shopClient := shopapi.NewClient(c.CfgShopAPI.BaseURL, c.CfgShopAPI.Timeout, logger)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// init handlers
	cartHandlers := handlersCart.NewCartHandler(logger, carts, sessionRepository, producer)
	checkoutHandlers := handlersCheckout.NewCheckoutHandler(logger, carts, sessionRepository, shopClient, producer)
	shopHandlers := handlersShop.NewShopHandler(logger, shopClient, sessionRepository, producer)
	galleryHandlers := handlersGallery.NewGalleryHandler(logger, shopClient)
	pageHandlers := handlersPages.NewPageHandler(logger, shopClient)
	authHandlers := handlersAuth.NewAuthHandler(logger, shopClient, sessionRepository)
	accountHandlers := handlersAccount.NewAccountHandler(logger, shopClient)
	adminHandlers := handlersAdmin.NewAdminHandler(logger, shopClient)

	// Ручки НЕ требующие авторизации
	noAuthRouter := r.PathPrefix("/api").Subrouter()

	noAuthRouter.HandleFunc("/products", shopHandlers.GetProducts).Methods("GET")
	noAuthRouter.HandleFunc("/products/search", shopHandlers.Search).Methods("GET")
	noAuthRouter.HandleFunc("/products/{slug}", shopHandlers.GetProduct).Methods("GET")

	noAuthRouter.HandleFunc("/gallery", galleryHandlers.GetItems).Methods("GET")
	noAuthRouter.HandleFunc("/pages/{slug}", pageHandlers.GetPage).Methods("GET")

	noAuthRouter.HandleFunc("/cart", cartHandlers.GetCart).Methods("GET")
	noAuthRouter.HandleFunc("/cart", cartHandlers.Clear).Methods("DELETE")
	noAuthRouter.HandleFunc("/cart/count", cartHandlers.GetCount).Methods("GET")
	noAuthRouter.HandleFunc("/cart/items", cartHandlers.AddItem).Methods("POST")
	noAuthRouter.HandleFunc("/cart/items/{productID}", cartHandlers.UpdateItem).Methods("PATCH")
	noAuthRouter.HandleFunc("/cart/items/{productID}", cartHandlers.DeleteItem).Methods("DELETE")

	// Заказ доступен и анонимному покупателю
	noAuthRouter.HandleFunc("/checkout", checkoutHandlers.Submit).Methods("POST")

	noAuthRouter.HandleFunc("/auth/sign-in", authHandlers.SignIn).Methods("POST")
	noAuthRouter.HandleFunc("/auth/sign-up", authHandlers.SignUp).Methods("POST")

	// Ручки требующие авторизации
	authRouter := r.PathPrefix("/api").Subrouter()
	authRouter.Use(middleware.Auth(sessionRepository, shopClient, logger))

	authRouter.HandleFunc("/auth/logout", authHandlers.Logout).Methods("POST")
	authRouter.HandleFunc("/auth/is-admin", authHandlers.IsAdmin).Methods("GET")

	authRouter.HandleFunc("/account/me", accountHandlers.Me).Methods("GET")
	authRouter.HandleFunc("/account/orders", accountHandlers.Orders).Methods("GET")
	authRouter.HandleFunc("/account/profile", accountHandlers.UpdateProfile).Methods("PATCH")

	// Админка: авторизация + проверка прав через внешнее API
	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(middleware.Auth(sessionRepository, shopClient, logger))
	adminRouter.Use(middleware.AdminOnly(shopClient, logger))

	adminRouter.HandleFunc("/products", adminHandlers.ListProducts).Methods("GET")
	adminRouter.HandleFunc("/products", adminHandlers.CreateProduct).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", adminHandlers.GetProduct).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", adminHandlers.UpdateProduct).Methods("PATCH")
	adminRouter.HandleFunc("/products/{id}", adminHandlers.DeleteProduct).Methods("DELETE")

	adminRouter.HandleFunc("/gallery", adminHandlers.ListGallery).Methods("GET")
	adminRouter.HandleFunc("/gallery", adminHandlers.CreateGalleryItem).Methods("POST")
	adminRouter.HandleFunc("/gallery/{id}", adminHandlers.UpdateGalleryItem).Methods("PATCH")
	adminRouter.HandleFunc("/gallery/{id}", adminHandlers.DeleteGalleryItem).Methods("DELETE")

	adminRouter.HandleFunc("/pages", adminHandlers.ListPages).Methods("GET")
	adminRouter.HandleFunc("/pages/{slug}", adminHandlers.UpdatePage).Methods("PATCH")

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		panic("can't start server: " + err.Error())
	}
}
