package main

import (
	"context"
	"log"
	"os"
	"time"

	"texpress/internal/auth"
	"texpress/internal/cache"
	"texpress/internal/controllers/http"
	"texpress/internal/domain"
	"texpress/internal/infra"
	mmysql "texpress/internal/infra/mysql"
	"texpress/internal/infra/rabbitmq"
	mysqlrepo "texpress/internal/repository/mysql"
	"texpress/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	commandes := mysqlrepo.NewCommandeRepository(db)
	paiements := mysqlrepo.NewPaiementRepository(db)
	paniers := mysqlrepo.NewPanierRepository(db)
	produits := mysqlrepo.NewProduitRepository(db)
	categories := mysqlrepo.NewCategorieRepository(db)
	articles := mysqlrepo.NewArticleRepository(db)
	clients := mysqlrepo.NewClientRepository(db)
	adresses := mysqlrepo.NewAdresseRepository(db)
	favoris := mysqlrepo.NewFavoriRepository(db)
	retours := mysqlrepo.NewRetourRepository(db)
	heroes := mysqlrepo.NewHeroRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "texpress.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}

	providerTimeout := 5 * time.Second
	providers := map[domain.PaiementMode]infra.PaymentProviderInterface{
		domain.ModeWave: infra.NewWaveClient(
			os.Getenv("WAVE_API_URL"), os.Getenv("WAVE_API_KEY"), providerTimeout),
		domain.ModeOrangeMoney: infra.NewOrangeMoneyClient(
			os.Getenv("OM_API_URL"), os.Getenv("OM_MERCHANT_ID"), os.Getenv("OM_API_KEY"), providerTimeout),
	}

	tokens := auth.NewTokenStore(redisClient, 24*time.Hour)
	heroCache := cache.NewHeroCache(redisClient, cache.DefaultHeroTTL, nil)

	accountSvc := services.NewAccountService(clients, adresses, favoris, retours, commandes, tokens, publisher)
	checkoutSvc := services.NewCheckoutService(commandes, paniers, adresses, publisher)
	paymentSvc := services.NewPaymentService(commandes, paiements, paniers, providers, publisher,
		os.Getenv("PAYMENT_CONFIRM_URL"))
	cartSvc := services.NewCartService(paniers, produits)
	cartSvc.SetRedisClient(redisClient)
	catalogSvc := services.NewCatalogService(produits, categories, articles)
	catalogSvc.SetRedisClient(redisClient)
	heroSvc := services.NewHeroService(heroes, heroCache)
	homeSvc := services.NewHomeService(heroSvc, catalogSvc)

	go func() {
		// Warm the banner cache so the first homepage hit after a deploy
		// doesn't pay the cold read.
		time.Sleep(5 * time.Second)
		if _, err := heroSvc.ListActive(context.Background()); err != nil {
			log.Printf("hero cache warmup failed: %v", err)
		}
	}()

	handler := http.NewHandler(accountSvc, checkoutSvc, paymentSvc, cartSvc, catalogSvc, heroSvc, homeSvc, tokens)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting texpress service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
