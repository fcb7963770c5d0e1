package main

import (
	"context"
	"log"
	"time"

	"bookbootstrap/internal/config"
	"bookbootstrap/internal/ingest"
	"bookbootstrap/internal/platform/oreilly"
	"bookbootstrap/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	dbCfg, err := config.LoadDB()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	pool := mustOpenDB(dbCfg.DSN())

	service := ingest.NewService(
		oreilly.NewClient(),
		store.NewSchemaPG(pool),
		store.NewCatalogPG(pool),
		ingest.Config{
			Topic:  config.SearchTopic,
			Limit:  config.SearchLimit,
			Fields: config.SearchFields,
		},
	)

	sum, err := service.Run(context.Background())
	if err != nil {
		pool.Close()
		log.Fatalf("bootstrap failed: %v", err)
	}
	pool.Close()

	log.Printf("bootstrap complete: %d works fetched, %d authors, %d books, %d links",
		sum.WorksFetched, sum.AuthorsInserted, sum.BooksInserted, sum.LinksInserted)
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", config.RedactDSN(dsn), err)
	}
	log.Println("database connection OK")
	return pool
}
