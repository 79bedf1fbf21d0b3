package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"
	"trip-emissions-service/internal/adapters/cache"
	"trip-emissions-service/internal/adapters/maps"
	"trip-emissions-service/internal/adapters/narrative"
	"trip-emissions-service/internal/api"
	"trip-emissions-service/internal/config"
	"trip-emissions-service/internal/platform/db"
	"trip-emissions-service/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Google Maps, Anthropic, Postgres, Redis)
// behind ports and starts the HTTP server. Both caches and the
// narrative generator are optional: missing configuration degrades to
// uncached lookups and placeholder narratives rather than failing.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	mapsKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if strings.TrimSpace(mapsKey) == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is required")
	}

	// Declared as the port-side interface: only assigned when Postgres
	// is configured, so a missing DATABASE_URL stays a nil cache.
	var geocodeCache maps.GeocodeCache
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := cache.InitSchema(pg); err != nil {
			log.Fatal(err)
		}
		geocodeCache = cache.NewSQLGeocodeCache(pg)
	} else {
		log.Println("DATABASE_URL not set; geocode caching disabled")
	}

	var directionsCache *cache.RedisDirectionsCache
	if redisAddr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(redisAddr) != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		directionsCache = cache.NewRedisDirectionsCache(client, 15*time.Minute)
	} else {
		log.Println("REDIS_ADDR not set; directions caching disabled")
	}

	provider, err := maps.NewGoogleMapsProvider(mapsKey, geocodeCache, directionsCache)
	if err != nil {
		log.Fatal(err)
	}

	// A missing Anthropic key is not fatal: the estimation pipeline
	// substitutes its fixed placeholder when generation is unavailable.
	var generator ports.NarrativeGenerator
	if anthropicKey := os.Getenv("ANTHROPIC_API_KEY"); strings.TrimSpace(anthropicKey) != "" {
		generator, err = narrative.NewAnthropicSummarizer(anthropicKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("ANTHROPIC_API_KEY not set; narratives will use the placeholder text")
	}

	router := api.NewRouter(provider, provider, generator)

	// Write timeout covers the slowest path: directions lookup plus
	// narrative generation, sequenced one after another.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
