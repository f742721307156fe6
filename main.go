package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/config"
	"app/database"
	"app/generator"
	"app/models"
	"app/routes"
)

var mode = flag.String("mode", "serve", "run mode: serve | generate | seed")

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	flag.Parse()

	config.AppConfig = config.Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		DataFile:     envOr("DATA_FILE", "data/inventory_history.json"),
	}

	switch *mode {
	case "generate":
		runGenerate(false)
	case "seed":
		runGenerate(true)
	case "serve":
		runServer()
	default:
		log.Fatalf("unknown mode %q (want serve, generate or seed)", *mode)
	}
}

// runGenerate builds the synthetic dataset, writes the JSON export, and
// optionally seeds it into Postgres.
func runGenerate(seedDB bool) {
	profiles := generator.DefaultProfiles()
	if path := os.Getenv("PROFILES_FILE"); path != "" {
		var err error
		profiles, err = generator.LoadProfiles(path)
		if err != nil {
			log.Fatalf("Failed to load profiles: %v", err)
		}
	}

	cfg := generator.DefaultConfig()
	if v := os.Getenv("GEN_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid GEN_SEED %q: %v", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("GEN_START"); v != "" {
		cfg.Start = mustParseDate("GEN_START", v)
	}
	if v := os.Getenv("GEN_END"); v != "" {
		cfg.End = mustParseDate("GEN_END", v)
	}

	dataset, err := generator.BuildDataset(profiles, cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := generator.WriteDataset(dataset, config.AppConfig.DataFile); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	totalRecords := 0
	for _, entry := range dataset {
		totalRecords += len(entry.DailyData)
	}
	log.Printf("Generated data for %d SKUs", len(dataset))
	log.Printf("Date range: %s - %s", cfg.Start.Format("2006-01-02"), cfg.End.Format("2006-01-02"))
	log.Printf("Total daily records: %d", totalRecords)
	log.Printf("Output: %s", config.AppConfig.DataFile)

	if seedDB {
		seedDatabase(dataset)
	}
}

func seedDatabase(dataset models.Dataset) {
	if config.AppConfig.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	database.Connect(config.AppConfig.DatabaseURL)
	defer database.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	if err := database.SaveDataset(ctx, dataset); err != nil {
		log.Fatalf("Failed to seed dataset: %v", err)
	}
	log.Printf("All %d SKUs seeded successfully", len(dataset))
}

func runServer() {
	if config.AppConfig.DatabaseURL != "" {
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()
	} else {
		log.Printf("DATABASE_URL not set, serving from %s", config.AppConfig.DataFile)
	}

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	port := envOr("PORT", "3000")
	log.Fatal(app.Listen(":" + port))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustParseDate(name, v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", name, v, err)
	}
	return t
}
