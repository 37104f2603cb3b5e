// Command seed provisions the forum schema and fills it with demo data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"questionsdb/internal/config"
	"questionsdb/internal/database"
	"questionsdb/internal/observability"
	"questionsdb/internal/repository"
	"questionsdb/internal/seed"
)

func main() {
	fixture := flag.Bool("fixture", false, "Insert the small deterministic fixture instead of random data")
	numUsers := flag.Int("users", 20, "Number of random users to create")
	numQuestions := flag.Int("questions", 50, "Number of random questions to create")
	maxReplies := flag.Int("replies", 4, "Maximum replies per random question")
	shouldClean := flag.Bool("clean", true, "Clear all forum tables before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	observability.Configure(cfg.LogLevel, cfg.LogFormat, cfg.RepoLogging)

	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:  "questionsdb-seed",
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.TracingOTLPEndpoint,
		SamplerRatio: cfg.TracingSamplerRatio,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(ctx)
	}()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := database.ApplySchema(ctx, db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	s := seed.NewSeeder(db)
	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if *fixture {
		data, err := s.Fixture(ctx)
		if err != nil {
			log.Fatalf("Fixture seeding failed: %v", err)
		}
		log.Printf("Fixture: %d users, %d questions, %d replies",
			len(data.Users), len(data.Questions), len(data.Replies))
	} else {
		if *randSeed == 0 {
			*randSeed = time.Now().UnixNano()
		}
		counts, err := s.Random(ctx, seed.Options{
			NumUsers:     *numUsers,
			NumQuestions: *numQuestions,
			MaxReplies:   *maxReplies,
			Seed:         *randSeed,
		})
		if err != nil {
			log.Fatalf("Random seeding failed: %v", err)
		}
		log.Printf("Random (seed %d): %d users, %d questions, %d replies, %d follows, %d likes",
			*randSeed, counts.Users, counts.Questions, counts.Replies, counts.Follows, counts.Likes)
	}

	store := repository.NewStore(db)
	top, err := store.Questions.MostLiked(ctx, 3)
	if err != nil {
		log.Fatalf("Failed to read back most liked questions: %v", err)
	}
	for i, q := range top {
		likes, err := store.Questions.NumLikes(ctx, &q)
		if err != nil {
			log.Fatalf("Failed to count likes for question %d: %v", q.ID, err)
		}
		log.Printf("#%d %q (%d likes)", i+1, q.Title, likes)
	}
}
