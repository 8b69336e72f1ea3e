package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/buttonmen-rules/internal/config"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/game/combat/attack"
	"github.com/KirkDiggler/buttonmen-rules/internal/domain/skill"
	"github.com/KirkDiggler/buttonmen-rules/internal/events"
	"github.com/KirkDiggler/buttonmen-rules/internal/repositories/actionlog"
	"github.com/KirkDiggler/buttonmen-rules/internal/services/resolver"
)

func main() {
	attackType := flag.String("type", "", "attack type to search (default: every legal type)")
	pick := flag.Int("pick", -1, "index of the proposal to resolve")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: attack-search [-type power] [-pick 0] <scenario.json>...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, closeRepo := newActionLog(cfg)
	defer closeRepo()

	name := attack.Name(cases.Title(language.English).String(strings.TrimSpace(*attackType)))

	outputs := make([]bytes.Buffer, flag.NArg())
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for i, path := range flag.Args() {
		g.Go(func() error {
			if err := run(ctx, cfg, repo, path, name, *pick, &outputs[i]); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	err = g.Wait()

	for i := range outputs {
		if _, writeErr := outputs[i].WriteTo(os.Stdout); writeErr != nil {
			log.Printf("Failed to write output: %v", writeErr)
		}
	}
	if err != nil {
		closeRepo()
		log.Fatalf("Attack search failed: %v", err)
	}
}

// newActionLog connects to Redis when REDIS_URL is set
func newActionLog(cfg *config.Config) (actionlog.Repository, func()) {
	if cfg.Redis.URL == "" {
		return actionlog.NewInMemoryRepository(), func() {}
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	client := redis.NewClient(opts)

	// Test connection first
	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := actionlog.NewRedisRepository(&actionlog.RedisRepoConfig{
		Client: client,
		LogTTL: cfg.Redis.LogTTL,
	})
	return repo, func() {
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Failed to close Redis connection: %v", closeErr)
		}
	}
}

func run(ctx context.Context, cfg *config.Config, repo actionlog.Repository, path string, name attack.Name, pick int, out *bytes.Buffer) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	gm, err := s.game(skill.Default())
	if err != nil {
		return err
	}

	bus := events.NewBus()
	if cfg.LogEvents {
		bus.SubscribeAll(events.NewLogListener())
	}
	actionlog.NewListener(repo).Subscribe(bus)

	svc := resolver.NewService(&resolver.ServiceConfig{
		Roller:   cfg.NewRoller(),
		EventBus: bus,
		Limits:   cfg.Limits(),
	})

	fmt.Fprintf(out, "== %s (game %s, %s)\n", path, gm.ID, gm.State)

	legal, err := svc.ListLegalAttackTypes(ctx, gm)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Legal attack types: %v\n", legal)

	types := legal
	if name != "" {
		types = []attack.Name{name}
	}

	var proposals []attack.Proposal
	for _, t := range types {
		found, err := svc.FindAttacks(ctx, gm, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d proposal(s)\n", t, len(found))
		for _, p := range found {
			fmt.Fprintf(out, "  [%d] %v -> %v\n", len(proposals), p.Attackers, p.Defenders)
			proposals = append(proposals, p)
		}
	}

	if pick < 0 {
		return nil
	}
	if pick >= len(proposals) {
		return fmt.Errorf("no proposal %d (found %d)", pick, len(proposals))
	}

	record, err := svc.Resolve(ctx, gm, proposals[pick])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	fingerprint, err := record.Fingerprint()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Resolved: %s\n%s\nFingerprint: %s\n", record, data, fingerprint)

	entries, err := repo.List(ctx, gm.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Action log of %s: %d entries\n", gm.ID, len(entries))
	return nil
}
