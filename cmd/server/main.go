package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "autodrill/internal/adapter/http"
	metricsinmem "autodrill/internal/adapter/metrics/inmemory"
	"autodrill/internal/adapter/notify"
	gormrepo "autodrill/internal/adapter/repo/gorm"
	"autodrill/internal/adapter/repo/memory"
	sqliterepo "autodrill/internal/adapter/repo/sqlite"
	worldruntime "autodrill/internal/adapter/world/runtime"
	"autodrill/internal/app/colony"
	"autodrill/internal/app/ports"
	"autodrill/internal/domain/drill"
	"autodrill/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app/server"
)

type repos struct {
	states   ports.DrillStateRepository
	deposits ports.DepositCellRepository
	tx       ports.TxManager
	backend  string
	closer   func() error
}

func main() {
	r := mustBuildRepos()
	defer func() {
		if r.closer != nil {
			_ = r.closer()
		}
	}()

	mapCfg := buildWorldConfigFromEnv()
	worldMap := worldruntime.NewProvider(mapCfg)
	kpiRecorder := metricsinmem.NewRecorder()
	hub := notify.NewHub()

	col := colony.New(colony.Deps{
		ColonyID:    envOr("AUTODRILL_COLONY_ID", "default"),
		Map:         worldMap,
		Kinds:       buildKindsFromEnv(),
		Resources:   mapCfg.Kinds(),
		StateRepo:   r.states,
		DepositRepo: r.deposits,
		TxManager:   r.tx,
		Metrics:     kpiRecorder,
		Notifier:    notify.Fanout{notify.NewLogSink(os.Stderr), hub},
		Seed:        int64(intEnv("AUTODRILL_SEED", 1)),
		YieldFactor: floatEnv("YIELD_FACTOR", 1),
		DevMode:     boolEnv("AUTODRILL_DEV_MODE", false),
	})
	for _, w := range col.ValidateKinds() {
		log.Printf("drill config warning: %s", w)
	}
	if boolEnv("AUTODRILL_LOAD_ON_START", false) {
		if err := col.Load(context.Background()); err != nil {
			log.Fatalf("load colony: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx)
	if wsAddr := strings.TrimSpace(envOr("WS_ADDR", ":8081")); wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		go func() {
			log.Printf("notification websocket listening on %s/ws", wsAddr)
			if err := http.ListenAndServe(wsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("websocket server stopped: %v", err)
			}
		}()
	}

	interval := time.Duration(intEnv("TICK_INTERVAL_MS", 1000)) * time.Millisecond
	go runTickLoop(ctx, col, interval, intEnv("TICKS_PER_STEP", world.TicksPerSecond))

	h := httpadapter.Handler{Colony: col, KPI: kpiRecorder}
	addr := envOr("HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("autodrill server listening on %s (store=%s, dev_mode=%v)", addr, r.backend, col.DevMode())
	s.Spin()
}

func mustBuildRepos() repos {
	if dsn := strings.TrimSpace(os.Getenv("AUTODRILL_DB_DSN")); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		dir := envOr("AUTODRILL_MIGRATIONS_DIR", "db/migrations")
		if err := gormrepo.ApplyMigrations(context.Background(), db, os.DirFS(dir)); err != nil {
			log.Fatalf("apply migrations from %s: %v", dir, err)
		}
		return repos{
			states:   gormrepo.NewDrillStateRepo(db),
			deposits: gormrepo.NewDepositCellRepo(db),
			tx:       gormrepo.NewTxManager(db),
			backend:  "postgres",
		}
	}
	if path := strings.TrimSpace(os.Getenv("AUTODRILL_SQLITE_PATH")); path != "" {
		db, err := sqliterepo.Open(path)
		if err != nil {
			log.Fatalf("open sqlite %s: %v", path, err)
		}
		return sqliteRepos(db)
	}
	store := memory.NewStore()
	return repos{
		states:   memory.NewDrillStateRepo(store),
		deposits: memory.NewDepositCellRepo(store),
		tx:       memory.NewTxManager(store),
		backend:  "memory",
	}
}

func sqliteRepos(db *sql.DB) repos {
	return repos{
		states:   sqliterepo.NewDrillStateRepo(db),
		deposits: sqliterepo.NewDepositCellRepo(db),
		tx:       sqliterepo.NewTxManager(db),
		backend:  "sqlite",
		closer:   db.Close,
	}
}

func buildWorldConfigFromEnv() worldruntime.Config {
	cfg := worldruntime.DefaultConfig()
	cfg.Width = intEnv("MAP_WIDTH", cfg.Width)
	cfg.Height = intEnv("MAP_HEIGHT", cfg.Height)
	cfg.Seed = intEnv("MAP_SEED", cfg.Seed)
	cfg.StackLimit = intEnv("MAP_STACK_LIMIT", cfg.StackLimit)
	cfg.PoweredByDefault = boolEnv("MAP_POWERED_BY_DEFAULT", cfg.PoweredByDefault)
	switch base := strings.TrimSpace(os.Getenv("MAP_BASE_RESOURCE")); base {
	case "":
	case "none":
		cfg.BaseResource = world.ResourceKind{}
	default:
		if k, ok := cfg.Kinds()[base]; ok {
			cfg.BaseResource = k
		} else {
			log.Printf("unknown MAP_BASE_RESOURCE %q, keeping %s", base, cfg.BaseResource.DefName)
		}
	}
	return cfg
}

// buildKindsFromEnv registers the standard deep drill and a rare-ticking
// variant that saves under its own key prefix.
func buildKindsFromEnv() map[string]drill.Config {
	cfg := drill.DefaultConfig()
	cfg.ConsumeDeepResources = boolEnv("DRILL_CONSUME", cfg.ConsumeDeepResources)
	cfg.ResourceConsumptionMultiplier = floatEnv("DRILL_CONSUMPTION_MULTIPLIER", cfg.ResourceConsumptionMultiplier)
	cfg.ResourceOutputMultiplier = floatEnv("DRILL_OUTPUT_MULTIPLIER", cfg.ResourceOutputMultiplier)
	cfg.StoneChunkQuantity = rangeEnv("DRILL_CHUNKS", cfg.StoneChunkQuantity)
	cfg.SpawnIntervalRange = rangeEnv("DRILL_INTERVAL", cfg.SpawnIntervalRange)
	cfg.ScanRadius = intEnv("DRILL_SCAN_RADIUS", cfg.ScanRadius)

	rare := cfg
	rare.TickerType = drill.TickerRare
	rare.SaveKeysPrefix = "rare"
	return map[string]drill.Config{
		"deep":      cfg,
		"deep_rare": rare,
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// rangeEnv parses "min-max" or a single number.
func rangeEnv(key string, fallback drill.IntRange) drill.IntRange {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parts := strings.SplitN(raw, "-", 2)
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fallback
	}
	if len(parts) == 1 {
		return drill.IntRange{Min: lo, Max: lo}
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fallback
	}
	return drill.IntRange{Min: lo, Max: hi}
}
