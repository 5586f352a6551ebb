// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"

    "github.com/go-redis/redis/v8"
    "github.com/gorilla/mux"
    "github.com/jmoiron/sqlx"
    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"

    "github.com/pawpals/pawpals-backend/internal/common/database"
    "github.com/pawpals/pawpals-backend/internal/common/utils"
    "github.com/pawpals/pawpals-backend/internal/config"
    "github.com/pawpals/pawpals-backend/internal/discovery"
    "github.com/pawpals/pawpals-backend/internal/ratelimit"
)

func main() {
    log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

    log.Println("========================================")
    log.Println("🐾 Starting PawPals Discovery API")
    log.Println("========================================")

    // 1. Load environment variables
    log.Println("📁 Step 1: Loading .env file...")
    if err := godotenv.Load(); err != nil {
        log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
    } else {
        log.Println("✅ .env file loaded successfully")
    }

    // 2. Load and validate configuration
    log.Println("📋 Step 2: Loading configuration...")
    cfg := config.Load()
    if err := cfg.Validate(); err != nil {
        log.Fatal("❌ Configuration validation failed:", err)
    }
    log.Println("✅ Configuration loaded and valid")

    // 3. Connect to PostgreSQL
    log.Println("🗄️  Step 3: Connecting to PostgreSQL...")
    db, err := database.NewPostgresDB(cfg.DatabaseURL)
    if err != nil {
        log.Fatal("❌ Failed to connect to PostgreSQL:", err)
    }
    defer db.Close()
    log.Println("✅ Connected to PostgreSQL successfully")

    // 4. Connect to Redis (optional unless it backs the rate limiter)
    log.Println("📮 Step 4: Connecting to Redis...")
    var redisClient *redis.Client
    if cfg.RedisURL != "" {
        redisClient, err = database.NewRedisClient(cfg.RedisURL)
        if err != nil {
            if cfg.RateLimitBackend == "redis" {
                log.Fatal("❌ Redis backs the rate limiter but is unreachable:", err)
            }
            log.Printf("⚠️  Redis connection failed: %v, continuing without Redis", err)
            redisClient = nil
        } else {
            defer redisClient.Close()
            log.Println("✅ Connected to Redis successfully")
        }
    } else {
        log.Println("⚠️  Redis URL not configured, skipping Redis connection")
    }

    // 5. Run database migrations
    log.Println("🔨 Step 5: Running database migrations...")
    if err := runMigrations(db); err != nil {
        log.Fatal("❌ Failed to run migrations:", err)
    }
    log.Println("✅ Database migrations completed")

    // 6. Load scoring lexicons
    log.Println("📖 Step 6: Loading scoring lexicons...")
    lexicon := discovery.DefaultLexicon()
    if cfg.LexiconPath != "" {
        lexicon, err = discovery.LoadLexicon(cfg.LexiconPath)
        if err != nil {
            log.Fatal("❌ Failed to load lexicon overrides:", err)
        }
        log.Printf("✅ Lexicon overrides loaded from %s", cfg.LexiconPath)
    } else {
        log.Println("✅ Using built-in lexicons")
    }

    // 7. Initialize rate limiter
    log.Println("🚦 Step 7: Initializing rate limiter...")
    var limiter ratelimit.Limiter
    switch cfg.RateLimitBackend {
    case "redis":
        limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimitWindowMinutes(), cfg.RateLimitMaxAttempts)
        log.Println("   ✅ Using Redis atomic limiter")
    default:
        limiter = ratelimit.NewAttemptLogLimiter(ratelimit.NewPostgresStore(db), cfg.RateLimitWindowMinutes(), cfg.RateLimitMaxAttempts)
        log.Println("   ✅ Using Postgres attempt-log limiter")
    }
    limitMiddleware := ratelimit.NewMiddleware(limiter)

    // 8. Initialize discovery engine
    log.Println("🔍 Step 8: Initializing discovery engine...")
    discoveryRepo := discovery.NewPostgresRepository(db)
    scorer := discovery.NewScorer(lexicon)
    discoveryService := discovery.NewService(discoveryRepo, scorer, cfg.DefaultRadiusKm, cfg.MaxMatches, cfg.SearchLimit)
    log.Println("✅ Discovery engine ready")

    // 9. Set up routes
    log.Println("🌐 Step 9: Setting up routes...")
    router := mux.NewRouter()

    discovery.RegisterRoutes(router, discovery.NewHandler(discoveryService), limitMiddleware)
    ratelimit.RegisterRoutes(router, ratelimit.NewHandler(limiter))

    router.Handle("/metrics", promhttp.Handler()).Methods("GET")
    router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        if err := db.Ping(); err != nil {
            utils.RespondWithError(w, http.StatusServiceUnavailable, "database unreachable")
            return
        }
        utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
    }).Methods("GET")

    log.Println("✅ Routes registered")

    // 10. Start server with graceful shutdown
    server := &http.Server{
        Addr:         ":" + cfg.Port,
        Handler:      router,
        ReadTimeout:  cfg.ReadTimeout,
        WriteTimeout: cfg.WriteTimeout,
    }

    go func() {
        log.Printf("🚀 Server listening on port %s", cfg.Port)
        if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            log.Fatal("❌ Server failed:", err)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit

    log.Println("🛑 Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
    defer cancel()

    if err := server.Shutdown(ctx); err != nil {
        log.Fatal("❌ Forced shutdown:", err)
    }
    log.Println("✅ Server stopped cleanly")
}

// runMigrations creates the tables the engine reads and writes. Profile and
// friendship rows are owned by the wider platform; the attempt log is ours.
func runMigrations(db *sqlx.DB) error {
    migrations := []string{
        `CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            display_name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
        `CREATE TABLE IF NOT EXISTS pet_profiles (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            breed TEXT NOT NULL DEFAULT '',
            age INTEGER CHECK (age >= 0),
            latitude DOUBLE PRECISION,
            longitude DOUBLE PRECISION,
            personality_traits TEXT[] NOT NULL DEFAULT '{}',
            is_available BOOLEAN NOT NULL DEFAULT FALSE,
            owner_id TEXT NOT NULL REFERENCES users(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
        `CREATE INDEX IF NOT EXISTS idx_pet_profiles_available
            ON pet_profiles(is_available) WHERE is_available = TRUE`,
        `CREATE TABLE IF NOT EXISTS friendships (
            id TEXT PRIMARY KEY,
            requester_id TEXT NOT NULL REFERENCES pet_profiles(id),
            recipient_id TEXT NOT NULL REFERENCES pet_profiles(id),
            status TEXT NOT NULL DEFAULT 'pending'
                CHECK (status IN ('pending', 'accepted', 'rejected')),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (requester_id, recipient_id)
        )`,
        `CREATE INDEX IF NOT EXISTS idx_friendships_requester ON friendships(requester_id)`,
        `CREATE INDEX IF NOT EXISTS idx_friendships_recipient ON friendships(recipient_id)`,
        `CREATE TABLE IF NOT EXISTS rate_limit_attempts (
            id TEXT PRIMARY KEY,
            identifier TEXT NOT NULL,
            action TEXT NOT NULL,
            ip_address TEXT,
            user_agent TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
        `CREATE INDEX IF NOT EXISTS idx_rate_limit_attempts_lookup
            ON rate_limit_attempts(identifier, action, created_at)`,
    }

    for _, migration := range migrations {
        if _, err := db.Exec(migration); err != nil {
            return err
        }
    }

    return nil
}
