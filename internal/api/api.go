package api

import (
	"log"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/lineramind/internal/answer"
	"github.com/ethanbaker/lineramind/internal/chain"
	entry_store "github.com/ethanbaker/lineramind/internal/stores/entry"
	"github.com/ethanbaker/lineramind/pkg/entry"
	"github.com/ethanbaker/lineramind/pkg/utils"
	"github.com/ethanbaker/lineramind/pkg/verify"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	ai_module "github.com/ethanbaker/lineramind/internal/api/modules/ai"
	health_module "github.com/ethanbaker/lineramind/internal/api/modules/health"
	verify_module "github.com/ethanbaker/lineramind/internal/api/modules/verify"
)

// Deps are the components the API serves
type Deps struct {
	Store    entry.Store
	Chain    *chain.Chain
	Answerer answer.Answerer

	Location   *time.Location // Report and view timestamps
	AskLimiter *Limiter       // Optional limiter for the ask route
	CacheTTL   time.Duration  // Lifetime of cached entries, no cache when zero
}

// NewEngine builds the gin engine with every module registered
func NewEngine(cfg *utils.Config, deps *Deps) *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.GetList("CORS_ALLOWED_ORIGINS"),
		AllowAllOrigins:  !cfg.Has("CORS_ALLOWED_ORIGINS"),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Reads go through the cache, writes straight to the store
	var reader entry.Reader = deps.Store
	if deps.CacheTTL > 0 {
		reader = entry_store.NewCachedReader(deps.Store, deps.CacheTTL)
	}
	resolver := verify.NewResolver(reader)

	var limit gin.HandlerFunc
	if deps.AskLimiter != nil {
		limit = deps.AskLimiter.Handler()
	}

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	health_module.RegisterRoutes(baseGroup, deps.Chain)
	ai_module.RegisterRoutes(baseGroup, ai_module.NewService(deps.Answerer, deps.Chain, reader), limit)
	verify_module.RegisterRoutes(baseGroup, verify_module.NewService(resolver, deps.Location))

	return engine
}

// Start builds every component from the configuration and serves the API
func Start(cfg *utils.Config) {
	port := cfg.GetWithDefault("API_PORT", "8080")

	store, err := entry_store.Open(cfg)
	if err != nil {
		log.Fatalf("[API]: Failed to open record store: %v", err)
	}
	defer store.Close()

	c, err := chain.New(store, chain.OptionsFromConfig(cfg))
	if err != nil {
		log.Fatalf("[API]: Failed to create chain: %v", err)
	}
	c.Start()
	defer c.Stop()
	log.Printf("[API]: Serving chain %s from height %d\n", c.ID(), c.Height())

	deps := &Deps{
		Store:      store,
		Chain:      c,
		Answerer:   answer.New(cfg, verify.NewResolver(store)),
		Location:   cfg.GetLocation("REPORT_TIMEZONE"),
		AskLimiter: NewLimiter(cfg.GetFloatWithDefault("ASK_RATE_PER_SECOND", 1), cfg.GetIntWithDefault("ASK_RATE_BURST", 5)),
		CacheTTL:   cfg.GetDurationWithDefault("VERIFY_CACHE_TTL", 10*time.Minute),
	}

	engine := NewEngine(cfg, deps)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API]: Failed to start server: ", err)
	}
}
