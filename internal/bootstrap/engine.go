// Package bootstrap assembles a retro.Engine from application configuration,
// shared by both the CLI (internal/interfaces/cli) and the HTTP API
// (internal/interfaces/http) so the two interface layers wire the same
// adapter/catalog/price-cache fallback chain instead of duplicating it.
package bootstrap

import (
	"context"
	"time"

	"github.com/turtacn/retrosynth/internal/chem"
	"github.com/turtacn/retrosynth/internal/config"
	"github.com/turtacn/retrosynth/internal/infrastructure/catalog"
	"github.com/turtacn/retrosynth/internal/infrastructure/eventbus"
	"github.com/turtacn/retrosynth/internal/infrastructure/graphexport"
	"github.com/turtacn/retrosynth/internal/infrastructure/pricecache"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/internal/retro"
)

// builtInTemplates is the reference template corpus used whenever no
// Postgres catalog is reachable — a small, fixed, deterministic set of
// reaction patterns so the engine works standalone without any
// infrastructure running. A real deployment points database.host at the D3
// catalog instead.
func builtInTemplates() ([]chem.TemplateRecord, error) {
	specs := []struct {
		index  int
		smarts string
		seed   string
		prior  float64
	}{
		{1, "[C:1](=O)[OH].[N:2]>>[C:1](=O)[N:2]", "C(=O)O", 0.9},
		{2, "[C:1]=[C:2].[C:3]=[C:4]>>[C:1][C:2][C:3][C:4]", "C=C", 0.6},
		{3, "[C:1]Br.[O:2]>>[C:1][O:2]", "CBr", 0.7},
		{4, "[C:1](=O)Cl.[O:2]>>[C:1](=O)[O:2]", "C(=O)Cl", 0.5},
	}

	records := make([]chem.TemplateRecord, 0, len(specs))
	for _, s := range specs {
		fp, err := chem.CalculateMorganFingerprint(s.seed, 2, 2048)
		if err != nil {
			return nil, err
		}
		records = append(records, chem.TemplateRecord{
			Index:              s.index,
			ReactionSMARTS:     s.smarts,
			ProductFingerprint: fp,
			RelevancePrior:     s.prior,
		})
	}
	return records, nil
}

// builtInPrices is the fallback buyables list used whenever no Redis price
// cache is reachable, mirroring a small vendor catalog excerpt.
type builtInPrices struct {
	prices map[string]float64
}

func newBuiltInPrices() *builtInPrices {
	return &builtInPrices{prices: map[string]float64{
		"C(=O)O":  1.2,
		"C=C":     0.8,
		"CBr":     2.5,
		"C(=O)Cl": 3.0,
		"O":       0.1,
		"N":       0.9,
	}}
}

func (b *builtInPrices) LookupPrice(ctx context.Context, smiles string) (*float64, error) {
	if p, ok := b.prices[smiles]; ok {
		return &p, nil
	}
	return nil, nil
}

// priceCacheLookup adapts pricecache.PriceCache's three-return-value
// LookupPrice (which also reports a cache-hit flag for metrics) down to the
// two-return-value chem.PriceLookup the reference adapter expects.
type priceCacheLookup struct {
	pc *pricecache.PriceCache
}

func (p priceCacheLookup) LookupPrice(ctx context.Context, smiles string) (*float64, error) {
	price, _, err := p.pc.LookupPrice(ctx, smiles)
	return price, err
}

// Resources bundles the engine plus whatever live connections it holds, so
// the caller can release them once it is done with the engine. EventBus is
// nil whenever Kafka is disabled or its producer config is rejected (the
// producer does not contact the broker when built); GraphExport is nil
// whenever Neo4j is disabled or unreachable — callers must nil-check both
// before using them.
type Resources struct {
	Engine      *retro.Engine
	EventBus    *eventbus.Producer
	GraphExport *graphexport.Exporter
	Templates   []chem.TemplateRecord
	Close       func()
}

// BuildEngine assembles a retro.Engine per cfg: templates and prices come
// from Postgres/Redis when configured, falling back to a small built-in
// reference corpus otherwise so both the CLI and the HTTP API work
// standalone without any infrastructure running. timeoutOverride, when
// non-zero, replaces cfg.Engine.ExpansionTime for this engine instance only.
func BuildEngine(ctx context.Context, cfg *config.Config, logger logging.Logger, timeoutOverride time.Duration) (*Resources, error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	templates, err := builtInTemplates()
	if err != nil {
		closeAll()
		return nil, err
	}
	if cfg.Database.Host != "" {
		pool, poolErr := catalog.NewConnectionPool(cfg.Database, logger)
		if poolErr != nil {
			logger.Warn("template catalog unreachable, using built-in corpus", logging.Err(poolErr))
		} else {
			closers = append(closers, func() { catalog.Close(pool) })
			repo, repoErr := catalog.NewRepository(ctx, pool, logger)
			if repoErr != nil {
				logger.Warn("failed to load template catalog, using built-in corpus", logging.Err(repoErr))
			} else if repo.Count() > 0 {
				loaded := make([]chem.TemplateRecord, 0, repo.Count())
				for i, t := range repo.All() {
					loaded = append(loaded, chem.TemplateRecord{
						Index:              i,
						ReactionSMARTS:     t.ReactionSMARTS,
						ProductFingerprint: t.ProductFingerprint,
						RelevancePrior:     t.RelevancePrior,
					})
				}
				templates = loaded
			}
		}
	}

	var priceSource chem.PriceLookup = newBuiltInPrices()
	if cfg.Redis.Addr != "" {
		redisCfg := &pricecache.RedisConfig{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}
		client, clientErr := pricecache.NewClient(redisCfg, logger)
		if clientErr != nil {
			logger.Warn("price cache unreachable, using built-in buyables list", logging.Err(clientErr))
		} else {
			closers = append(closers, func() { _ = client.Close() })
			cache := pricecache.NewRedisCache(client, logger, pricecache.WithPrefix("retrosynth:price:"))
			pc := pricecache.NewPriceCache(cache, newBuiltInPrices(), logger, cfg.Redis.DefaultTTL)
			priceSource = priceCacheLookup{pc: pc}
		}
	}

	adapter := chem.NewAdapter(templates, priceSource)
	engine := retro.NewEngine(adapter, logger)

	engineCfg := cfg.Engine
	if timeoutOverride > 0 {
		engineCfg.ExpansionTime = timeoutOverride
	}
	if err := engine.Configure(engineCfg); err != nil {
		closeAll()
		return nil, err
	}

	var producer *eventbus.Producer
	if cfg.Kafka.Enabled {
		p, prodErr := eventbus.NewProducer(eventbus.ProducerConfig{
			Brokers:    cfg.Kafka.Brokers,
			MaxRetries: cfg.Kafka.ProducerRetries,
			BatchSize:  cfg.Kafka.BatchSize,
		}, logger)
		if prodErr != nil {
			logger.Warn("route event producer unavailable, route events will not be published", logging.Err(prodErr))
		} else {
			closers = append(closers, func() { _ = p.Close() })
			producer = p
		}
	}

	var exporter *graphexport.Exporter
	if cfg.Neo4j.Enabled {
		driver, drvErr := graphexport.NewDriver(cfg.Neo4j, logger)
		if drvErr != nil {
			logger.Warn("neo4j dag mirror unavailable, graph export will be skipped", logging.Err(drvErr))
		} else {
			closers = append(closers, func() { _ = driver.Close() })
			exporter = graphexport.NewExporter(driver, logger)
		}
	}

	return &Resources{Engine: engine, EventBus: producer, GraphExport: exporter, Templates: templates, Close: closeAll}, nil
}

//Personal.AI order the ending
