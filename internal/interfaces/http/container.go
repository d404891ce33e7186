package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"modcms/internal/infrastructure/config"
	"modcms/internal/infrastructure/ratelimit"
	"modcms/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, services and
// handlers of the HTTP server and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	writeLimiter ratelimit.Limiter

	repos *repositories
	svcs  *allServices
	hdlrs *allHandlers
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.redis = initRedis(cfg, log)
	if c.redis != nil && cfg.RateLimit.Enabled() {
		c.writeLimiter = ratelimit.NewRedisLimiter(c.redis, "")
	} else if cfg.RateLimit.Enabled() {
		log.Warnw("write rate limit configured without redis, throttling disabled")
	}
	c.repos = newRepositories(db, log)
	c.svcs = c.newServices()

	hdlrs, err := c.newHandlers()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to build handlers: %w", err)
	}
	c.hdlrs = hdlrs

	return c, nil
}

// initRedis connects to Redis when enabled. An unreachable server disables
// the translation cache instead of failing startup.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warnw("redis unavailable, translation cache disabled", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = client.Close()
		return nil
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return client
}

// Close releases connections owned by the container. The database handle
// belongs to the caller.
func (c *Container) Close() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}
