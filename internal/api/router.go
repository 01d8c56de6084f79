package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"bordbuch-backend/config"
	"bordbuch-backend/internal/access"
	"bordbuch-backend/internal/mw"
	"bordbuch-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, s store.Store, directory access.MachineDirectory, webpushOptions *webpush.Options, notifier Notifier) *gin.Engine {
	r := gin.Default()
	r.Use(mw.CORS())

	handler := NewHandler(s, directory, webpushOptions, notifier)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/verify-pin", handler.VerifyPin)
		api.POST("/automaten", handler.ListMachines)

		api.POST("/reinigungen", handler.SubmitCleaning)
		api.POST("/reinigungen/letzte", handler.LastCleaning)

		api.GET("/wartungselemente", caching, handler.ListChecklistItems)
		api.POST("/wartungen", handler.SubmitMaintenance)
		api.POST("/wochenwartungen", handler.SubmitWeeklyCheck)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
