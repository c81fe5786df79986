package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/p0rkchop/ward-sub000/internal/config"
	dbpkg "github.com/p0rkchop/ward-sub000/internal/db"
	"github.com/p0rkchop/ward-sub000/internal/routes"
)

func main() {

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DurationFieldUnit = time.Millisecond

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Int("slot_minutes", cfg.SlotMinutes).Msg("server starting")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
