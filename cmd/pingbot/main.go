package main

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bradykim7/pingbot/internal/bot"
	"github.com/bradykim7/pingbot/pkg/config"
	"github.com/bradykim7/pingbot/pkg/logger"
)

func main() {
	// Bootstrap logger until configuration is known
	boot, err := zap.NewProduction()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		boot.Fatal("Failed to load configuration", zap.Error(err))
	}

	l, err := logger.New("pingbot", logger.Options{Level: cfg.LogLevel, Dir: cfg.LogDir})
	if err != nil {
		boot.Fatal("Failed to initialize logger", zap.Error(err))
	}
	log := l.Desugar()
	defer log.Sync()

	// Resolve owner and build the client
	discordBot, err := bot.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize bot", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	// Handle graceful shutdown
	shards := discordBot.Shards()
	g.Go(func() error {
		return bot.WatchInterrupt(gctx, shards, log)
	})

	g.Go(func() error {
		defer cancel()
		return discordBot.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Client error", zap.Error(err))
	}

	log.Info("Discord bot shut down successfully")
}
