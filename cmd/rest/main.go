package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"grantflow-be/internal/bootstrap"
	"grantflow-be/internal/config"
	"grantflow-be/internal/server"
	"grantflow-be/internal/tracer"
	"grantflow-be/pkg/database"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled)
	defer shutdownTracer(context.Background())

	opts := database.DefaultOptions()
	opts.Verbose = cfg.App.Environment != "production"
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, opts)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The save queue is in-memory, so subscribe before the first request can
	// publish. It outlives the signal context until queued saves are drained.
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if err := container.SaveConsumer.Consume(consumerCtx); err != nil {
		log.Panicf("Unable to subscribe to workflow saves: %v", err)
	}

	srv := server.New(cfg, container)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		container.WebSocketHub.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return container.NotificationService.Start(gctx)
	})
	g.Go(func() error {
		return container.CommunityService.Start(gctx)
	})
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")
		err := srv.Shutdown()

		drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Workflow.DrainTimeout)
		defer cancel()
		if drainErr := container.SaveConsumer.Drain(drainCtx, container.WorkflowService.Queued); drainErr != nil {
			log.Printf("Workflow saves not fully drained: %v", drainErr)
		}
		stopConsumer()
		container.SaveConsumer.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
