package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grantflow-be/internal/config"
	"grantflow-be/internal/dto"
	"grantflow-be/internal/pkg/serverutils"
	"grantflow-be/pkg/events"
	pktNats "grantflow-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var broadcastTitle string

var broadcastCmd = &cobra.Command{
	Use:   "broadcast [message]",
	Short: "Send an announcement to every connected user",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBroadcast,
}

func init() {
	broadcastCmd.Flags().StringVar(&broadcastTitle, "title", "Announcement", "notification title")
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	req := dto.BroadcastRequest{
		Title:   strings.TrimSpace(broadcastTitle),
		Message: strings.TrimSpace(strings.Join(args, " ")),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	cfg := config.Load()
	pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer pub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	evt := events.New(events.SystemBroadcast, map[string]interface{}{
		"title":   req.Title,
		"message": req.Message,
	})
	if err := pub.Publish(ctx, evt); err != nil {
		return err
	}
	color.Green("Broadcast queued: %s", req.Title)
	return nil
}
