package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/logging"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// clusterClient adapts *kafka.Client to the cluster interface; the concrete
// *kafka.Stream becomes a recordStream.
type clusterClient struct {
	*kafka.Client
}

func (c clusterClient) ConsumeStream(ctx context.Context, topic string, start kafka.StartOffset, id string) (recordStream, error) {
	stream, err := c.Client.ConsumeStream(ctx, topic, start, id)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

func dialCluster(ctx context.Context, cfg kafka.Config) (cluster, error) {
	client, err := kafka.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return clusterClient{Client: client}, nil
}

// Run starts the interactive terminal client and blocks until it exits.
func Run(logLevel logging.Level) error {
	store, err := storage.NewStore("")
	if err != nil {
		return fmt.Errorf("opening profile store: %w", err)
	}

	logCh := logging.InitForTUI(logLevel)
	defer logging.Close()

	p := tea.NewProgram(
		InitialModel(store, dialCluster, logCh),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal client: %w", err)
	}
	return nil
}
