package logging

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}

func TestTUIChannelReceivesEntries(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer Close()

	Info("kafka", "connected to %d brokers", 3)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelInfo, entry.Level)
		assert.Equal(t, "kafka", entry.Subsystem)
		assert.Equal(t, "connected to 3 brokers", entry.Message)
		assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Second)
	case <-time.After(time.Second):
		t.Fatal("no entry received")
	}
}

func TestFilterDropsLowLevels(t *testing.T) {
	ch := InitForTUI(LevelWarn)
	defer Close()

	Debug("tui", "noisy detail")
	Info("tui", "still too low")
	Warn("tui", "kept")

	entry := <-ch
	assert.Equal(t, "kept", entry.Message)
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra entry: %+v", extra)
	default:
	}
}

func TestCloseIsSafeWithConcurrentEmitters(t *testing.T) {
	InitForTUI(LevelDebug)

	// Background commands keep logging while the program shuts the channel
	// down; none of these may panic or race.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				Info("kafka", "worker %d entry %d", n, j)
			}
		}(i)
	}
	Close()
	wg.Wait()

	// Emitting after close must not panic either.
	Info("kafka", "late entry")
}

func TestCloseTwiceIsANoOp(t *testing.T) {
	InitForTUI(LevelDebug)
	Close()
	Close()
}

func TestCLIModeWritesToOutput(t *testing.T) {
	// Leave TUI mode first so emit takes the slog path.
	Close()

	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)
	Info("storage", "profiles loaded")

	require.Contains(t, buf.String(), "profiles loaded")
	require.Contains(t, buf.String(), "subsystem=storage")
}
