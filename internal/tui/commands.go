package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/logging"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// opTimeout bounds every one-shot cluster operation dispatched from the UI.
const opTimeout = 15 * time.Second

// statusVisibleFor is how long a status bar message stays before auto-clear.
const statusVisibleFor = 4 * time.Second

// recordDrainLimit caps how many records one wake-up pulls from a stream, so
// a fast producer cannot starve the render loop.
const recordDrainLimit = 64

// newCorrelationID tags one dispatched command. Screens remember the id of
// the request they are waiting on and discard completions with any other id.
func newCorrelationID() string {
	return uuid.NewString()
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// --- profiles ---

func loadProfilesCmd(store profileStore, id string) tea.Cmd {
	return func() tea.Msg {
		profiles, err := store.Load()
		return profilesLoadedMsg{id: id, profiles: profiles, err: err}
	}
}

func saveProfileCmd(store profileStore, p storage.Profile, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.Save(p)
		return profileSavedMsg{id: id, profile: p, err: err}
	}
}

func deleteProfileCmd(store profileStore, name, id string) tea.Cmd {
	return func() tea.Msg {
		err := store.Delete(name)
		return profileDeletedMsg{id: id, name: name, err: err}
	}
}

func connectCmd(connect connectFunc, p storage.Profile, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		logging.Info("kafka", "connecting to %s", p.Name)
		client, err := connect(ctx, p.ClientConfig())
		return connectedMsg{id: id, client: client, profile: p, err: err}
	}
}

// --- topics ---

func loadTopicsCmd(client cluster, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		topics, err := client.ListTopics(ctx)
		return topicsLoadedMsg{id: id, topics: topics, err: err}
	}
}

func loadTopicDetailCmd(client cluster, topic, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		detail, err := client.DescribeTopic(ctx, topic)
		return topicDetailLoadedMsg{id: id, topic: topic, detail: detail, err: err}
	}
}

func createTopicCmd(client cluster, spec kafka.TopicSpec, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		err := client.CreateTopic(ctx, spec)
		return topicCreatedMsg{id: id, name: spec.Name, err: err}
	}
}

func deleteTopicCmd(client cluster, name, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		err := client.DeleteTopic(ctx, name)
		return topicDeletedMsg{id: id, name: name, err: err}
	}
}

func purgeTopicCmd(client cluster, name string, beforeOffset int64, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		err := client.PurgeTopic(ctx, name, beforeOffset)
		return topicPurgedMsg{id: id, name: name, err: err}
	}
}

func alterConfigCmd(client cluster, topic string, changes map[string]string, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		err := client.AlterConfig(ctx, topic, changes)
		return configAlteredMsg{id: id, topic: topic, err: err}
	}
}

func addPartitionsCmd(client cluster, topic string, total int, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		err := client.AddPartitions(ctx, topic, total)
		return partitionsAddedMsg{id: id, topic: topic, total: total, err: err}
	}
}

// --- messages ---

func produceCmd(client cluster, rec kafka.OutgoingRecord, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		result, err := client.Produce(ctx, rec)
		return producedMsg{id: id, topic: rec.Topic, result: result, err: err}
	}
}

func startStreamCmd(client cluster, topic string, start kafka.StartOffset, id string) tea.Cmd {
	return func() tea.Msg {
		stream, err := client.ConsumeStream(context.Background(), topic, start, id)
		return streamStartedMsg{id: id, topic: topic, stream: stream, err: err}
	}
}

// waitForRecordsCmd blocks until the stream yields a record, then drains
// whatever else is immediately available up to recordDrainLimit. Batching
// keeps redraw frequency bounded under a fast producer.
func waitForRecordsCmd(stream recordStream) tea.Cmd {
	return func() tea.Msg {
		first, ok := <-stream.Records()
		if !ok {
			return recordsBatchMsg{streamID: stream.ID(), closed: true, err: stream.Err()}
		}
		batch := []kafka.Record{first}
		for len(batch) < recordDrainLimit {
			select {
			case rec, ok := <-stream.Records():
				if !ok {
					return recordsBatchMsg{streamID: stream.ID(), records: batch, closed: true, err: stream.Err()}
				}
				batch = append(batch, rec)
			default:
				return recordsBatchMsg{streamID: stream.ID(), records: batch}
			}
		}
		return recordsBatchMsg{streamID: stream.ID(), records: batch}
	}
}

// --- groups and brokers ---

func loadGroupsCmd(client cluster, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		groups, err := client.ListGroups(ctx)
		return groupsLoadedMsg{id: id, groups: groups, err: err}
	}
}

func loadGroupDetailCmd(client cluster, group, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		detail, err := client.DescribeGroup(ctx, group)
		return groupDetailLoadedMsg{id: id, group: group, detail: detail, err: err}
	}
}

func loadBrokersCmd(client cluster, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := opContext()
		defer cancel()
		info, err := client.ListBrokers(ctx)
		return brokersLoadedMsg{id: id, info: info, err: err}
	}
}

// --- system ---

func waitForLogCmd(ch <-chan logging.Entry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return logEntryMsg{entry: entry}
	}
}

// statusExpireCmd fires statusExpiredMsg unless a newer status message
// cancels it first.
func statusExpireCmd(cancel <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-time.After(statusVisibleFor):
			return statusExpiredMsg{}
		case <-cancel:
			return nil
		}
	}
}
