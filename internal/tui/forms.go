package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shkmv/kafka-tui/internal/kafka"
	"github.com/shkmv/kafka-tui/internal/storage"
)

// modal is an overlay that captures all key input until it closes itself by
// setting m.modal to nil.
type modal interface {
	update(m *model, msg tea.KeyMsg) tea.Cmd
	view(width int) string
}

func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 40
	return ti
}

// renderForm lays out a titled field list inside the modal frame.
func renderForm(title string, rows []string, errMsg, hint string) string {
	parts := []string{modalTitleStyle.Render(title), ""}
	parts = append(parts, rows...)
	if errMsg != "" {
		parts = append(parts, "", errorStyle.Render(errMsg))
	}
	if hint != "" {
		parts = append(parts, "", mutedStyle.Render(hint))
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// --- confirm ---

type confirmModal struct {
	prompt  string
	confirm func(m *model) tea.Cmd
}

func newConfirmModal(prompt string, confirm func(m *model) tea.Cmd) *confirmModal {
	return &confirmModal{prompt: prompt, confirm: confirm}
}

func (c *confirmModal) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		m.modal = nil
		return c.confirm(m)
	case "n", "N", "esc":
		m.modal = nil
	}
	return nil
}

func (c *confirmModal) view(width int) string {
	return renderForm("Confirm", []string{c.prompt}, "", "y confirm · n cancel")
}

// --- create topic ---

type createTopicForm struct {
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newCreateTopicForm() *createTopicForm {
	f := &createTopicForm{
		inputs: []textinput.Model{
			newFormInput("orders.v1"),
			newFormInput("3"),
			newFormInput("1"),
		},
	}
	f.inputs[0].Focus()
	return f
}

func (f *createTopicForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return nil
		}
		return f.submit(m)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *createTopicForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *createTopicForm) submit(m *model) tea.Cmd {
	name := strings.TrimSpace(f.inputs[0].Value())
	if err := validateTopicName(name); err != nil {
		f.errMsg = err.Error()
		return nil
	}
	partitions, err := parsePartitions(f.inputs[1].Value())
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}
	replication, err := parseReplication(f.inputs[2].Value())
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}

	s, ok := m.findScreen(screenTopics).(*topicsScreen)
	if !ok {
		m.modal = nil
		return nil
	}
	s.mutateID = newCorrelationID()
	m.modal = nil
	return createTopicCmd(m.client, kafka.TopicSpec{
		Name:              name,
		Partitions:        partitions,
		ReplicationFactor: replication,
	}, s.mutateID)
}

func (f *createTopicForm) view(width int) string {
	rows := []string{
		fieldLabelStyle.Render("Name") + "        " + f.inputs[0].View(),
		fieldLabelStyle.Render("Partitions") + "  " + f.inputs[1].View(),
		fieldLabelStyle.Render("Replication") + " " + f.inputs[2].View(),
	}
	return renderForm("Create Topic", rows, f.errMsg, "enter submit · tab next · esc cancel")
}

// --- produce ---

type produceForm struct {
	topic  string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newProduceForm(topic string) *produceForm {
	f := &produceForm{
		topic: topic,
		inputs: []textinput.Model{
			newFormInput("key (optional)"),
			newFormInput("value"),
			newFormInput("k=v,k2=v2 (optional)"),
		},
	}
	f.inputs[0].Focus()
	return f
}

func (f *produceForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	case "enter":
		if f.focus < len(f.inputs)-1 {
			f.setFocus(f.focus + 1)
			return nil
		}
		return f.submit(m)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *produceForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *produceForm) submit(m *model) tea.Cmd {
	headers, err := parseHeaders(f.inputs[2].Value())
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}
	s, ok := m.findScreen(screenMessages).(*messagesScreen)
	if !ok {
		m.modal = nil
		return nil
	}
	s.produceID = newCorrelationID()
	m.modal = nil
	return produceCmd(m.client, kafka.OutgoingRecord{
		Topic:   f.topic,
		Key:     f.inputs[0].Value(),
		Value:   f.inputs[1].Value(),
		Headers: headers,
	}, s.produceID)
}

func (f *produceForm) view(width int) string {
	rows := []string{
		fieldLabelStyle.Render("Key") + "     " + f.inputs[0].View(),
		fieldLabelStyle.Render("Value") + "   " + f.inputs[1].View(),
		fieldLabelStyle.Render("Headers") + " " + f.inputs[2].View(),
	}
	return renderForm("Produce to "+f.topic, rows, f.errMsg, "enter submit · tab next · esc cancel")
}

// --- purge ---

type purgeForm struct {
	topic  string
	offset textinput.Model
	errMsg string
}

func newPurgeForm(topic string) *purgeForm {
	f := &purgeForm{topic: topic, offset: newFormInput("empty = all records")}
	f.offset.Focus()
	return f
}

func (f *purgeForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "enter":
		before := int64(-1)
		if strings.TrimSpace(f.offset.Value()) != "" {
			n, err := parseOffset(f.offset.Value())
			if err != nil {
				f.errMsg = err.Error()
				return nil
			}
			before = n
		}
		s, ok := m.findScreen(screenTopics).(*topicsScreen)
		if !ok {
			m.modal = nil
			return nil
		}
		s.mutateID = newCorrelationID()
		m.modal = nil
		return purgeTopicCmd(m.client, f.topic, before, s.mutateID)
	}
	var cmd tea.Cmd
	f.offset, cmd = f.offset.Update(msg)
	return cmd
}

func (f *purgeForm) view(width int) string {
	rows := []string{
		"Delete records from " + f.topic + " below an offset.",
		fieldLabelStyle.Render("Before offset") + " " + f.offset.View(),
	}
	return renderForm("Purge Topic", rows, f.errMsg, "enter purge · esc cancel")
}

// --- add partitions ---

type addPartitionsForm struct {
	topic   string
	current int
	total   textinput.Model
	errMsg  string
}

func newAddPartitionsForm(topic string, current int) *addPartitionsForm {
	f := &addPartitionsForm{
		topic:   topic,
		current: current,
		total:   newFormInput(strconv.Itoa(current + 1)),
	}
	f.total.Focus()
	return f
}

func (f *addPartitionsForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "enter":
		total, err := parseNewPartitionCount(f.total.Value(), f.current)
		if err != nil {
			f.errMsg = err.Error()
			return nil
		}
		id := newCorrelationID()
		if s, ok := m.top().(*topicDetailsScreen); ok {
			s.mutateID = id
		} else if s, ok := m.findScreen(screenTopics).(*topicsScreen); ok {
			s.mutateID = id
		}
		m.modal = nil
		return addPartitionsCmd(m.client, f.topic, total, id)
	}
	var cmd tea.Cmd
	f.total, cmd = f.total.Update(msg)
	return cmd
}

func (f *addPartitionsForm) view(width int) string {
	rows := []string{
		f.topic + " currently has " + strconv.Itoa(f.current) + " partitions.",
		fieldLabelStyle.Render("New total") + " " + f.total.View(),
	}
	return renderForm("Add Partitions", rows, f.errMsg, "enter apply · esc cancel")
}

// --- alter config ---

type alterConfigForm struct {
	topic  string
	key    string
	value  textinput.Model
	errMsg string
}

func newAlterConfigForm(topic, key, value string) *alterConfigForm {
	f := &alterConfigForm{topic: topic, key: key, value: newFormInput("")}
	f.value.SetValue(value)
	f.value.Focus()
	return f
}

func (f *alterConfigForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "enter":
		s, ok := m.findScreen(screenTopicDetails).(*topicDetailsScreen)
		if !ok {
			m.modal = nil
			return nil
		}
		s.mutateID = newCorrelationID()
		m.modal = nil
		return alterConfigCmd(m.client, f.topic, map[string]string{f.key: f.value.Value()}, s.mutateID)
	}
	var cmd tea.Cmd
	f.value, cmd = f.value.Update(msg)
	return cmd
}

func (f *alterConfigForm) view(width int) string {
	rows := []string{
		fieldLabelStyle.Render("Key") + "   " + f.key,
		fieldLabelStyle.Render("Value") + " " + f.value.View(),
	}
	return renderForm("Edit Config on "+f.topic, rows, f.errMsg, "enter apply · esc cancel")
}

// --- start offset ---

type startOffsetForm struct {
	mode   kafka.OffsetMode
	at     textinput.Model
	errMsg string
}

func newStartOffsetForm(current kafka.StartOffset) *startOffsetForm {
	f := &startOffsetForm{mode: current.Mode, at: newFormInput("0")}
	if current.Mode == kafka.OffsetSpecific {
		f.at.SetValue(strconv.FormatInt(current.At, 10))
	}
	f.at.Focus()
	return f
}

func (f *startOffsetForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "left", "shift+tab":
		f.mode = (f.mode + 2) % 3
		return nil
	case "right", "tab":
		f.mode = (f.mode + 1) % 3
		return nil
	case "enter":
		start := kafka.StartOffset{Mode: f.mode}
		if f.mode == kafka.OffsetSpecific {
			at, err := parseOffset(f.at.Value())
			if err != nil {
				f.errMsg = err.Error()
				return nil
			}
			start.At = at
		}
		m.modal = nil
		return m.applyStartOffset(start)
	}
	var cmd tea.Cmd
	f.at, cmd = f.at.Update(msg)
	return cmd
}

func (f *startOffsetForm) view(width int) string {
	modes := make([]string, 0, 3)
	for _, mode := range []kafka.OffsetMode{kafka.OffsetLatest, kafka.OffsetEarliest, kafka.OffsetSpecific} {
		label := mode.String()
		if mode == f.mode {
			label = tabActiveStyle.Render(label)
		} else {
			label = tabInactiveStyle.Render(label)
		}
		modes = append(modes, label)
	}
	rows := []string{
		fieldLabelStyle.Render("Start from") + " " + strings.Join(modes, "  "),
	}
	if f.mode == kafka.OffsetSpecific {
		rows = append(rows, fieldLabelStyle.Render("Offset")+"     "+f.at.View())
	}
	return renderForm("Consume Position", rows, f.errMsg, "←/→ mode · enter restart · esc cancel")
}

// --- profile ---

var authOrder = []storage.AuthKind{
	storage.AuthNone,
	storage.AuthPlain,
	storage.AuthScram256,
	storage.AuthScram512,
}

func authLabel(k storage.AuthKind) string {
	switch k {
	case storage.AuthPlain:
		return "SASL/PLAIN"
	case storage.AuthScram256:
		return "SASL/SCRAM-256"
	case storage.AuthScram512:
		return "SASL/SCRAM-512"
	default:
		return "none"
	}
}

// profileForm creates or edits a connection profile. Focus walks the rows;
// the auth row cycles with left/right and the TLS row toggles with space.
type profileForm struct {
	original *storage.Profile
	inputs   []textinput.Model // name, brokers, username, password
	auth     storage.AuthKind
	tls      bool
	focus    int // 0 name, 1 brokers, 2 auth, 3 username, 4 password, 5 tls
	errMsg   string
}

const (
	profileRowName = iota
	profileRowBrokers
	profileRowAuth
	profileRowUsername
	profileRowPassword
	profileRowTLS
	profileRowCount
)

func newProfileForm(original *storage.Profile) *profileForm {
	f := &profileForm{
		original: original,
		inputs: []textinput.Model{
			newFormInput("local"),
			newFormInput("localhost:9092,localhost:9093"),
			newFormInput("username"),
			newFormInput("password"),
		},
		auth: storage.AuthNone,
	}
	f.inputs[3].EchoMode = textinput.EchoPassword
	if original != nil {
		f.inputs[0].SetValue(original.Name)
		f.inputs[1].SetValue(strings.Join(original.Brokers, ","))
		f.inputs[2].SetValue(original.Username)
		f.inputs[3].SetValue(original.Password)
		f.auth = original.Auth
		f.tls = original.TLS
	}
	f.inputs[0].Focus()
	return f
}

func (f *profileForm) inputIndex() int {
	switch f.focus {
	case profileRowName:
		return 0
	case profileRowBrokers:
		return 1
	case profileRowUsername:
		return 2
	case profileRowPassword:
		return 3
	}
	return -1
}

func (f *profileForm) setFocus(row int) {
	if i := f.inputIndex(); i >= 0 {
		f.inputs[i].Blur()
	}
	f.focus = (row + profileRowCount) % profileRowCount
	if i := f.inputIndex(); i >= 0 {
		f.inputs[i].Focus()
	}
}

func (f *profileForm) update(m *model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.modal = nil
		return nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil
	case "ctrl+s":
		return f.submit(m)
	case "enter":
		if f.focus == profileRowTLS {
			return f.submit(m)
		}
		f.setFocus(f.focus + 1)
		return nil
	}

	switch f.focus {
	case profileRowAuth:
		switch msg.String() {
		case "left":
			f.auth = cycleAuth(f.auth, -1)
		case "right", " ":
			f.auth = cycleAuth(f.auth, 1)
		}
		return nil
	case profileRowTLS:
		if msg.String() == " " {
			f.tls = !f.tls
		}
		return nil
	}

	i := f.inputIndex()
	var cmd tea.Cmd
	f.inputs[i], cmd = f.inputs[i].Update(msg)
	return cmd
}

func cycleAuth(k storage.AuthKind, step int) storage.AuthKind {
	for i, a := range authOrder {
		if a == k {
			return authOrder[(i+step+len(authOrder))%len(authOrder)]
		}
	}
	return storage.AuthNone
}

func (f *profileForm) submit(m *model) tea.Cmd {
	name := strings.TrimSpace(f.inputs[0].Value())
	if err := validateProfileName(name); err != nil {
		f.errMsg = err.Error()
		return nil
	}
	brokers, err := parseBrokers(f.inputs[1].Value())
	if err != nil {
		f.errMsg = err.Error()
		return nil
	}
	if f.auth != storage.AuthNone && strings.TrimSpace(f.inputs[2].Value()) == "" {
		f.errMsg = "username is required for SASL auth"
		return nil
	}

	p := storage.NewProfile(name, brokers)
	if f.original != nil {
		p.ID = f.original.ID
		p.CreatedAt = f.original.CreatedAt
		p.LastUsed = f.original.LastUsed
	}
	p.Auth = f.auth
	p.Username = f.inputs[2].Value()
	p.Password = f.inputs[3].Value()
	p.TLS = f.tls

	s, ok := m.findScreen(screenWelcome).(*welcomeScreen)
	if !ok {
		m.modal = nil
		return nil
	}
	s.saveID = newCorrelationID()
	m.modal = nil
	return saveProfileCmd(m.store, p, s.saveID)
}

func (f *profileForm) view(width int) string {
	title := "New Profile"
	if f.original != nil {
		title = "Edit Profile"
	}
	authRow := authLabel(f.auth)
	if f.focus == profileRowAuth {
		authRow = tabActiveStyle.Render("< " + authRow + " >")
	}
	tlsRow := "off"
	if f.tls {
		tlsRow = "on"
	}
	if f.focus == profileRowTLS {
		tlsRow = tabActiveStyle.Render("[ " + tlsRow + " ]")
	}
	rows := []string{
		fieldLabelStyle.Render("Name") + "     " + f.inputs[0].View(),
		fieldLabelStyle.Render("Brokers") + "  " + f.inputs[1].View(),
		fieldLabelStyle.Render("Auth") + "     " + authRow,
		fieldLabelStyle.Render("Username") + " " + f.inputs[2].View(),
		fieldLabelStyle.Render("Password") + " " + f.inputs[3].View(),
		fieldLabelStyle.Render("TLS") + "      " + tlsRow,
	}
	return renderForm(title, rows, f.errMsg, "ctrl+s save · tab next · esc cancel")
}
