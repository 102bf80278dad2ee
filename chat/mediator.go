// Package chat implements the group chat: a mediator routing every
// interaction and the users talking through it.
package chat

import (
	"chat-mediator/contract"
	"chat-mediator/domain"
	"chat-mediator/domain/event"
	"fmt"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

const undeterminedLang = "und"

var _ contract.Mediator = (*ChatMediator)(nil)

// ChatMediator routes broadcasts, private messages, notifications and
// moderation between registered members. Members never talk to each other
// directly.
//
// No operation returns an error: unknown names simply match nobody.
// Any caller is accepted as moderator.
type ChatMediator struct {
	log      *slog.Logger
	registry *Registry
	sinks    []contract.EventSink
	censor   contract.Censor
	now      func() time.Time
}

func NewChatMediator(log *slog.Logger, registry *Registry) *ChatMediator {
	return &ChatMediator{
		log:      log,
		registry: registry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddSinks plugs observers receiving a domain event after each operation.
func (m *ChatMediator) AddSinks(sinks ...contract.EventSink) *ChatMediator {
	m.sinks = append(m.sinks, sinks...)
	return m
}

// WithCensor rewrites broadcast and private content before delivery.
func (m *ChatMediator) WithCensor(censor contract.Censor) *ChatMediator {
	m.censor = censor
	return m
}

// Register appends the member then notifies everyone, the newcomer included.
func (m *ChatMediator) Register(member contract.Member) {
	m.registry.Add(member)
	m.log.Debug("Member registered", "name", member.Name(), "id", member.ID(), "members", m.registry.Len())
	m.fanout(event.ParticipantJoined{ParticipantID: member.ID(), Name: member.Name(), At: m.now()})
	m.Notify(fmt.Sprintf("%s joined the group.", member.Name()))
}

// Broadcast delivers to every member that is neither the sender nor muted.
func (m *ChatMediator) Broadcast(sender, message string) {
	msg := domain.NewMessage(sender, "", m.sanitize(message), m.now())
	recipients := lo.Filter(m.registry.Snapshot(), func(member contract.Member, _ int) bool {
		return member.Name() != sender && !member.IsMuted()
	})
	for _, member := range recipients {
		member.Receive(msg.Sender, msg.Content)
	}

	m.log.Debug("Message broadcast", "id", msg.ID, "sender", sender, "recipients", len(recipients))
	m.fanout(event.MessageBroadcast{
		ID:         msg.ID,
		Author:     msg.Sender,
		Content:    msg.Content,
		Lang:       detectLang(msg.Content),
		Recipients: len(recipients),
		At:         msg.CreatedAt,
	})
}

// Direct delivers to every member called recipient, muted or not.
func (m *ChatMediator) Direct(sender, recipient, message string) {
	msg := domain.NewMessage(sender, recipient, m.sanitize(message), m.now())
	matches := m.registry.Named(msg.Recipient)
	for _, member := range matches {
		member.ReceivePrivate(msg.Sender, msg.Content)
	}

	if len(matches) == 0 {
		m.log.Debug("No recipient matched", "id", msg.ID, "sender", sender, "recipient", recipient)
	}
	m.fanout(event.PrivateMessageSent{
		ID:        msg.ID,
		Author:    msg.Sender,
		Recipient: msg.Recipient,
		Content:   msg.Content,
		Delivered: len(matches),
		At:        msg.CreatedAt,
	})
}

// Notify reaches every member whatever their mute state.
func (m *ChatMediator) Notify(text string) {
	members := m.registry.Snapshot()
	for _, member := range members {
		member.ReceiveNotification(text)
	}
	m.fanout(event.NotificationSent{Text: text, Recipients: len(members), At: m.now()})
}

// Mute silences every member called target then tells everyone,
// even when nobody matched.
func (m *ChatMediator) Mute(moderator, target string) {
	matches := m.registry.Named(target)
	for _, member := range matches {
		member.Mute()
	}

	m.log.Debug("Member muted", "moderator", moderator, "target", target, "affected", len(matches))
	m.fanout(event.ParticipantMuted{Moderator: moderator, Target: target, Affected: len(matches), At: m.now()})
	m.Notify(fmt.Sprintf("%s was muted by %s.", target, moderator))
}

func (m *ChatMediator) sanitize(content string) string {
	if m.censor == nil {
		return content
	}
	censored, words := m.censor.Censor(content)
	if len(words) > 0 {
		m.log.Info("Message censored", "words", len(words))
	}
	return censored
}

// fanout hands the event to every sink, in registration order.
func (m *ChatMediator) fanout(evt event.DomainEvent) {
	for _, sink := range m.sinks {
		sink.Consume(evt)
	}
}

func detectLang(content string) string {
	info := whatlanggo.Detect(content)
	if lang := info.Lang.Iso6391(); lang != "" {
		return lang
	}
	return undeterminedLang
}
