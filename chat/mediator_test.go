package chat

import (
	"chat-mediator/domain/event"
	"chat-mediator/mocks"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newMockMember(ctrl *gomock.Controller, name string, muted bool) *mocks.MockMember {
	member := mocks.NewMockMember(ctrl)
	member.EXPECT().ID().Return(uuid.New()).AnyTimes()
	member.EXPECT().Name().Return(name).AnyTimes()
	member.EXPECT().IsMuted().Return(muted).AnyTimes()
	return member
}

func newTestMediator() (*ChatMediator, *Registry) {
	registry := NewRegistry()
	return NewChatMediator(logs.GetLoggerFromLevel(slog.LevelDebug), registry), registry
}

func TestChatMediator_Register_NotifiesEveryoneIncludingNewcomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	bob := newMockMember(ctrl, "Bob", false)

	// Given Alice is already registered
	registry.Add(alice)

	// Then both Alice and Bob learn that Bob joined, in registration order
	gomock.InOrder(
		alice.EXPECT().ReceiveNotification("Bob joined the group.").Times(1),
		bob.EXPECT().ReceiveNotification("Bob joined the group.").Times(1),
	)

	// When Bob registers
	mediator.Register(bob)

	require.Equal(t, 2, registry.Len())
}

func TestChatMediator_Register_DuplicateNamesAreKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	first := newMockMember(ctrl, "Bob", false)
	second := newMockMember(ctrl, "Bob", false)

	first.EXPECT().ReceiveNotification("Bob joined the group.").Times(2)
	second.EXPECT().ReceiveNotification("Bob joined the group.").Times(1)

	mediator.Register(first)
	mediator.Register(second)

	require.Len(t, registry.Named("Bob"), 2)
}

func TestChatMediator_Broadcast_SkipsSenderAndMuted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	bob := newMockMember(ctrl, "Bob", true)
	carlos := newMockMember(ctrl, "Carlos", false)
	dora := newMockMember(ctrl, "Dora", false)

	// Given Bob is muted
	registry.Add(alice)
	registry.Add(bob)
	registry.Add(carlos)
	registry.Add(dora)

	// Then only Carlos and Dora receive, in registration order
	gomock.InOrder(
		carlos.EXPECT().Receive("Alice", "hi").Times(1),
		dora.EXPECT().Receive("Alice", "hi").Times(1),
	)

	// When Alice broadcasts
	mediator.Broadcast("Alice", "hi")
}

func TestChatMediator_Broadcast_UnknownSenderReachesEveryUnmuted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	bob := newMockMember(ctrl, "Bob", true)
	registry.Add(alice)
	registry.Add(bob)

	alice.EXPECT().Receive("Ghost", "boo").Times(1)

	mediator.Broadcast("Ghost", "boo")
}

func TestChatMediator_Direct_ReachesEveryMatchRegardlessOfMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	bob := newMockMember(ctrl, "Bob", false)
	mutedBob := newMockMember(ctrl, "Bob", true)
	registry.Add(alice)
	registry.Add(bob)
	registry.Add(mutedBob)

	// Then both members called Bob receive, Alice does not
	bob.EXPECT().ReceivePrivate("Alice", "y").Times(1)
	mutedBob.EXPECT().ReceivePrivate("Alice", "y").Times(1)

	mediator.Direct("Alice", "Bob", "y")
}

func TestChatMediator_Direct_UnknownRecipientIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	sink := mocks.NewMockEventSink(ctrl)
	mediator.AddSinks(sink)
	registry.Add(newMockMember(ctrl, "Alice", false))

	// Then nobody receives and the event reports zero delivery
	sink.EXPECT().Consume(gomock.Any()).Do(func(e event.DomainEvent) {
		evt, ok := e.(event.PrivateMessageSent)
		require.True(t, ok)
		require.Equal(t, "Nobody", evt.Recipient)
		require.Zero(t, evt.Delivered)
	}).Times(1)

	mediator.Direct("Alice", "Nobody", "hello?")
}

func TestChatMediator_Notify_IgnoresMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	carlos := newMockMember(ctrl, "Carlos", true)
	registry.Add(alice)
	registry.Add(carlos)

	alice.EXPECT().ReceiveNotification("maintenance at noon").Times(1)
	carlos.EXPECT().ReceiveNotification("maintenance at noon").Times(1)

	mediator.Notify("maintenance at noon")
}

func TestChatMediator_Mute_AllMatchesThenNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	carlos := newMockMember(ctrl, "Carlos", false)
	otherCarlos := newMockMember(ctrl, "Carlos", false)
	registry.Add(alice)
	registry.Add(carlos)
	registry.Add(otherCarlos)

	// Then every Carlos is muted before anyone is told
	muteCarlos := carlos.EXPECT().Mute().Times(1)
	muteOther := otherCarlos.EXPECT().Mute().Times(1)
	notification := "Carlos was muted by Alice."
	alice.EXPECT().ReceiveNotification(notification).After(muteCarlos).After(muteOther).Times(1)
	carlos.EXPECT().ReceiveNotification(notification).After(muteCarlos).Times(1)
	otherCarlos.EXPECT().ReceiveNotification(notification).After(muteOther).Times(1)

	// When Alice mutes Carlos
	mediator.Mute("Alice", "Carlos")
}

func TestChatMediator_Mute_UnknownTargetStillNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	alice := newMockMember(ctrl, "Alice", false)
	registry.Add(alice)

	// Any moderator name is accepted, no member is muted
	alice.EXPECT().ReceiveNotification("Zed was muted by Somebody.").Times(1)

	mediator.Mute("Somebody", "Zed")
}

func TestChatMediator_Censor_RewritesContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, registry := newTestMediator()
	censor := mocks.NewMockCensor(ctrl)
	mediator.WithCensor(censor)
	alice := newMockMember(ctrl, "Alice", false)
	bob := newMockMember(ctrl, "Bob", false)
	registry.Add(alice)
	registry.Add(bob)

	censor.EXPECT().Censor("you badger").Return("you ******", []string{"badger"}).Times(2)
	bob.EXPECT().Receive("Alice", "you ******").Times(1)
	bob.EXPECT().ReceivePrivate("Alice", "you ******").Times(1)

	mediator.Broadcast("Alice", "you badger")
	mediator.Direct("Alice", "Bob", "you badger")
}

func TestChatMediator_Sinks_ReceiveOneEventPerOperation(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mediator, _ := newTestMediator()
	sink := mocks.NewMockEventSink(ctrl)
	mediator.AddSinks(sink)

	var types []event.Type
	sink.EXPECT().Consume(gomock.Any()).Do(func(e event.DomainEvent) {
		types = append(types, e.Type())
	}).AnyTimes()

	alice := newMockMember(ctrl, "Alice", false)
	alice.EXPECT().ReceiveNotification(gomock.Any()).AnyTimes()
	alice.EXPECT().Mute().Times(1)

	// When a member joins, broadcasts alone and gets muted
	mediator.Register(alice)
	mediator.Broadcast("Alice", "anyone here?")
	mediator.Mute("Alice", "Alice")

	// Then
	req.Equal([]event.Type{
		event.ParticipantJoinedType,
		event.NotificationSentType,
		event.MessageBroadcastType,
		event.ParticipantMutedType,
		event.NotificationSentType,
	}, types)
}
