package event_test

import (
	"testing"

	"github.com/ratel-online/unoflip/uno/event"
	"github.com/stretchr/testify/require"
)

type panickingObserver struct{}

func (o *panickingObserver) OnNotification(event.Notification) {
	panic("boom")
}

type orderObserver struct {
	name  string
	calls *[]string
}

func (o *orderObserver) OnNotification(event.Notification) {
	*o.calls = append(*o.calls, o.name)
}

func TestEmit(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter := event.NewEmitter()
	emitter.AddObserver(listenerOne)
	emitter.AddObserver(listenerTwo)

	payloads := []event.Notification{
		{
			PlayerName: "Someone",
			TopCard:    "[3](red)",
			Status:     event.StatusStandard,
		},
		{
			PlayerName: "Somebody",
			TopCard:    "(*)",
			Status:     event.StatusInvalidCard,
			Wild:       true,
		},
	}

	for _, payload := range payloads {
		emitter.Emit(payload)
	}

	require.Equal(t, payloads, listenerOne.ReceivedPayloads())
	require.Equal(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestEmitWithoutObservers(t *testing.T) {
	emitter := event.NewEmitter()
	require.NotPanics(t, func() {
		emitter.Emit(event.Notification{PlayerName: "Someone"})
	})
	require.Equal(t, 0, emitter.Len())
}

func TestEmitInRegistrationOrder(t *testing.T) {
	var calls []string
	emitter := event.NewEmitter()
	emitter.AddObserver(&orderObserver{name: "first", calls: &calls})
	emitter.AddObserver(&orderObserver{name: "second", calls: &calls})
	emitter.AddObserver(&orderObserver{name: "third", calls: &calls})

	emitter.Emit(event.Notification{})

	require.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestEmitIsolatesPanickingObserver(t *testing.T) {
	listener := event.NewDummyListener()
	emitter := event.NewEmitter()
	emitter.AddObserver(&panickingObserver{})
	emitter.AddObserver(listener)

	require.NotPanics(t, func() {
		emitter.Emit(event.Notification{PlayerName: "Someone"})
	})
	require.Len(t, listener.ReceivedPayloads(), 1)
}

func TestRemoveObserver(t *testing.T) {
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitter := event.NewEmitter()
	emitter.AddObserver(listenerOne)
	emitter.AddObserver(listenerTwo)
	emitter.RemoveObserver(listenerOne)
	emitter.RemoveObserver(event.NewDummyListener())

	emitter.Emit(event.Notification{PlayerName: "Someone"})

	require.Empty(t, listenerOne.ReceivedPayloads())
	require.Len(t, listenerTwo.ReceivedPayloads(), 1)
	require.Equal(t, 1, emitter.Len())
}

func TestStatusText(t *testing.T) {
	require.Equal(t, "WINNER: Alice HAS WON!", event.WinnerText("Alice"))
	require.Equal(t, "YOU HAVE PLAYABLE CARD", event.StatusPlayableCard.String())
	require.Equal(t, " ", event.StatusStandard.String())
}
