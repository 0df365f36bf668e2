package event

type DummyListener struct {
	receivedPayloads []Notification
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]Notification, 0)}
}

func (l *DummyListener) ReceivedPayloads() []Notification {
	return l.receivedPayloads
}

func (l *DummyListener) Last() (Notification, bool) {
	if len(l.receivedPayloads) == 0 {
		return Notification{}, false
	}
	return l.receivedPayloads[len(l.receivedPayloads)-1], true
}

func (l *DummyListener) OnNotification(payload Notification) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
