package event

import (
	"fmt"

	"github.com/ratel-online/core/log"
)

// Notification describes the outcome of one state-changing transition.
type Notification struct {
	PlayerName string `json:"playerName"`
	TopCard    string `json:"topCard"`
	Player     string `json:"player"`
	Status     Status `json:"status"`
	Text       string `json:"text"`
	// Wild is set while the current rank is a wild kind, so a UI can
	// prompt for a colour.
	Wild  bool   `json:"wild"`
	Phase string `json:"phase"`
}

type Observer interface {
	OnNotification(Notification)
}

// Emitter delivers notifications to its observers synchronously, in
// registration order. A panicking observer is logged and skipped.
type Emitter struct {
	observers []Observer
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver drops the first registration of observer, compared by
// reference.
func (e *Emitter) RemoveObserver(observer Observer) {
	for i, registered := range e.observers {
		if registered == observer {
			e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
			return
		}
	}
}

func (e *Emitter) Len() int {
	return len(e.observers)
}

func (e *Emitter) Emit(notification Notification) {
	for _, observer := range e.observers {
		notify(observer, notification)
	}
}

func notify(observer Observer, notification Notification) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("[Emitter] observer %T panicked: %v\n", observer, err)
		}
	}()
	observer.OnNotification(notification)
}

func (n Notification) String() string {
	return fmt.Sprintf("%s | top %s | %s", n.PlayerName, n.TopCard, n.Text)
}
