// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие симуляции. Data несёт одну из структур из types.go.
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию. Отписать её нельзя:
// функции несравнимы.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий. Вызывается только из потока симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener, more ...EventType) {
	for _, t := range append([]EventType{eventType}, more...) {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch — отправка события всем подписчикам. Nil-диспетчер молча ничего не делает.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit — короткая форма Dispatch.
func (d *Dispatcher) Emit(eventType EventType, data any) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
