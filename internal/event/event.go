// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Tick uint64      // тик симуляции, на котором событие произошло
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll — подписка на все перечисленные типы
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Queue — подписчик, копящий события, пока хост не заберет их через Drain
type Queue struct {
	events []Event
}

func (q *Queue) OnEvent(event Event) {
	q.events = append(q.events, event)
}

// Drain возвращает накопленные события в порядке поступления и очищает очередь.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len — сколько событий ждет выборки.
func (q *Queue) Len() int { return len(q.events) }
