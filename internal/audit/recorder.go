package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Detail   string
}

// Recorder guarda a trilha de comandos em memória e ecoa no log do processo.
// Síncrono de propósito: cada comando termina antes da próxima leitura, então
// a trilha nunca fica atrás do store.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Record(ev Event) {
	r.events = append(r.events, ev)

	if ev.Detail != "" {
		log.Printf("audit: %s %s %s (%s)", ev.Action, ev.Entity, ev.EntityID, ev.Detail)
		return
	}
	log.Printf("audit: %s %s %s", ev.Action, ev.Entity, ev.EntityID)
}

func (r *Recorder) Events() []Event {
	return append([]Event(nil), r.events...)
}
