package ioweb

import "sync"

// Message is a one-shot notification shown on the next page render.
type Message struct {
	Error bool
	Text  string
}

// Flash keeps notifications until a page shows them. It implements
// app.Notifier.
type Flash struct {
	mu   sync.Mutex
	msgs []Message
}

// Success queues a success message.
func (f *Flash) Success(msg string) {
	f.push(Message{Text: msg})
}

// Error queues an error message.
func (f *Flash) Error(msg string) {
	f.push(Message{Error: true, Text: "ERRO: " + msg})
}

func (f *Flash) push(m Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, m)
}

// Pop returns queued messages and forgets them.
func (f *Flash) Pop() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := f.msgs
	f.msgs = nil
	return res
}
