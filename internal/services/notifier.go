package services

import (
	"context"
	"log"
	"sync"
)

// Notification is a confirmation email to the volunteer who applied.
type Notification struct {
	Email     string
	ProjectID uint
}

// Notifier delivers notifications through a bounded queue of workers.
// Delivery is fire-and-forget: a full queue drops the notification and the
// caller's request is unaffected.
type Notifier struct {
	queue chan Notification
	wg    sync.WaitGroup
}

func NewNotifier(workers, queueSize int) *Notifier {
	n := &Notifier{
		queue: make(chan Notification, queueSize),
	}

	for i := 1; i <= workers; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}

	return n
}

func (n *Notifier) Enqueue(msg Notification) bool {
	select {
	case n.queue <- msg:
		return true
	default:
		log.Printf("notifier: queue full, dropping notification for %s", msg.Email)
		return false
	}
}

func (n *Notifier) worker(workerID int) {
	defer n.wg.Done()

	for msg := range n.queue {
		n.deliver(workerID, msg)
	}
}

func (n *Notifier) deliver(workerID int, msg Notification) {
	log.Printf("notifier %d: email notification sent to %s for project %d", workerID, msg.Email, msg.ProjectID)
}

func (n *Notifier) Shutdown(ctx context.Context) {
	close(n.queue)

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("notifier shut down cleanly")
	case <-ctx.Done():
		log.Println("notifier shutdown timed out")
	}
}
