package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"complaint-trends-service/internal/model"
	"complaint-trends-service/internal/repository"
)

// NotificationWorker records alert notifications off the request path.
type NotificationWorker interface {
	Enqueue(n model.Notification)
	Shutdown()
}

type batchNotificationWorker struct {
	repo          repository.ComplaintRepository
	log           *logrus.Entry
	queue         chan model.Notification
	batchSize     int
	flushInterval time.Duration
	wg            sync.WaitGroup
}

// NewBatchNotificationWorker starts a worker that batches notification
// inserts. Flushes happen when the batch fills or the interval elapses.
func NewBatchNotificationWorker(repo repository.ComplaintRepository, log *logrus.Entry, bufferSize, batchSize int, interval time.Duration) *batchNotificationWorker {
	worker := &batchNotificationWorker{
		repo:          repo,
		log:           log,
		queue:         make(chan model.Notification, bufferSize),
		batchSize:     batchSize,
		flushInterval: interval,
	}
	worker.wg.Add(1)
	go worker.startLoop()
	return worker
}

// Enqueue blocks when the buffer is full.
func (w *batchNotificationWorker) Enqueue(n model.Notification) {
	w.queue <- n
}

// Shutdown stops intake and blocks until the queue is drained.
func (w *batchNotificationWorker) Shutdown() {
	w.log.Info("notification worker shutting down, draining queue")
	close(w.queue)
	w.wg.Wait()
	w.log.Info("notification worker stopped")
}

func (w *batchNotificationWorker) startLoop() {
	defer w.wg.Done()

	var batch []model.Notification
	ticker := time.NewTicker(w.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case n, ok := <-w.queue:
			if !ok {
				if len(batch) > 0 {
					w.flush(batch)
				}
				return
			}

			batch = append(batch, n)
			if len(batch) >= w.batchSize {
				w.flush(batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				w.flush(batch)
				batch = nil
			}
		}
	}
}

func (w *batchNotificationWorker) flush(notifications []model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := w.repo.CreateNotifications(ctx, notifications); err != nil {
		w.log.WithError(err).Error("notification flush failed")
		return
	}
	w.log.WithField("count", len(notifications)).Debug("notifications flushed")
}
