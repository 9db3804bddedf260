// Package queue provides conversion job queue operations using goqite.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"

	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/db"
)

// DefaultName is the goqite queue name used for conversions.
const DefaultName = "conversions"

// Defaults applied by goqite when Options leaves them zero.
const (
	DefaultMaxReceive = 3
	DefaultTimeout    = 5 * time.Second
)

// ConversionJob asks for a stored selection of nodes to be converted.
type ConversionJob struct {
	ID        string          `json:"id"`
	NodeIDs   []string        `json:"node_ids"`
	Settings  bionic.Settings `json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
}

// Options configures the goqite queue.
type Options struct {
	Name       string
	MaxReceive int           // deliveries before a message is dropped
	Timeout    time.Duration // visibility timeout of a received message
}

// Queue manages conversion jobs using goqite.
type Queue struct {
	queue      *goqite.Queue
	name       string
	maxReceive int
	timeout    time.Duration
	Events     *EventRecorder
}

// NewQueue creates a conversion queue over the database. The goqite schema
// is created by the database migrations.
func NewQueue(d *db.DB, opts Options) (*Queue, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.MaxReceive <= 0 {
		opts.MaxReceive = DefaultMaxReceive
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	events, err := NewEventRecorder(d.SqlConn())
	if err != nil {
		return nil, fmt.Errorf("create event recorder: %w", err)
	}

	q := goqite.New(goqite.NewOpts{
		DB:         d.DB,
		Name:       opts.Name,
		MaxReceive: opts.MaxReceive,
		Timeout:    opts.Timeout,
	})

	return &Queue{
		queue:      q,
		name:       opts.Name,
		maxReceive: opts.MaxReceive,
		timeout:    opts.Timeout,
		Events:     events,
	}, nil
}

// Name returns the goqite queue name.
func (q *Queue) Name() string {
	return q.name
}

// MaxReceive returns how many times a message is delivered before goqite
// stops handing it out.
func (q *Queue) MaxReceive() int {
	return q.maxReceive
}

// Timeout returns the visibility timeout of a received message.
func (q *Queue) Timeout() time.Duration {
	return q.timeout
}

// Enqueue adds a conversion job to the queue.
func (q *Queue) Enqueue(ctx context.Context, job ConversionJob) (string, error) {
	return q.EnqueueAfter(ctx, job, 0)
}

// EnqueueAfter adds a conversion job that becomes visible after delay.
func (q *Queue) EnqueueAfter(ctx context.Context, job ConversionJob, delay time.Duration) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{
		Body:  body,
		Delay: delay,
	}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	return job.ID, nil
}

// Receive gets the next job from the queue. It returns nil when the queue is empty.
func (q *Queue) Receive(ctx context.Context) (*ConversionJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job ConversionJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Extend extends the timeout for a message being processed.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a message from the queue (job completed).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}
