package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

// MessageReceiver is the subset of *azservicebus.Receiver the consumer
// needs; narrowed to an interface so the loop can be tested without a
// broker.
type MessageReceiver interface {
	ReceiveMessages(ctx context.Context, maxMessages int, options *azservicebus.ReceiveMessagesOptions) ([]*azservicebus.ReceivedMessage, error)
	CompleteMessage(ctx context.Context, message *azservicebus.ReceivedMessage, options *azservicebus.CompleteMessageOptions) error
	AbandonMessage(ctx context.Context, message *azservicebus.ReceivedMessage, options *azservicebus.AbandonMessageOptions) error
}

// Handler processes one message body. A non-nil error abandons the message
// so the broker redelivers it (bounded by the queue's max delivery count).
type Handler func(ctx context.Context, body []byte) error

// Consumer drains the booking queue: it receives batches of up to
// Concurrency messages, processes them in parallel, and settles each one.
type Consumer struct {
	receiver    MessageReceiver
	handle      Handler
	concurrency int
	receiveWait time.Duration
	loc         *time.Location
}

// NewConsumer builds a Consumer. concurrency bounds both the batch size and
// the number of in-flight handlers; receiveWait bounds a single receive call.
func NewConsumer(receiver MessageReceiver, handle Handler, concurrency int, receiveWait time.Duration, loc *time.Location) *Consumer {
	if concurrency < 1 {
		concurrency = 1
	}
	if receiveWait <= 0 {
		receiveWait = 30 * time.Second
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Consumer{
		receiver:    receiver,
		handle:      handle,
		concurrency: concurrency,
		receiveWait: receiveWait,
		loc:         loc,
	}
}

// Run receives and processes messages until ctx is done or the transport
// fails. A transport failure is returned to the caller, which decides
// whether to reconnect (the worker restarts the loop after a backoff).
func (c *Consumer) Run(ctx context.Context) error {
	c.logJSON(map[string]any{
		"event":       "consumer_listening",
		"msg":         "listening for messages on booking queue",
		"concurrency": c.concurrency,
	})

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rctx, cancel := context.WithTimeout(ctx, c.receiveWait)
		msgs, err := c.receiver.ReceiveMessages(rctx, c.concurrency, nil)
		cancel()
		if err != nil {
			// An empty receive window is not a failure.
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		var wg sync.WaitGroup
		for _, msg := range msgs {
			wg.Add(1)
			go func(m *azservicebus.ReceivedMessage) {
				defer wg.Done()
				c.process(ctx, m)
			}(msg)
		}
		wg.Wait()
	}
}

func (c *Consumer) process(ctx context.Context, msg *azservicebus.ReceivedMessage) {
	c.logJSON(map[string]any{
		"event":      "message_received",
		"message_id": msg.MessageID,
	})

	if err := c.handle(ctx, msg.Body); err != nil {
		c.logJSON(map[string]any{
			"event":         "message_failed",
			"level":         "error",
			"message_id":    msg.MessageID,
			"error_message": err.Error(),
		})
		// Abandon so the broker retries up to its max delivery count.
		if abandonErr := c.receiver.AbandonMessage(ctx, msg, nil); abandonErr != nil {
			c.logJSON(map[string]any{
				"event":         "message_abandon_failed",
				"level":         "error",
				"message_id":    msg.MessageID,
				"error_message": abandonErr.Error(),
			})
		}
		return
	}

	if err := c.receiver.CompleteMessage(ctx, msg, nil); err != nil {
		c.logJSON(map[string]any{
			"event":         "message_complete_failed",
			"level":         "error",
			"message_id":    msg.MessageID,
			"error_message": err.Error(),
		})
		return
	}

	c.logJSON(map[string]any{
		"event":      "message_processed",
		"message_id": msg.MessageID,
	})
}

func (c *Consumer) logJSON(data map[string]any) {
	data["ts"] = time.Now().In(c.loc).Format(time.RFC3339Nano)
	data["component"] = "queue_consumer"
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}
	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal consumer log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
