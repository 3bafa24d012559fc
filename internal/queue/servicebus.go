package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/google/uuid"

	"pawfectfind/internal/model"
)

// ServiceBusPublisher implements Publisher on top of an Azure Service Bus
// queue sender.
type ServiceBusPublisher struct {
	client *azservicebus.Client
	sender *azservicebus.Sender
}

var _ Publisher = (*ServiceBusPublisher)(nil)

// NewServiceBusPublisher connects to the namespace and opens a sender for
// the booking queue.
func NewServiceBusPublisher(connectionString, queueName string) (*ServiceBusPublisher, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("service bus connection string is required")
	}
	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create service bus client: %w", err)
	}
	sender, err := client.NewSender(queueName, nil)
	if err != nil {
		return nil, fmt.Errorf("create sender for %s: %w", queueName, err)
	}
	return &ServiceBusPublisher{client: client, sender: sender}, nil
}

// Publish serializes the booking message as JSON and sends it to the queue.
func (p *ServiceBusPublisher) Publish(ctx context.Context, msg model.BookingMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal booking message: %w", err)
	}
	contentType := "application/json"
	messageID := uuid.NewString()
	sbMsg := &azservicebus.Message{
		Body:        body,
		ContentType: &contentType,
		MessageID:   &messageID,
	}
	if err := p.sender.SendMessage(ctx, sbMsg, nil); err != nil {
		return fmt.Errorf("send booking message: %w", err)
	}
	return nil
}

// Close releases the sender and the client.
func (p *ServiceBusPublisher) Close(ctx context.Context) error {
	if err := p.sender.Close(ctx); err != nil {
		_ = p.client.Close(ctx)
		return err
	}
	return p.client.Close(ctx)
}

// NewServiceBusReceiver opens a receiver for the booking queue, for use with
// the Consumer.
func NewServiceBusReceiver(connectionString, queueName string) (*azservicebus.Receiver, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("service bus connection string is required")
	}
	client, err := azservicebus.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("create service bus client: %w", err)
	}
	receiver, err := client.NewReceiverForQueue(queueName, nil)
	if err != nil {
		return nil, fmt.Errorf("create receiver for %s: %w", queueName, err)
	}
	return receiver, nil
}
