package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"vape-support-be/internal/pkg/convlog"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the conversation-record topic and appends each
// record to the daily JSONL sink, off the request path.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	writer    *convlog.Writer
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	writer *convlog.Writer,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		writer:    writer,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var rec convlog.Record
	if err := json.Unmarshal(msg.Payload, &rec); err != nil {
		log.Printf("[ERROR] Failed to unmarshal conversation record: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.writer.Append(rec)
	msg.Ack()
}
