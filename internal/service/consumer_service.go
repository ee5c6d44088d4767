package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"studentdrive-be/internal/dto"
	"studentdrive-be/internal/entity"
	"studentdrive-be/internal/repository/specification"
	"studentdrive-be/internal/repository/unitofwork"
	"studentdrive-be/pkg/embedding"
	"studentdrive-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedContentMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.embeddingProvider == nil {
		log.Printf("[WARN] No embedding provider configured, skipping content %s", payload.ContentId)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing content embedding for ContentId: %s", payload.ContentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	content, err := uow.ContentRepository().FindOne(ctx, specification.ByID{ID: payload.ContentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get content %s: %v", payload.ContentId, err)
		msg.Nack()
		return
	}
	if content == nil {
		log.Printf("[ERROR] Content not found: %s", payload.ContentId)
		msg.Ack() // Content deleted? Ack.
		return
	}

	document := fmt.Sprintf(`Title: %s
Subject: %s

%s`,
		content.Title,
		content.Subject,
		content.Description,
	)

	// ChunkSize 1500 chars with 200 overlap keeps each chunk well inside
	// embedding context limits.
	chunks := utils.SplitText(document, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.ContentEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(ctx, chunk, embedding.TaskTypeDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of content %s: %v", i, payload.ContentId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.ContentEmbedding{
			Id:             uuid.New(),
			Document:       chunk,
			EmbeddingValue: res.Values,
			ContentId:      content.Id,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.ContentEmbeddingRepository().DeleteByContentId(ctx, content.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.ContentEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Content processed: %d chunks for ContentId: %s", len(newEmbeddings), payload.ContentId)
	msg.Ack()
}
