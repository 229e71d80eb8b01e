package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feedhub/feedhub-service/infra"
	"github.com/feedhub/feedhub-service/infra/produce"
	amqp "github.com/rabbitmq/amqp091-go"
)

type EmailConsumer struct {
	channel *amqp.Channel
	infra   *infra.Infra
}

func NewEmailConsumer(channel *amqp.Channel, infra *infra.Infra) *EmailConsumer {
	return &EmailConsumer{
		channel: channel,
		infra:   infra,
	}
}

func (c *EmailConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.EmailConfirmationQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register email consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Email Consumer] Started listening on queue: %s", produce.EmailConfirmationQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Email Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Email Consumer] Channel closed")
					return
				}
				c.handleEmail(ctx, msg)
			}
		}
	}()

	return nil
}

// handleEmail delivers one queued message through the mailer. Delivery is
// best effort, matching the registration flow's expectations: a failed send
// is logged and dropped, not requeued.
func (c *EmailConsumer) handleEmail(ctx context.Context, msg amqp.Delivery) {
	var payload produce.EmailMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Email Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	mail := infra.MailRequest{
		To:      payload.Recipient,
		Subject: "Verify Your Email",
		HTML: fmt.Sprintf(
			"<h3>Welcome to FeedHub</h3><p>%s</p><a href=%q>Verify Email</a>",
			payload.Content,
			payload.ActionUrl,
		),
	}

	if err := c.infra.MailerService.SendMail(ctx, mail); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Email Consumer] Failed to deliver email to %s: %v", payload.Recipient, err)
		_ = msg.Nack(false, false)
		return
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Email Consumer] Delivered %s email to %s", payload.Type, payload.Recipient)
	_ = msg.Ack(false)
}
