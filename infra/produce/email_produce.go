package produce

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EmailExchange = "email_exchange"

	EmailConfirmationQueue      = "email.confirmation"
	EmailConfirmationRoutingKey = "email.confirmation"
)

type EmailMessage struct {
	Type          string `json:"type"`
	Recipient     string `json:"recipient"`
	RecipientName string `json:"recipientName,omitempty"`
	Content       string `json:"content"`
	ActionUrl     string `json:"actionUrl,omitempty"`
}

type EmailService struct {
	channel *amqp.Channel
}

func InitEmailService(channel *amqp.Channel) *EmailService {
	err := channel.ExchangeDeclare(
		EmailExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Email exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		EmailConfirmationQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Email confirmation queue: " + err.Error())
	}

	err = channel.QueueBind(
		EmailConfirmationQueue,
		EmailConfirmationRoutingKey,
		EmailExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Email confirmation queue: " + err.Error())
	}

	return &EmailService{
		channel: channel,
	}
}

// SendEmailConfirmation publishes a verification email for asynchronous
// delivery by the consumer binary.
func (s *EmailService) SendEmailConfirmation(ctx context.Context, email, recipientName, content, actionUrl string) error {
	message := EmailMessage{
		Type:          "confirmation",
		Recipient:     email,
		RecipientName: recipientName,
		Content:       content,
		ActionUrl:     actionUrl,
	}

	return s.publishEmail(ctx, EmailConfirmationRoutingKey, message)
}

func (s *EmailService) publishEmail(ctx context.Context, routingKey string, message EmailMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	err = s.channel.PublishWithContext(
		ctx,
		EmailExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish email message: %w", err)
	}

	return nil
}
