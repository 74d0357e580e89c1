package notification

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/rabbitmq"
	"volunteercal/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQ broadcasts created notifications to every API replica.
type RabbitMQ struct {
	log      logging.Logger
	channel  channel
	exchange string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if exchange == "" {
		panic("exchange name must not be empty")
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange}
}

func (p *RabbitMQ) PublishNotification(ctx context.Context, n notification.Notification) error {
	message := &schema.Notification{}
	message.FromDomain(n)
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, "", false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Transient,
		MessageId:    string(n.ID),
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("notificationID", n.ID))
		return err
	}
	p.log.Debug(
		ctx,
		"Notification has been published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("notificationID", n.ID),
	)
	return nil
}
