package notificationcreated

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/rabbitmq"
	"volunteercal/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// Consumer forwards notifications broadcast by any process to the clients
// connected to this one.
type Consumer struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	exchange string
	sink     notification.Publisher
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	sink notification.Publisher,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if exchange == "" {
		panic("exchange name must not be empty")
	}
	if sink == nil {
		panic(e.NewNilArgumentError("sink"))
	}

	return &Consumer{log: log, channel: channel, exchange: exchange, sink: sink}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.ConsumeFanout(c.exchange)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.Handle(context.Background(), delivery.Body)
			c.Ack(delivery)
		}
	}()
	return nil
}

// Handle forwards one message. Malformed messages are dropped.
func (c *Consumer) Handle(ctx context.Context, body []byte) {
	message := &schema.Notification{}
	if err := message.Unmarshal(body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal notification.",
			logging.Entry("err", err),
			logging.Entry("body", string(body)),
		)
		return
	}
	n, err := message.ToDomain()
	if err != nil {
		c.log.Error(
			ctx,
			"Got invalid notification.",
			logging.Entry("err", err),
			logging.Entry("notificationID", message.ID),
		)
		return
	}
	if err := c.sink.PublishNotification(ctx, n); err != nil {
		c.log.Warning(
			ctx,
			"Could not forward notification.",
			logging.Entry("notificationID", n.ID),
			logging.Entry("err", err),
		)
	}
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
