package rabbitmq

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"volunteercal/internal/core/domain/logging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection wraps amqp.Connection and redials it when the broker drops it.
type Connection struct {
	*amqp.Connection
	log logging.Logger
}

// Channel opens a channel that is recreated after it gets closed by the broker.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	channel := &Channel{
		Channel: ch,
		log:     c.log,
	}

	go func() {
		for {
			reason, ok := <-channel.Channel.NotifyClose(make(chan *amqp.Error))
			if !ok || channel.IsClosed() {
				// Closed on purpose. Set the flag if the connection went first.
				channel.Close()
				break
			}

			c.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", *reason))
			for {
				time.Sleep(reconnectDelay)

				ch, err := c.Connection.Channel()
				if err == nil {
					c.log.Info(context.Background(), "RabbitMQ channel recreated.")
					channel.Channel = ch
					break
				}

				c.log.Error(context.Background(), "RabbitMQ channel recreation failed.", logging.Entry("err", err))
			}
		}
	}()

	return channel, nil
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	connection := &Connection{
		Connection: conn,
		log:        log,
	}

	go func() {
		for {
			reason, ok := <-connection.Connection.NotifyClose(make(chan *amqp.Error))
			if !ok {
				log.Info(context.Background(), "RabbitMQ connection closed.")
				break
			}

			log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", *reason))
			for {
				time.Sleep(reconnectDelay)

				conn, err := amqp.Dial(url)
				if err == nil {
					connection.Connection = conn
					log.Info(context.Background(), "RabbitMQ reconnected.")
					break
				}
				log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
			}
		}
	}()

	return connection, nil
}

// Channel wraps amqp.Channel.
type Channel struct {
	*amqp.Channel
	closed int32
	log    logging.Logger
}

// IsClosed reports whether Close was called.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if ch.IsClosed() {
		return amqp.ErrClosed
	}

	atomic.StoreInt32(&ch.closed, 1)

	return ch.Channel.Close()
}

func (ch *Channel) DeclareFanout(exchange string) error {
	return ch.Channel.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil)
}

// ConsumeFanout subscribes to every message of a fanout exchange through an
// exclusive server-named queue. The queue is declared again after a channel
// recovery. Deliveries stop only when the channel is closed with Close.
func (ch *Channel) ConsumeFanout(exchange string) (<-chan amqp.Delivery, error) {
	if err := ch.DeclareFanout(exchange); err != nil {
		return nil, err
	}

	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		for {
			d, err := ch.subscribe(exchange)
			if err != nil {
				ch.log.Error(
					context.Background(),
					"RabbitMQ subscribe failed.",
					logging.Entry("exchange", exchange),
					logging.Entry("err", err),
				)
				time.Sleep(reconnectDelay)
				if ch.IsClosed() {
					return
				}
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// The closed flag may be set a bit after the delivery channel ends.
			time.Sleep(reconnectDelay)

			if ch.IsClosed() {
				ch.log.Info(context.Background(), "Channel is closed, stop consuming.", logging.Entry("exchange", exchange))
				return
			}
		}
	}()

	return deliveries, nil
}

func (ch *Channel) subscribe(exchange string) (<-chan amqp.Delivery, error) {
	if err := ch.DeclareFanout(exchange); err != nil {
		return nil, err
	}
	q, err := ch.Channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return nil, err
	}
	if err := ch.Channel.QueueBind(q.Name, "", exchange, false, nil); err != nil {
		return nil, err
	}
	return ch.Channel.Consume(q.Name, "", false, true, false, false, nil)
}
