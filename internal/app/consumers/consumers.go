package consumers

import (
	"context"

	"volunteercal/internal/app/deps"
	dl "volunteercal/internal/core/domain/logging"
	notificationcreated "volunteercal/internal/rabbitmq/consumers/notification_created"
)

func initNotificationCreatedConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	exchange := deps.Config.RabbitmqNotificationsExchange
	notificationCreatedConsumer := notificationcreated.New(
		deps.Logger,
		rabbitmqChannel,
		exchange,
		deps.NotificationStream,
	)
	if err = notificationCreatedConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("exchange", exchange),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("exchange", exchange))
	return func() { rabbitmqChannel.Close() }
}

// InitConsumers starts forwarding broadcast notifications to the SSE clients of
// this process. Without a broker there is nothing to consume.
func InitConsumers(deps *deps.Deps) func() {
	if deps.Rabbitmq == nil {
		return func() {}
	}

	shutdownNotificationCreatedConsumer := initNotificationCreatedConsumer(deps)

	return func() {
		shutdownNotificationCreatedConsumer()
	}
}
