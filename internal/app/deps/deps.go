package deps

import (
	"context"
	"sync"
	"time"

	"volunteercal/internal/config"
	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/email"
	"volunteercal/internal/core/domain/event"
	dl "volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/profile"
	"volunteercal/internal/core/domain/reminder"
	duow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/domain/user"
	dbevent "volunteercal/internal/db/event"
	dbnotification "volunteercal/internal/db/notification"
	dbprofile "volunteercal/internal/db/profile"
	dbreminder "volunteercal/internal/db/reminder"
	uow "volunteercal/internal/db/unit_of_work"
	emailtransport "volunteercal/internal/implementations/email_transport"
	"volunteercal/internal/implementations/identity"
	"volunteercal/internal/implementations/logging"
	"volunteercal/internal/implementations/metrics"
	notificationpublisher "volunteercal/internal/implementations/notification_publisher"
	reminderclaimer "volunteercal/internal/implementations/reminder_claimer"
	"volunteercal/internal/rabbitmq"
	rabbitmqnotification "volunteercal/internal/rabbitmq/publishers/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig *aws.Config
	Logger    dl.Logger

	DB    *pgxpool.Pool
	Redis *redis.Client
	// Rabbitmq is nil when no broker is configured.
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	UnitOfWork             duow.UnitOfWork
	ReminderRepository     reminder.Repository
	NotificationRepository notification.Repository
	EventRepository        event.Repository
	ProfileRepository      profile.Repository

	Authenticator user.Authenticator
	ServiceKey    string

	EmailTransport email.Transport
	EmailSender    email.Address

	ReminderClaimer reminder.Claimer
	Metrics         *metrics.Prometheus

	// NotificationPublisher broadcasts new notifications to every API replica.
	NotificationPublisher notification.Publisher
	// NotificationStream delivers notifications to clients connected to this process.
	NotificationStream notification.Publisher
}

func InitDeps(cfg *config.Config) (*Deps, func()) {
	deps := &Deps{Config: cfg}

	closeLogger := deps.initLogger()
	deps.initAwsConfig()

	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)
	deps.NotificationRepository = dbnotification.NewPgxNotificationRepository(deps.DB)
	deps.EventRepository = dbevent.NewPgxEventRepository(deps.DB)
	deps.ProfileRepository = dbprofile.NewPgxProfileRepository(deps.DB)

	deps.Authenticator = identity.NewJWT(cfg.JwtSecret)
	deps.ServiceKey = cfg.ServiceKey

	deps.initEmailTransport()
	deps.EmailSender = email.Address{Name: cfg.SenderName, Email: c.NewEmail(cfg.SenderEmail)}

	deps.ReminderClaimer = reminderclaimer.NewRedis(deps.Redis, cfg.ReminderClaimTTL)
	deps.Metrics = metrics.NewPrometheus(prometheus.DefaultRegisterer)

	closeNotificationPublisher := deps.initNotificationPublisher()
	deps.NotificationStream = notificationpublisher.NewSSE(deps.SseServer)

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeNotificationPublisher,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}
		wg.Wait()

		closeRabbitmqConn()
		closeLogger()
	}
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initAwsConfig() {
	if emailtransport.Provider(deps.Config.EmailProvider) != emailtransport.ProviderSES {
		return
	}
	if deps.Config.AwsAccessKey == "" || deps.Config.AwsSecretKey == "" {
		deps.Logger.Warning(context.Background(), "AWS credentials are not set, SES is disabled.")
		return
	}
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not load AWS config.", dl.Entry("err", err))
		panic(err)
	}
	deps.AwsConfig = &cfg
}

func (deps *Deps) initEmailTransport() {
	transport, err := emailtransport.New(emailtransport.Config{
		Provider:       emailtransport.Provider(deps.Config.EmailProvider),
		ResendAPIKey:   deps.Config.ResendAPIKey,
		SendGridAPIKey: deps.Config.SendGridAPIKey,
		AWSConfig:      deps.AwsConfig,
	})
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create email transport.", dl.Entry("err", err))
		panic(err)
	}
	if _, ok := transport.(*emailtransport.NotConfigured); ok {
		deps.Logger.Warning(
			context.Background(),
			"Email provider is not configured, reminder emails will fail.",
			dl.Entry("provider", deps.Config.EmailProvider),
		)
	}
	deps.EmailTransport = transport
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	if deps.Config.RabbitmqURL == "" {
		deps.Logger.Warning(context.Background(), "RabbitMQ is not configured, realtime notifications are disabled.")
		return func() {}
	}
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initNotificationPublisher() func() {
	if deps.Rabbitmq == nil {
		deps.NotificationPublisher = notificationpublisher.NewLog(deps.Logger)
		return func() {}
	}
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	exchange := deps.Config.RabbitmqNotificationsExchange
	if err := rabbitmqChannel.DeclareFanout(exchange); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not create RabbitMQ exchange.",
			dl.Entry("err", err),
			dl.Entry("exchange", exchange),
		)
		panic(err)
	}

	deps.NotificationPublisher = rabbitmqnotification.NewRabbitMQ(deps.Logger, rabbitmqChannel, exchange)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down notification publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Notification publisher shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}
