package di

import (
	"context"

	"user-service/application/ports"
	"user-service/application/services"
	"user-service/infrastructure/config"
	"user-service/infrastructure/persistence"
	"user-service/infrastructure/persistence/dynamodb"
	"user-service/interfaces/http/rest"
	pkgerrors "user-service/pkg/errors"
	"user-service/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const serviceName = "user-service"

// ProvideLogLevel creates the level shared by the logger and the config watcher
func ProvideLogLevel(cfg *config.Config) (zap.AtomicLevel, error) {
	level, err := cfg.Level()
	if err != nil {
		return zap.AtomicLevel{}, err
	}
	return zap.NewAtomicLevelAt(level), nil
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", serviceName)), nil
}

// ProvideTracer creates the X-Ray tracer, or nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer(serviceName)
}

// ProvideMetrics creates the Prometheus collector, or nil when metrics are disabled
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewCollector("user_service")
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config, tracer *observability.Tracer) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if tracer != nil {
		tracer.InstrumentAWS(&awsCfg)
	}
	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideUserRepository creates the user repository, instrumented when metrics are enabled
func ProvideUserRepository(
	client *awsdynamodb.Client,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) ports.UserRepository {
	repo := dynamodb.NewUserRepository(client, cfg.DynamoDBTable, logger)
	if metrics == nil {
		return repo
	}
	return persistence.NewMetricsUserRepository(repo, metrics, cfg.DynamoDBTable)
}

// ProvideUserService creates the user service
func ProvideUserService(repo ports.UserRepository, logger *zap.Logger) *services.UserService {
	return services.NewUserService(repo, logger)
}

// ProvideErrorHandler creates the HTTP error handler
func ProvideErrorHandler(logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	service *services.UserService,
	errorHandler *pkgerrors.ErrorHandler,
	client *awsdynamodb.Client,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(service, errorHandler, rest.Options{
		EnableCORS:     cfg.EnableCORS,
		AllowedOrigins: cfg.AllowedOrigins,
		Metrics:        metrics,
		Tracer:         tracer,
		ReadinessCheck: func(ctx context.Context) error {
			_, err := client.DescribeTable(ctx, &awsdynamodb.DescribeTableInput{
				TableName: aws.String(cfg.DynamoDBTable),
			})
			return err
		},
	}, logger)
}
