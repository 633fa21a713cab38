package di

import (
	"user-service/application/ports"
	"user-service/application/services"
	"user-service/infrastructure/config"
	"user-service/interfaces/http/rest"
	"user-service/pkg/observability"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	LogLevel    zap.AtomicLevel
	Logger      *zap.Logger
	DynamoDB    *awsdynamodb.Client
	UserRepo    ports.UserRepository
	UserService *services.UserService
	Metrics     *observability.Collector
	Tracer      *observability.Tracer
	Router      *rest.Router
}
