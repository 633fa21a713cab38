package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableActiveTimeout = 2 * time.Minute

// TableClient is the subset of the DynamoDB API used to bootstrap the user table.
type TableClient interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTable creates the user table when it does not exist and waits until it is
// active. Meant for local DynamoDB endpoints; production tables are provisioned
// outside the service.
func EnsureTable(ctx context.Context, client TableClient, tableName string, logger *zap.Logger) error {
	describe := &dynamodb.DescribeTableInput{TableName: aws.String(tableName)}

	_, err := client.DescribeTable(ctx, describe)
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table %s: %w", tableName, err)
	}

	logger.Info("Creating DynamoDB table", zap.String("table", tableName))

	_, err = client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrUserID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrUserID), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, describe, tableActiveTimeout); err != nil {
		return fmt.Errorf("table %s did not become active: %w", tableName, err)
	}

	logger.Info("DynamoDB table ready", zap.String("table", tableName))
	return nil
}
