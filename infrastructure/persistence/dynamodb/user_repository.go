package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"user-service/application/ports"
	"user-service/domain/core/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Attribute names of the user table.
const (
	attrUserID      = "user_id"
	attrUsername    = "username"
	attrEmail       = "email"
	attrCPF         = "cpf"
	attrPhoneNumber = "phone_number"
)

// DBClient defines the DynamoDB operations the repository needs, making it testable.
// *dynamodb.Client satisfies it.
type DBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// UserRepository implements ports.UserRepository on a single DynamoDB table keyed by user_id
type UserRepository struct {
	client    DBClient
	tableName string
	logger    *zap.Logger
}

var _ ports.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new UserRepository
func NewUserRepository(client DBClient, tableName string, logger *zap.Logger) *UserRepository {
	return &UserRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// userItem represents the DynamoDB item structure for a user
type userItem struct {
	UserID      string `dynamodbav:"user_id"`
	Username    string `dynamodbav:"username"`
	Email       string `dynamodbav:"email"`
	CPF         string `dynamodbav:"cpf"`
	PhoneNumber string `dynamodbav:"phone_number"`
}

func toItem(u *entities.User) userItem {
	return userItem{
		UserID:      u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		CPF:         u.CPF,
		PhoneNumber: u.PhoneNumber,
	}
}

func (i userItem) toEntity() (*entities.User, error) {
	id, err := uuid.Parse(i.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", attrUserID, i.UserID, err)
	}
	return &entities.User{
		ID:          id,
		Username:    i.Username,
		Email:       i.Email,
		CPF:         i.CPF,
		PhoneNumber: i.PhoneNumber,
	}, nil
}

func userKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUserID: &types.AttributeValueMemberS{Value: id.String()},
	}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, bool, error) {
	r.logger.Info("Fetching user", zap.String("uuid", id.String()))

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       userKey(id),
	})
	if err != nil {
		r.logFailure("Failed to get user from DynamoDB", id, err)
		return nil, false, fmt.Errorf("failed to get user: %w", err)
	}

	if len(result.Item) == 0 {
		return nil, false, nil
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	user, err := item.toEntity()
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Save persists a user to DynamoDB, replacing any existing item with the same key
func (r *UserRepository) Save(ctx context.Context, user *entities.User) error {
	r.logger.Info("Saving user",
		zap.String("uuid", user.ID.String()),
		zap.String("username", user.Username),
	)

	av, err := attributevalue.MarshalMap(toItem(user))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.logFailure("Failed to save user to DynamoDB", user.ID, err)
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Update sets every attribute of the user on the stored item and returns the item
// as DynamoDB holds it after the write.
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	r.logger.Info("Updating user", zap.String("uuid", user.ID.String()))

	update := expression.Set(expression.Name(attrUsername), expression.Value(user.Username)).
		Set(expression.Name(attrEmail), expression.Value(user.Email)).
		Set(expression.Name(attrCPF), expression.Value(user.CPF)).
		Set(expression.Name(attrPhoneNumber), expression.Value(user.PhoneNumber))

	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       userKey(user.ID),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		r.logFailure("Failed to update user in DynamoDB", user.ID, err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(result.Attributes, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return item.toEntity()
}

// Delete removes a user. DynamoDB treats deleting a missing key as success.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.logger.Info("Deleting user", zap.String("uuid", id.String()))

	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       userKey(id),
	}); err != nil {
		r.logFailure("Failed to delete user from DynamoDB", id, err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (r *UserRepository) logFailure(msg string, id uuid.UUID, err error) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("uuid", id.String()),
		zap.String("table", r.tableName),
	}
	if code := ErrorCode(err); code != "" {
		fields = append(fields, zap.String("errorCode", code))
	}
	r.logger.Error(msg, fields...)
}

// ErrorCode returns the AWS API error code carried by err, or "" when err did not
// come from the service.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
