package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/careerlift/careerlift-api/internal/domain"
)

// RegistrationRepo provides typed DynamoDB operations for the event
// registrations table. PK: registration_id, with an event_id GSI for
// capacity checks.
type RegistrationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewRegistrationRepo(client *dynamodb.Client, tableName string) *RegistrationRepo {
	return &RegistrationRepo{client: client, tableName: tableName}
}

func (r *RegistrationRepo) Put(ctx context.Context, reg *domain.EventRegistration) error {
	item, err := attributevalue.MarshalMap(reg)
	if err != nil {
		return fmt.Errorf("marshal registration: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// CountByEvent returns the number of registrations recorded for an event.
func (r *RegistrationRepo) CountByEvent(ctx context.Context, eventID string) (int, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("event_id-index"),
		KeyConditionExpression: aws.String("event_id = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: eventID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

// ListByEvent returns all registrations for an event via the event_id GSI.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.EventRegistration, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("event_id-index"),
		KeyConditionExpression: aws.String("event_id = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		return nil, err
	}
	var regs []domain.EventRegistration
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}
