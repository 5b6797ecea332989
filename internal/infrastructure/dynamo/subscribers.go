package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/careerlift/careerlift-api/internal/domain"
)

// SubscriberRepo provides typed DynamoDB operations for the newsletter
// subscribers table. Email is the partition key.
type SubscriberRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSubscriberRepo(client *dynamodb.Client, tableName string) *SubscriberRepo {
	return &SubscriberRepo{client: client, tableName: tableName}
}

// Put stores a subscriber. Signing up an already-subscribed email returns
// domain.ErrConflict via a conditional write.
func (r *SubscriberRepo) Put(ctx context.Context, s *domain.Subscriber) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal subscriber: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("email already subscribed: %w", domain.ErrConflict)
	}
	return err
}

func (r *SubscriberRepo) Get(ctx context.Context, email string) (*domain.Subscriber, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("subscriber not found: %w", domain.ErrNotFound)
	}
	var s domain.Subscriber
	if err := attributevalue.UnmarshalMap(out.Item, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a subscriber (unsubscribe).
func (r *SubscriberRepo) Delete(ctx context.Context, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	return err
}
