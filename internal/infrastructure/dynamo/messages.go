package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/careerlift/careerlift-api/internal/domain"
)

// ContactMessageRepo provides typed DynamoDB operations for the contact
// messages table.
type ContactMessageRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewContactMessageRepo(client *dynamodb.Client, tableName string) *ContactMessageRepo {
	return &ContactMessageRepo{client: client, tableName: tableName}
}

func (r *ContactMessageRepo) Put(ctx context.Context, m *domain.ContactMessage) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal contact message: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}
