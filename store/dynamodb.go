package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	apperrors "github.com/rrinconline/sticker-lab-backend/errors"
	"github.com/rrinconline/sticker-lab-backend/types"
)

type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoStore writes records as DynamoDB items keyed by the record id.
type DynamoStore struct {
	client dynamoAPI
}

func NewDynamoStore(client dynamoAPI) *DynamoStore {
	return &DynamoStore{client: client}
}

func (s *DynamoStore) Put(ctx context.Context, table string, rec types.Record) error {
	item, err := dynamoItem(rec)
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return apperrors.FromAWS("dynamodb", fmt.Errorf("dynamodb put %s into %s: %w", rec.RecordID(), table, err))
	}
	return nil
}

// dynamoItem goes through the record's JSON form so item attribute names
// match the JSON field names. Amounts are kept as decimal strings.
func dynamoItem(rec types.Record) (map[string]ddbtypes.AttributeValue, error) {
	payload, err := encodeRecord(rec)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode record document: %w", err)
	}
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dynamodb item: %w", err)
	}
	return item, nil
}
