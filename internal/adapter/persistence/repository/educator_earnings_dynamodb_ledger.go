package repository

import (
	"context"
	"strconv"

	"shikkha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEducatorsTableName = "educators"

// EducatorEarningsDynamoLedger accumulates course revenue per educator with
// an atomic ADD, so concurrent fulfillments for the same educator never lose
// an update.
//
// Table requirements:
//   - PK: id (string)

type EducatorEarningsDynamoLedger struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEducatorEarningsLedger = (*EducatorEarningsDynamoLedger)(nil)

func NewEducatorEarningsDynamoLedger(ddb *dynamodb.Client) *EducatorEarningsDynamoLedger {
	return &EducatorEarningsDynamoLedger{
		ddb:       ddb,
		tableName: getenvDefault("EDUCATORS_TABLE", defaultEducatorsTableName),
	}
}

func (l *EducatorEarningsDynamoLedger) Credit(ctx context.Context, educatorID string, amount float64) error {
	_, err := l.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(l.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: educatorID},
		},
		UpdateExpression: aws.String("ADD total_earnings :amount SET updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatFloat(amount, 'f', -1, 64)},
			":now":    &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}
