package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsSessionIDIndex   = "session_id-index"
)

type paymentItem struct {
	ID               string  `dynamodbav:"id"`
	UserID           string  `dynamodbav:"user_id"`
	Kind             string  `dynamodbav:"kind"`
	ItemID           string  `dynamodbav:"item_id,omitempty"`
	Status           string  `dynamodbav:"status"`
	Amount           float64 `dynamodbav:"amount"`
	EducatorShare    float64 `dynamodbav:"educator_share"`
	AdminShare       float64 `dynamodbav:"admin_share"`
	SessionID        string  `dynamodbav:"session_id,omitempty"`
	PaymentIntentID  string  `dynamodbav:"payment_intent_id,omitempty"`
	FulfillmentError string  `dynamodbav:"fulfillment_error,omitempty"`
	Metadata         string  `dynamodbav:"metadata,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: session_id-index (PK: session_id)
//
// The completed/failed transitions are conditional updates matching
// status == pending, which is what makes fulfillment at-most-once.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it, err := toPaymentItem(p)
	if err != nil {
		return entities.Payment{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsSessionIDIndex),
		KeyConditionExpression: aws.String("session_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) SetSessionID(ctx context.Context, id, sessionID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET session_id = :sid, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: sessionID},
			":now": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

// CompletePending performs the atomic pending -> completed transition.
// Returns false when another delivery already won it.
func (r *PaymentDynamoRepository) CompletePending(ctx context.Context, id, paymentIntentID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :completed, payment_intent_id = :pi, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
			":pending":   &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":pi":        &types.AttributeValueMemberS{Value: paymentIntentID},
			":now":       &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MarkFailed moves a pending payment to failed. A payment that already left
// pending is left untouched.
func (r *PaymentDynamoRepository) MarkFailed(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :failed, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":failed":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusFailed)},
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":now":     &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil
		}
	}
	return err
}

// RecordFulfillmentError stamps a completed payment whose fulfillment did not
// finish, so operators can query for them instead of reading logs.
func (r *PaymentDynamoRepository) RecordFulfillmentError(ctx context.Context, id, cause string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET fulfillment_error = :cause, updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cause": &types.AttributeValueMemberS{Value: cause},
			":now":   &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

func toPaymentItem(p entities.Payment) (paymentItem, error) {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return paymentItem{}, err
	}
	return paymentItem{
		ID:               p.ID,
		UserID:           p.UserID,
		Kind:             string(p.Kind),
		ItemID:           p.ItemID,
		Status:           string(p.Status),
		Amount:           p.Amount,
		EducatorShare:    p.EducatorShare,
		AdminShare:       p.AdminShare,
		SessionID:        p.SessionID,
		PaymentIntentID:  p.PaymentIntentID,
		FulfillmentError: p.FulfillmentError,
		Metadata:         string(meta),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	var meta entities.PaymentMetadata
	if it.Metadata != "" {
		if err := json.Unmarshal([]byte(it.Metadata), &meta); err != nil {
			return entities.Payment{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Payment{
		ID:               it.ID,
		UserID:           it.UserID,
		Kind:             entities.PurchaseKind(it.Kind),
		ItemID:           it.ItemID,
		Status:           entities.PaymentStatus(it.Status),
		Amount:           it.Amount,
		EducatorShare:    it.EducatorShare,
		AdminShare:       it.AdminShare,
		SessionID:        it.SessionID,
		PaymentIntentID:  it.PaymentIntentID,
		FulfillmentError: it.FulfillmentError,
		Metadata:         meta,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
