package repository

import (
	"context"
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
	defaultBookPurchasesTableName = "book_purchases"
	bookPurchasesStudentIndex     = "student_id-book_id-index"
)

// ErrPurchaseStateConflict is returned when a fulfillment transition races an
// earlier one (e.g. shipping an already-shipped purchase).
var ErrPurchaseStateConflict = errors.New("purchase is not in the expected state")

type bookPurchaseItem struct {
	ID             string                `dynamodbav:"id"`
	StudentID      string                `dynamodbav:"student_id"`
	BookID         string                `dynamodbav:"book_id"`
	PaymentID      string                `dynamodbav:"payment_id"`
	Amount         float64               `dynamodbav:"amount"`
	Quantity       int                   `dynamodbav:"quantity"`
	Status         string                `dynamodbav:"status"`
	Shipping       entities.ShippingInfo `dynamodbav:"shipping"`
	TrackingNumber string                `dynamodbav:"tracking_number,omitempty"`
	DeliveredAt    string                `dynamodbav:"delivered_at,omitempty"`
	CreatedAt      string                `dynamodbav:"created_at"`
	UpdatedAt      string                `dynamodbav:"updated_at"`
}

// BookPurchaseDynamoRepository persists BookPurchase entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-book_id-index (PK: student_id, SK: book_id)

type BookPurchaseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookPurchaseRepository = (*BookPurchaseDynamoRepository)(nil)

func NewBookPurchaseDynamoRepository(ddb *dynamodb.Client) *BookPurchaseDynamoRepository {
	return &BookPurchaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOK_PURCHASES_TABLE", defaultBookPurchasesTableName),
	}
}

func (r *BookPurchaseDynamoRepository) Create(ctx context.Context, p entities.BookPurchase) (entities.BookPurchase, error) {
	av, err := attributevalue.MarshalMap(toBookPurchaseItem(p))
	if err != nil {
		return entities.BookPurchase{}, err
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
		return entities.BookPurchase{}, err
	}
	return p, nil
}

func (r *BookPurchaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookPurchase, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookPurchase{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookPurchase{}, nil
	}

	var it bookPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookPurchase{}, err
	}
	return fromBookPurchaseItem(it), nil
}

func (r *BookPurchaseDynamoRepository) ExistsConfirmedOrDelivered(ctx context.Context, studentID, bookID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookPurchasesStudentIndex),
		KeyConditionExpression: aws.String("student_id = :sid AND book_id = :bid"),
		FilterExpression:       aws.String("#status IN (:confirmed, :shipped, :delivered)"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":       &types.AttributeValueMemberS{Value: studentID},
			":bid":       &types.AttributeValueMemberS{Value: bookID},
			":confirmed": &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusConfirmed)},
			":shipped":   &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusShipped)},
			":delivered": &types.AttributeValueMemberS{Value: string(entities.PurchaseStatusDelivered)},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func (r *BookPurchaseDynamoRepository) MarkShipped(ctx context.Context, id, trackingNumber string) (entities.BookPurchase, error) {
	return r.transition(ctx, id,
		"SET #status = :to, tracking_number = :tn, updated_at = :now",
		entities.PurchaseStatusConfirmed,
		entities.PurchaseStatusShipped,
		map[string]types.AttributeValue{
			":tn": &types.AttributeValueMemberS{Value: trackingNumber},
		})
}

func (r *BookPurchaseDynamoRepository) MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) (entities.BookPurchase, error) {
	return r.transition(ctx, id,
		"SET #status = :to, delivered_at = :da, updated_at = :now",
		entities.PurchaseStatusShipped,
		entities.PurchaseStatusDelivered,
		map[string]types.AttributeValue{
			":da": &types.AttributeValueMemberS{Value: deliveredAt.UTC().Format(time.RFC3339Nano)},
		})
}

func (r *BookPurchaseDynamoRepository) transition(ctx context.Context, id, expr string, from, to entities.PurchaseStatus, extra map[string]types.AttributeValue) (entities.BookPurchase, error) {
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":now":  &types.AttributeValueMemberS{Value: nowRFC3339()},
	}
	for k, v := range extra {
		values[k] = v
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String("#status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.BookPurchase{}, ErrPurchaseStateConflict
		}
		return entities.BookPurchase{}, err
	}

	var it bookPurchaseItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BookPurchase{}, err
	}
	return fromBookPurchaseItem(it), nil
}

func toBookPurchaseItem(p entities.BookPurchase) bookPurchaseItem {
	it := bookPurchaseItem{
		ID:             p.ID,
		StudentID:      p.StudentID,
		BookID:         p.BookID,
		PaymentID:      p.PaymentID,
		Amount:         p.Amount,
		Quantity:       p.Quantity,
		Status:         string(p.Status),
		Shipping:       p.Shipping,
		TrackingNumber: p.TrackingNumber,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.DeliveredAt != nil {
		it.DeliveredAt = p.DeliveredAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromBookPurchaseItem(it bookPurchaseItem) entities.BookPurchase {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	p := entities.BookPurchase{
		ID:             it.ID,
		StudentID:      it.StudentID,
		BookID:         it.BookID,
		PaymentID:      it.PaymentID,
		Amount:         it.Amount,
		Quantity:       it.Quantity,
		Status:         entities.PurchaseStatus(it.Status),
		Shipping:       it.Shipping,
		TrackingNumber: it.TrackingNumber,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	if it.DeliveredAt != "" {
		if da, err := time.Parse(time.RFC3339Nano, it.DeliveredAt); err == nil {
			p.DeliveredAt = &da
		}
	}
	return p
}
