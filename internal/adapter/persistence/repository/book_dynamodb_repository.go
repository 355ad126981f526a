package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBooksTableName = "books"

// ErrInsufficientStock is returned when a decrement would drive the stock
// below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

type bookItem struct {
	ID            string  `dynamodbav:"id"`
	Title         string  `dynamodbav:"title"`
	Author        string  `dynamodbav:"author,omitempty"`
	Price         float64 `dynamodbav:"price"`
	InStock       bool    `dynamodbav:"in_stock"`
	StockQuantity int     `dynamodbav:"stock_quantity"`
	StockStatus   string  `dynamodbav:"stock_status,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at,omitempty"`
	UpdatedAt     string  `dynamodbav:"updated_at,omitempty"`
}

// BookDynamoRepository persists Book entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type BookDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookRepository = (*BookDynamoRepository)(nil)

func NewBookDynamoRepository(ddb *dynamodb.Client) *BookDynamoRepository {
	return &BookDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKS_TABLE", defaultBooksTableName),
	}
}

func (r *BookDynamoRepository) GetByID(ctx context.Context, id string) (entities.Book, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Book{}, err
	}
	if len(out.Item) == 0 {
		return entities.Book{}, nil
	}

	var it bookItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Book{}, err
	}
	return fromBookItem(it), nil
}

// DecrementStock is a bounded atomic decrement: the condition fails instead
// of writing when fewer than qty units remain. When the counter reaches zero
// the availability flags are flipped in a follow-up write.
func (r *BookDynamoRepository) DecrementStock(ctx context.Context, bookID string, qty int) error {
	qtyAttr := &types.AttributeValueMemberN{Value: strconv.Itoa(qty)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: bookID},
		},
		UpdateExpression:    aws.String("SET stock_quantity = stock_quantity - :qty, updated_at = :now"),
		ConditionExpression: aws.String("stock_quantity >= :qty"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty": qtyAttr,
			":now": &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrInsufficientStock
		}
		return err
	}

	if remaining, ok := out.Attributes["stock_quantity"].(*types.AttributeValueMemberN); ok && remaining.Value == "0" {
		_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: bookID},
			},
			UpdateExpression:    aws.String("SET in_stock = :no, stock_status = :out"),
			ConditionExpression: aws.String("stock_quantity = :zero"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":no":   &types.AttributeValueMemberBOOL{Value: false},
				":out":  &types.AttributeValueMemberS{Value: string(entities.StockStatusOutOfStock)},
				":zero": &types.AttributeValueMemberN{Value: "0"},
			},
		})
		if err != nil {
			var ccf *types.ConditionalCheckFailedException
			if errors.As(err, &ccf) {
				// Restocked in between; the flags are already right.
				return nil
			}
		}
	}
	return err
}

func fromBookItem(it bookItem) entities.Book {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Book{
		ID:            it.ID,
		Title:         it.Title,
		Author:        it.Author,
		Price:         it.Price,
		InStock:       it.InStock,
		StockQuantity: it.StockQuantity,
		StockStatus:   entities.StockStatus(it.StockStatus),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
