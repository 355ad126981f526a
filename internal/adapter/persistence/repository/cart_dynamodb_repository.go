package repository

import (
	"context"
	"time"

	"shikkha/internal/domain/entities"
	"shikkha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartItemLine struct {
	BookID    string  `dynamodbav:"book_id"`
	BookTitle string  `dynamodbav:"book_title"`
	Quantity  int     `dynamodbav:"quantity"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type cartItem struct {
	OwnerID     string         `dynamodbav:"owner_id"`
	Items       []cartItemLine `dynamodbav:"items,omitempty"`
	TotalAmount float64        `dynamodbav:"total_amount"`
	UpdatedAt   string         `dynamodbav:"updated_at,omitempty"`
}

// CartDynamoRepository persists Cart entities in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string) — one cart per student

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) GetByOwner(ctx context.Context, ownerID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it), nil
}

// Clear resets the cart to empty. The record itself is kept.
func (r *CartDynamoRepository) Clear(ctx context.Context, ownerID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
		UpdateExpression: aws.String("REMOVE #items SET total_amount = :zero, updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#items": "items",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":now":  &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	return err
}

func fromCartItem(it cartItem) entities.Cart {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	items := make([]entities.CartItem, 0, len(it.Items))
	for _, line := range it.Items {
		items = append(items, entities.CartItem{
			BookID:    line.BookID,
			BookTitle: line.BookTitle,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	if len(items) == 0 {
		items = nil
	}
	return entities.Cart{
		OwnerID:     it.OwnerID,
		Items:       items,
		TotalAmount: it.TotalAmount,
		UpdatedAt:   updatedAt,
	}
}
