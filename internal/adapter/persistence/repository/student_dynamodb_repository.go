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

const defaultStudentsTableName = "students"

type studentItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	City      string `dynamodbav:"city,omitempty"`
	Country   string `dynamodbav:"country,omitempty"`
	CreatedAt string `dynamodbav:"created_at,omitempty"`
}

// StudentDynamoRepository reads Student profiles from DynamoDB. Profile
// writes belong to the account service; this repository only serves the
// shipping-fallback lookup.
//
// Table requirements:
//   - PK: id (string)

type StudentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStudentRepository = (*StudentDynamoRepository)(nil)

func NewStudentDynamoRepository(ddb *dynamodb.Client) *StudentDynamoRepository {
	return &StudentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STUDENTS_TABLE", defaultStudentsTableName),
	}
}

func (r *StudentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Student, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Student{}, err
	}
	if len(out.Item) == 0 {
		return entities.Student{}, nil
	}

	var it studentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Student{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Student{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		City:      it.City,
		Country:   it.Country,
		CreatedAt: createdAt,
	}, nil
}
