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

const defaultCoursesTableName = "courses"

type courseItem struct {
	ID            string   `dynamodbav:"id"`
	Title         string   `dynamodbav:"title"`
	EducatorID    string   `dynamodbav:"educator_id"`
	Price         float64  `dynamodbav:"price"`
	MaxStudents   int      `dynamodbav:"max_students,omitempty"`
	EnrolledCount int      `dynamodbav:"enrolled_count"`
	Students      []string `dynamodbav:"students,stringset,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at,omitempty"`
	UpdatedAt     string   `dynamodbav:"updated_at,omitempty"`
}

// CourseDynamoRepository persists Course entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// students is a string set so membership is idempotent at the storage layer.

type CourseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICourseRepository = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb *dynamodb.Client) *CourseDynamoRepository {
	return &CourseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COURSES_TABLE", defaultCoursesTableName),
	}
}

func (r *CourseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Course{}, err
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, err
	}
	return fromCourseItem(it), nil
}

// RegisterEnrollment bumps the enrolled counter and adds the student to the
// membership set in one atomic update. A student already in the set makes the
// whole update a no-op, so the counter cannot double-increment.
func (r *CourseDynamoRepository) RegisterEnrollment(ctx context.Context, courseID, studentID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: courseID},
		},
		UpdateExpression:    aws.String("ADD enrolled_count :one, students :student SET updated_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND (attribute_not_exists(students) OR NOT contains(students, :sid))"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":     &types.AttributeValueMemberN{Value: "1"},
			":student": &types.AttributeValueMemberSS{Value: []string{studentID}},
			":sid":     &types.AttributeValueMemberS{Value: studentID},
			":now":     &types.AttributeValueMemberS{Value: nowRFC3339()},
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			// Already a member: replayed fulfillment, nothing to do.
			return nil
		}
	}
	return err
}

func fromCourseItem(it courseItem) entities.Course {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Course{
		ID:            it.ID,
		Title:         it.Title,
		EducatorID:    it.EducatorID,
		Price:         it.Price,
		MaxStudents:   it.MaxStudents,
		EnrolledCount: it.EnrolledCount,
		Students:      it.Students,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
