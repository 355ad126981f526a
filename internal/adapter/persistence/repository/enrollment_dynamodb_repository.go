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

const (
	defaultEnrollmentsTableName = "enrollments"
	enrollmentsStudentIndex     = "student_id-course_id-index"
)

type enrollmentItem struct {
	ID         string `dynamodbav:"id"`
	StudentID  string `dynamodbav:"student_id"`
	CourseID   string `dynamodbav:"course_id"`
	Status     string `dynamodbav:"status"`
	PaymentID  string `dynamodbav:"payment_id,omitempty"`
	EnrolledAt string `dynamodbav:"enrolled_at"`
}

// EnrollmentDynamoRepository persists Enrollment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: student_id-course_id-index (PK: student_id, SK: course_id)

type EnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

func (r *EnrollmentDynamoRepository) Create(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	it := enrollmentItem{
		ID:         e.ID,
		StudentID:  e.StudentID,
		CourseID:   e.CourseID,
		Status:     string(e.Status),
		PaymentID:  e.PaymentID,
		EnrolledAt: e.EnrolledAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Enrollment{}, err
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
		return entities.Enrollment{}, err
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) ExistsActive(ctx context.Context, studentID, courseID string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsStudentIndex),
		KeyConditionExpression: aws.String("student_id = :sid AND course_id = :cid"),
		FilterExpression:       aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid":    &types.AttributeValueMemberS{Value: studentID},
			":cid":    &types.AttributeValueMemberS{Value: courseID},
			":active": &types.AttributeValueMemberS{Value: string(entities.EnrollmentStatusActive)},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}
