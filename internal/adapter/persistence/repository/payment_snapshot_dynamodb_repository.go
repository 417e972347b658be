package repository

import (
	"context"
	"errors"
	"log"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotsTableName = "payment_snapshots"

type paymentSnapshotItem struct {
	ID        string `dynamodbav:"id"`
	State     string `dynamodbav:"state"`
	Currency  string `dynamodbav:"currency"`
	Total     string `dynamodbav:"total"`
	Charged   string `dynamodbav:"charged"`
	Canceled  string `dynamodbav:"canceled"`
	Remaining string `dynamodbav:"remaining"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PaymentSnapshotDynamoRepository persists PaymentSnapshot entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// A write older than the stored updated_at is dropped, so a slow caller can
// not roll a snapshot back.

type PaymentSnapshotDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentSnapshotRepository = (*PaymentSnapshotDynamoRepository)(nil)

// NewPaymentSnapshotDynamoRepository uses tableName, or PAYMENT_SNAPSHOTS_TABLE when empty.
func NewPaymentSnapshotDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentSnapshotDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENT_SNAPSHOTS_TABLE", defaultSnapshotsTableName)
	}
	return &PaymentSnapshotDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentSnapshotDynamoRepository) Save(ctx context.Context, s entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
	it := toPaymentSnapshotItem(s)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: it.ID},
		},
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #updated_at <= :updated_at"),
		UpdateExpression: aws.String("SET #state = :state, #currency = :currency, #total = :total, " +
			"#charged = :charged, #canceled = :canceled, #remaining = :remaining, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state":      &types.AttributeValueMemberS{Value: it.State},
			":currency":   &types.AttributeValueMemberS{Value: it.Currency},
			":total":      &types.AttributeValueMemberS{Value: it.Total},
			":charged":    &types.AttributeValueMemberS{Value: it.Charged},
			":canceled":   &types.AttributeValueMemberS{Value: it.Canceled},
			":remaining":  &types.AttributeValueMemberS{Value: it.Remaining},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#state":      "state",
			"#currency":   "currency",
			"#total":      "total",
			"#charged":    "charged",
			"#canceled":   "canceled",
			"#remaining":  "remaining",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			log.Printf("[payment][repository] stale snapshot dropped payment_id=%s updated_at=%s", it.ID, it.UpdatedAt)
			return s, nil
		}
		return entities.PaymentSnapshot{}, err
	}
	if len(out.Attributes) == 0 {
		return s, nil
	}

	var saved paymentSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &saved); err != nil {
		return entities.PaymentSnapshot{}, err
	}
	return fromPaymentSnapshotItem(saved), nil
}

func (r *PaymentSnapshotDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSnapshot{}, nil
	}

	var it paymentSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSnapshot{}, err
	}
	return fromPaymentSnapshotItem(it), nil
}

func toPaymentSnapshotItem(s entities.PaymentSnapshot) paymentSnapshotItem {
	return paymentSnapshotItem{
		ID:        s.ID,
		State:     string(s.State),
		Currency:  s.Currency,
		Total:     amountToString(s.Total),
		Charged:   amountToString(s.Charged),
		Canceled:  amountToString(s.Canceled),
		Remaining: amountToString(s.Remaining),
		UpdatedAt: timeToString(s.UpdatedAt),
	}
}

func fromPaymentSnapshotItem(it paymentSnapshotItem) entities.PaymentSnapshot {
	return entities.PaymentSnapshot{
		ID:        it.ID,
		State:     entities.PaymentState(it.State),
		Currency:  it.Currency,
		Total:     amountFromString(it.Total),
		Charged:   amountFromString(it.Charged),
		Canceled:  amountFromString(it.Canceled),
		Remaining: amountFromString(it.Remaining),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
