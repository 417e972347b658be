package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"payment_reconciler/internal/domain/entities"
	"payment_reconciler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTransactionsTableName = "payment_transactions"
	transactionsPaymentIDIndex   = "payment_id-index"
	maxBatchWriteItems           = 25
	maxUnprocessedRetries        = 3
)

var ErrUnprocessedTransactions = errors.New("dynamodb left transaction writes unprocessed")

type transactionItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
	ParentID  string `dynamodbav:"parent_id,omitempty"`
	Type      string `dynamodbav:"type"`
	Amount    string `dynamodbav:"amount"`
	Seq       int    `dynamodbav:"seq"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// TransactionDynamoRepository persists the flattened transactions of a payment.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_id-index (PK: payment_id)
//
// seq keeps the registry order, which the index does not.

type TransactionDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

// NewTransactionDynamoRepository uses tableName, or PAYMENT_TRANSACTIONS_TABLE when empty.
func NewTransactionDynamoRepository(ddb DynamoDBAPI, tableName string) *TransactionDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENT_TRANSACTIONS_TABLE", defaultTransactionsTableName)
	}
	return &TransactionDynamoRepository{ddb: ddb, tableName: tableName}
}

// SaveAll upserts entries in batches of 25, retrying what DynamoDB reports unprocessed.
func (r *TransactionDynamoRepository) SaveAll(ctx context.Context, entries []entities.TransactionEntry) error {
	requests := make([]types.WriteRequest, 0, len(entries))
	for i, e := range entries {
		av, err := attributevalue.MarshalMap(toTransactionItem(e, i))
		if err != nil {
			return err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for start := 0; start < len(requests); start += maxBatchWriteItems {
		end := start + maxBatchWriteItems
		if end > len(requests) {
			end = len(requests)
		}
		if err := r.writeBatch(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *TransactionDynamoRepository) writeBatch(ctx context.Context, batch []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: batch}
	for attempt := 0; attempt <= maxUnprocessedRetries; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
		log.Printf("[payment][repository] batch write unprocessed=%d attempt=%d", len(pending[r.tableName]), attempt+1)
	}
	return fmt.Errorf("%w: %d items", ErrUnprocessedTransactions, len(pending[r.tableName]))
}

func (r *TransactionDynamoRepository) ListByPaymentID(ctx context.Context, paymentID string) ([]entities.TransactionEntry, error) {
	var (
		items     []transactionItem
		startFrom map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(transactionsPaymentIDIndex),
			KeyConditionExpression: aws.String("payment_id = :pid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pid": &types.AttributeValueMemberS{Value: paymentID},
			},
			ExclusiveStartKey: startFrom,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it transactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startFrom = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })
	entries := make([]entities.TransactionEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, fromTransactionItem(it))
	}
	return entries, nil
}

func toTransactionItem(e entities.TransactionEntry, seq int) transactionItem {
	return transactionItem{
		ID:        e.ID,
		PaymentID: e.PaymentID,
		ParentID:  e.ParentID,
		Type:      string(e.Type),
		Amount:    amountToString(e.Amount),
		Seq:       seq,
		UpdatedAt: timeToString(e.UpdatedAt),
	}
}

func fromTransactionItem(it transactionItem) entities.TransactionEntry {
	return entities.TransactionEntry{
		ID:        it.ID,
		PaymentID: it.PaymentID,
		ParentID:  it.ParentID,
		Type:      entities.TransactionType(it.Type),
		Amount:    amountFromString(it.Amount),
		UpdatedAt: timeFromString(it.UpdatedAt),
	}
}
