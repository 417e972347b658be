package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// repositories issue. It understands exactly the expressions they build.
type fakeDynamo struct {
	tables map[string]map[string]map[string]types.AttributeValue

	queryPageSize   int
	unprocessedOnce int
	batchCalls      int
	failWith        error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: make(map[string]map[string]map[string]types.AttributeValue)}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		f.tables[name] = t
	}
	return t
}

func keyOf(item map[string]types.AttributeValue, attr string) string {
	if s, ok := item[attr].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	item := f.table(aws.ToString(in.TableName))[keyOf(in.Key, "id")]
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Key, "id")
	existing, exists := t[id]

	cond := aws.ToString(in.ConditionExpression)
	if exists && strings.Contains(cond, "#updated_at <= :updated_at") {
		if keyOf(existing, "updated_at") > keyOf(in.ExpressionAttributeValues, ":updated_at") {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("stale")}
		}
	}

	item := map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	for k, v := range existing {
		item[k] = v
	}
	for placeholder, attr := range in.ExpressionAttributeNames {
		if attr == "id" {
			continue
		}
		if v, ok := in.ExpressionAttributeValues[":"+strings.TrimPrefix(placeholder, "#")]; ok {
			item[attr] = v
		}
	}
	t[id] = item
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	want := keyOf(in.ExpressionAttributeValues, ":pid")

	var ids []string
	for id, item := range f.table(aws.ToString(in.TableName)) {
		if keyOf(item, "payment_id") == want {
			ids = append(ids, id)
		}
	}
	// Reverse order so callers can not rely on the index order.
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	start := 0
	if in.ExclusiveStartKey != nil {
		last := keyOf(in.ExclusiveStartKey, "id")
		for i, id := range ids {
			if id == last {
				start = i + 1
			}
		}
	}
	end := len(ids)
	if f.queryPageSize > 0 && start+f.queryPageSize < end {
		end = start + f.queryPageSize
	}

	out := &dynamodb.QueryOutput{}
	t := f.table(aws.ToString(in.TableName))
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, t[id])
	}
	if end < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: ids[end-1]}}
	}
	return out, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.batchCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for name, reqs := range in.RequestItems {
		if len(reqs) > 25 {
			return nil, errors.New("too many items in batch")
		}
		t := f.table(name)
		for _, req := range reqs {
			if f.unprocessedOnce > 0 {
				f.unprocessedOnce--
				out.UnprocessedItems[name] = append(out.UnprocessedItems[name], req)
				continue
			}
			t[keyOf(req.PutRequest.Item, "id")] = req.PutRequest.Item
		}
	}
	return out, nil
}
