package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single-table stand-in keyed by "id". It supports
// the expressions the repositories issue and nothing more.
type fakeDynamo struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
	puts  int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	if s, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Item)
	if _, exists := f.items[id]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	f.items[id] = in.Item
	f.puts++
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, exists := f.items[keyOf(in.Key)]
	if !exists {
		if strings.Contains(aws.ToString(in.ConditionExpression), "attribute_exists") {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
		item = map[string]types.AttributeValue{}
		for k, v := range in.Key {
			item[k] = v
		}
	}
	expr := strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET ")
	for _, assignment := range strings.Split(expr, ",") {
		name, value, _ := strings.Cut(assignment, "=")
		item[in.ExpressionAttributeNames[strings.TrimSpace(name)]] = in.ExpressionAttributeValues[strings.TrimSpace(value)]
	}
	f.items[keyOf(in.Key)] = item
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, value, _ := strings.Cut(aws.ToString(in.KeyConditionExpression), "=")
	attr := in.ExpressionAttributeNames[strings.TrimSpace(name)]
	want := in.ExpressionAttributeValues[strings.TrimSpace(value)].(*types.AttributeValueMemberS).Value

	var out []map[string]types.AttributeValue
	for _, id := range f.sortedIDs() {
		if s, ok := f.items[id][attr].(*types.AttributeValueMemberS); ok && s.Value == want {
			out = append(out, f.items[id])
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []map[string]types.AttributeValue
	for _, id := range f.sortedIDs() {
		out = append(out, f.items[id])
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) sortedIDs() []string {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
