package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

const (
	countersTable  = "counters"
	seqAttribute   = "seq"
	valueAttribute = "value"
)

// sequenced items carry the position assigned on first insert.
type sequenced interface {
	sequence() int64
}

// dynamoTable stores one entity kind keyed by a numeric "id". List order is
// first-insertion order: a "seq" attribute is allocated from the counters
// table the first time an id is written and carried over on overwrite.
type dynamoTable[I sequenced] struct {
	ddb      DynamoAPI
	name     string
	counters *CounterDynamoRepository
}

func newDynamoTable[I sequenced](ddb DynamoAPI, name string, counters *CounterDynamoRepository) dynamoTable[I] {
	return dynamoTable[I]{ddb: ddb, name: name, counters: counters}
}

func idKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}

func (t dynamoTable[I]) put(ctx context.Context, id int, build func(seq int64) I) error {
	seq, err := t.sequenceFor(ctx, id)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(build(seq))
	if err != nil {
		return err
	}
	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.name),
		Item:      av,
	})
	return err
}

func (t dynamoTable[I]) sequenceFor(ctx context.Context, id int) (int64, error) {
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(t.name),
		Key:                      idKey(id),
		ProjectionExpression:     aws.String("#seq"),
		ExpressionAttributeNames: map[string]string{"#seq": seqAttribute},
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if existing, ok := out.Item[seqAttribute].(*types.AttributeValueMemberN); ok {
		return strconv.ParseInt(existing.Value, 10, 64)
	}
	return t.counters.Next(ctx, t.name+"_seq")
}

func (t dynamoTable[I]) get(ctx context.Context, id int) (I, bool, error) {
	var it I
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.name),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return it, false, err
	}
	if len(out.Item) == 0 {
		return it, false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return it, false, err
	}
	return it, true, nil
}

func (t dynamoTable[I]) list(ctx context.Context) ([]I, error) {
	items := make([]I, 0)
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.name),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []I
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sequence() < items[j].sequence()
	})
	return items, nil
}

// CounterDynamoRepository hands out monotonic values from the counters table.
//
// Table requirements:
//   - PK: name (string)

type CounterDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

func NewCounterDynamoRepository(ddb DynamoAPI, tableName string) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: ddb, tableName: tableName}
}

// Next atomically increments the named counter and returns the new value.
// The first call for a name returns 1.
func (r *CounterDynamoRepository) Next(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression:         aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{"#value": valueAttribute},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes[valueAttribute].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %q: missing %s attribute", name, valueAttribute)
	}
	return strconv.ParseInt(v.Value, 10, 64)
}
