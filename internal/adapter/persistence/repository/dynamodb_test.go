package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"project_materials/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// repositories make. Scan returns items in reverse key order, pageSize at a
// time, so callers must sort and paginate.
type fakeDynamo struct {
	mu        sync.Mutex
	tables    map[string]map[string]map[string]types.AttributeValue
	pageSize  int
	scanErr   error
	updateErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}, pageSize: 2}
}

func keyOf(item map[string]types.AttributeValue) string {
	switch v := item["id"].(type) {
	case *types.AttributeValueMemberN:
		return v.Value
	}
	if v, ok := item["name"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func copyItem(in map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.table(aws.ToString(in.TableName))[keyOf(in.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table(aws.ToString(in.TableName))[keyOf(in.Item)] = copyItem(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	t := f.table(aws.ToString(in.TableName))
	key := keyOf(in.Key)
	item, ok := t[key]
	if !ok {
		item = copyItem(in.Key)
	}
	var current int64
	if v, ok := item[valueAttribute].(*types.AttributeValueMemberN); ok {
		current, _ = strconv.ParseInt(v.Value, 10, 64)
	}
	inc, _ := strconv.ParseInt(in.ExpressionAttributeValues[":one"].(*types.AttributeValueMemberN).Value, 10, 64)
	next := &types.AttributeValueMemberN{Value: strconv.FormatInt(current+inc, 10)}
	item[valueAttribute] = next
	t[key] = item
	return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{valueAttribute: next}}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	t := f.table(aws.ToString(in.TableName))
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	start := 0
	if v, ok := in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN); ok {
		start, _ = strconv.Atoi(v.Value)
	}
	end := start + f.pageSize
	if end > len(keys) {
		end = len(keys)
	}
	out := &dynamodb.ScanOutput{}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, copyItem(t[k]))
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	return out, nil
}

func TestQuoteDynamoRepository(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), "test_")
	repo := store.Quotes
	mat := 5

	for _, q := range []entities.Quote{
		{ID: 3, ProjectID: 1, SupplierID: 1, MaterialID: &mat, Quantity: 2, Price: 3},
		{ID: 1, ProjectID: 1, SupplierID: 2, Quantity: 1, Price: 10},
		{ID: 20, ProjectID: 2, SupplierID: 2, Quantity: 4, Price: 1.5},
		{ID: 1, ProjectID: 1, SupplierID: 2, Quantity: 1, Price: 12},
	} {
		if err := repo.Save(ctx, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("list keeps first insertion order", func(t *testing.T) {
		quotes, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 3 {
			t.Fatalf("expected 3 quotes, got %d", len(quotes))
		}
		for i, want := range []int{3, 1, 20} {
			if quotes[i].ID != want {
				t.Fatalf("position %d: expected %d, got %d", i, want, quotes[i].ID)
			}
		}
		if quotes[1].Price != 12 {
			t.Fatalf("expected overwritten price, got %v", quotes[1].Price)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		q, found, err := repo.GetByID(ctx, 3)
		if err != nil || !found {
			t.Fatalf("expected quote, got found=%v err=%v", found, err)
		}
		if q.MaterialID == nil || *q.MaterialID != 5 || q.ServiceID != nil || q.Quantity != 2 {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, found, err := repo.GetByID(ctx, 99)
		if err != nil || found {
			t.Fatalf("expected not found, got found=%v err=%v", found, err)
		}
	})
}

func TestOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), "")
	repo := store.Orders

	for want := 1; want <= 3; want++ {
		id, err := repo.NextID(ctx)
		if err != nil || id != want {
			t.Fatalf("expected id %d, got %d (err %v)", want, id, err)
		}
	}

	price := 50.0
	_ = repo.Save(ctx, entities.Order{ID: 1, QuoteID: 10, Status: entities.OrderStatusOrdered})
	_ = repo.Save(ctx, entities.Order{ID: 2, QuoteID: 11, Status: entities.OrderStatusCompleted, FinalPrice: &price})

	o, found, err := repo.GetByID(ctx, 1)
	if err != nil || !found || o.Status != entities.OrderStatusOrdered || o.FinalPrice != nil {
		t.Fatalf("unexpected order: %+v found=%v err=%v", o, found, err)
	}
	orders, _ := repo.List(ctx)
	if len(orders) != 2 || orders[1].FinalPrice == nil || *orders[1].FinalPrice != 50 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestCatalogDynamoRepositories(t *testing.T) {
	ctx := context.Background()
	store := NewDynamoStore(newFakeDynamo(), "")

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	addr := "Main St"
	if err := store.Projects.Save(ctx, entities.Project{ID: 1, Name: "House", Address: &addr, StartDate: &start}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	projects, _ := store.Projects.List(ctx)
	if len(projects) != 1 || !projects[0].StartDate.Equal(start) || projects[0].EndDate != nil || *projects[0].Address != addr {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	_ = store.Materials.Save(ctx, entities.Material{ID: 2, Name: "Sand", Unit: "m3"})
	_ = store.Materials.Save(ctx, entities.Material{ID: 1, Name: "Cement", Unit: "bag"})
	materials, _ := store.Materials.List(ctx)
	if len(materials) != 2 || materials[0].ID != 2 || materials[1].Notes != nil {
		t.Fatalf("unexpected materials: %+v", materials)
	}

	_ = store.Services.Save(ctx, entities.Service{ID: 1, Name: "Plaster", UnitPrice: 12.5})
	services, _ := store.Services.List(ctx)
	if len(services) != 1 || services[0].UnitPrice != 12.5 {
		t.Fatalf("unexpected services: %+v", services)
	}

	_ = store.Suppliers.Save(ctx, entities.Supplier{ID: 1, Name: "ACME"})
	_ = store.Suppliers.Save(ctx, entities.Supplier{ID: 2, Name: "Bolt", Materials: []int{1, 2}})
	suppliers, _ := store.Suppliers.List(ctx)
	if len(suppliers) != 2 || suppliers[0].Materials == nil || len(suppliers[1].Materials) != 2 {
		t.Fatalf("unexpected suppliers: %+v", suppliers)
	}
}

func TestDynamoRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("counter failure", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.updateErr = errors.New("throttled")
		store := NewDynamoStore(fake, "")
		if err := store.Quotes.Save(ctx, entities.Quote{ID: 1}); err == nil {
			t.Fatalf("expected error")
		}
		if _, err := store.Orders.NextID(ctx); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("scan failure", func(t *testing.T) {
		fake := newFakeDynamo()
		fake.scanErr = errors.New("unavailable")
		store := NewDynamoStore(fake, "")
		if _, err := store.Quotes.List(ctx); err == nil {
			t.Fatalf("expected error")
		}
	})
}
