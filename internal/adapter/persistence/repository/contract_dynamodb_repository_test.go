package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"sales_contract/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// recordingDynamo records write inputs and answers reads from canned items.
type recordingDynamo struct {
	DynamoAPI

	transact   []*dynamodb.TransactWriteItemsInput
	transactFn func() error
	puts       []*dynamodb.PutItemInput
	putErr     error
	items      []map[string]types.AttributeValue
	queryItems []map[string]types.AttributeValue
	scans      []*dynamodb.ScanInput
	updates    []*dynamodb.UpdateItemInput
}

func (d *recordingDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	d.transact = append(d.transact, in)
	if d.transactFn != nil {
		return nil, d.transactFn()
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (d *recordingDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	d.puts = append(d.puts, in)
	return &dynamodb.PutItemOutput{}, d.putErr
}

func (d *recordingDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	d.scans = append(d.scans, in)
	return &dynamodb.ScanOutput{Items: d.items}, nil
}

func (d *recordingDynamo) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{Items: d.queryItems}, nil
}

func (d *recordingDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	d.updates = append(d.updates, in)
	return &dynamodb.UpdateItemOutput{}, nil
}

func sampleContract() entities.Contract {
	price := 0.0
	return entities.Contract{
		ID:           "c-1",
		ContractNo:   "C20250101-001",
		EstimateNo:   "E20250101-001",
		ContractDate: "2025-01-01",
		CustomerName: "김철수",
		Status:       entities.ContractStatusSigned,
		Rows: []entities.LineItem{
			{Space: "거실", ProductName: "암막커튼", Width: 2400, Height: 2300, Quantity: 1, UnitPrice: 150000},
			{Space: "안방", ProductName: "설치비", TotalPrice: &price},
		},
		PaymentRecord: entities.PaymentRecord{
			TotalAmount:      1000000,
			DiscountedAmount: 950000,
			DepositAmount:    300000,
			RemainingAmount:  650000,
			PaymentMethod:    entities.PaymentMethodCash,
			MeasurementDate:  "2025-01-15T09:00",
		},
		Agreement: entities.AgreementRecord{
			Agreed:   true,
			Method:   entities.AgreementMethodCheckbox,
			AgreedAt: time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		},
		CreatedAt: time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC),
	}
}

func TestContractItem_RoundTrip(t *testing.T) {
	in := sampleContract()
	av, err := attributevalue.MarshalMap(toContractItem(in))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var it contractItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := fromContractItem(it)
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("expected %+v, got %+v", in, got)
	}
	if got.Rows[1].TotalPrice == nil || *got.Rows[1].TotalPrice != 0 {
		t.Fatalf("expected zero total price kept, got %v", got.Rows[1].TotalPrice)
	}
}

func TestContractDynamoRepository_Create(t *testing.T) {
	ctx := context.Background()
	t.Setenv(envContractsTable, "contracts-test")
	t.Setenv(envPendingEstimatesTable, "pending-test")

	t.Run("writes contract and removes pending estimate atomically", func(t *testing.T) {
		ddb := &recordingDynamo{}
		r := NewContractDynamoRepository(ddb)

		if _, err := r.Create(ctx, sampleContract(), "E20250101-001"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(ddb.transact) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(ddb.transact))
		}
		items := ddb.transact[0].TransactItems
		if len(items) != 2 {
			t.Fatalf("expected put and delete, got %d items", len(items))
		}
		if aws.ToString(items[0].Put.TableName) != "contracts-test" || aws.ToString(items[0].Put.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected put %+v", items[0].Put)
		}
		key := items[1].Delete.Key["estimate_no"].(*types.AttributeValueMemberS).Value
		if aws.ToString(items[1].Delete.TableName) != "pending-test" || key != "E20250101-001" {
			t.Fatalf("unexpected delete %+v", items[1].Delete)
		}
	})

	t.Run("no pending estimate", func(t *testing.T) {
		ddb := &recordingDynamo{}
		if _, err := NewContractDynamoRepository(ddb).Create(ctx, sampleContract(), ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(ddb.transact[0].TransactItems) != 1 {
			t.Fatalf("expected put only, got %d items", len(ddb.transact[0].TransactItems))
		}
	})
}

func TestContractDynamoRepository_Supersede(t *testing.T) {
	ctx := context.Background()

	t.Run("missing contract yields zero value", func(t *testing.T) {
		ddb := &recordingDynamo{transactFn: func() error {
			return &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
			}
		}}
		got, err := NewContractDynamoRepository(ddb).Supersede(ctx, sampleContract(), "E20250101-001-final")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected zero contract, got %+v", got)
		}
		if aws.ToString(ddb.transact[0].TransactItems[0].Put.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("expected existence condition")
		}
	})

	t.Run("other failures propagate", func(t *testing.T) {
		ddb := &recordingDynamo{transactFn: func() error { return errors.New("throttled") }}
		if _, err := NewContractDynamoRepository(ddb).Supersede(ctx, sampleContract(), ""); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestContractDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	ddb := &recordingDynamo{putErr: &types.ConditionalCheckFailedException{}}

	got, err := NewContractDynamoRepository(ddb).Update(ctx, sampleContract())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero contract for missing id, got %+v", got)
	}
}

func TestContractDynamoRepository_ListContractNos(t *testing.T) {
	ctx := context.Background()
	ddb := &recordingDynamo{items: []map[string]types.AttributeValue{
		{"contract_no": &types.AttributeValueMemberS{Value: "C20250101-001"}},
		{"contract_no": &types.AttributeValueMemberS{Value: "C20250101-002"}},
	}}

	got, err := NewContractDynamoRepository(ddb).ListContractNos(ctx, "C20250101-")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, []string{"C20250101-001", "C20250101-002"}) {
		t.Fatalf("unexpected numbers %v", got)
	}
	if aws.ToString(ddb.scans[0].FilterExpression) != "begins_with(#k, :prefix)" {
		t.Fatalf("expected prefix filter, got %q", aws.ToString(ddb.scans[0].FilterExpression))
	}
}

func TestContractDynamoRepository_GetByEstimateNo(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		ddb := &recordingDynamo{}
		got, err := NewContractDynamoRepository(ddb).GetByEstimateNo(ctx, "E1")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", got, err)
		}
		if len(ddb.scans) != 1 {
			t.Fatalf("expected base table scan after index miss, got %d scans", len(ddb.scans))
		}
	})

	t.Run("found", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(toContractItem(sampleContract()))
		ddb := &recordingDynamo{queryItems: []map[string]types.AttributeValue{av}}
		got, err := NewContractDynamoRepository(ddb).GetByEstimateNo(ctx, "E20250101-001")
		if err != nil || got.ContractNo != "C20250101-001" {
			t.Fatalf("expected contract, got %+v err=%v", got, err)
		}
		if len(ddb.scans) != 0 {
			t.Fatalf("expected no scan on index hit, got %d", len(ddb.scans))
		}
	})

	t.Run("index lag falls back to consistent scan", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(toContractItem(sampleContract()))
		ddb := &recordingDynamo{items: []map[string]types.AttributeValue{av}}
		got, err := NewContractDynamoRepository(ddb).GetByEstimateNo(ctx, "E20250101-001")
		if err != nil || got.ID != "c-1" {
			t.Fatalf("expected contract from scan, got %+v err=%v", got, err)
		}
		in := ddb.scans[0]
		if !aws.ToBool(in.ConsistentRead) {
			t.Fatalf("expected consistent read")
		}
		if v, ok := in.ExpressionAttributeValues[":eno"].(*types.AttributeValueMemberS); !ok || v.Value != "E20250101-001" {
			t.Fatalf("expected estimate filter, got %v", in.ExpressionAttributeValues)
		}
	})
}

func TestContractDynamoRepository_UpdateScheduleSyncStatus(t *testing.T) {
	ctx := context.Background()
	ddb := &recordingDynamo{}

	if err := NewContractDynamoRepository(ddb).UpdateScheduleSyncStatus(ctx, "c-1", entities.ScheduleSyncCancelled); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ddb.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(ddb.updates))
	}
	in := ddb.updates[0]
	if aws.ToString(in.UpdateExpression) != "SET #sync = :sync" {
		t.Fatalf("expected only the sync status to be set, got %q", aws.ToString(in.UpdateExpression))
	}
	for name, attr := range in.ExpressionAttributeNames {
		if attr == "updated_at" {
			t.Fatalf("expected updated_at untouched, found name %s", name)
		}
	}
	if _, ok := in.ExpressionAttributeValues[":updated_at"]; ok {
		t.Fatalf("expected no updated_at value")
	}
	if v, ok := in.ExpressionAttributeValues[":sync"].(*types.AttributeValueMemberS); !ok || v.Value != "cancelled" {
		t.Fatalf("expected cancelled status, got %v", in.ExpressionAttributeValues[":sync"])
	}
}

func TestSettingsDynamoRepository_PutMany(t *testing.T) {
	ctx := context.Background()
	ddb := &batchDynamo{}
	r := NewSettingsDynamoRepository(ddb)

	values := map[string]string{}
	for i := 0; i < 30; i++ {
		values[string(rune('a'+i%26))+string(rune('A'+i/26))] = "v"
	}
	if err := r.PutMany(ctx, values); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ddb.calls != 2 || ddb.written != 30 {
		t.Fatalf("expected 2 batches with 30 writes, got %d batches %d writes", ddb.calls, ddb.written)
	}
}

type batchDynamo struct {
	DynamoAPI
	calls   int
	written int
}

func (d *batchDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	d.calls++
	for _, reqs := range in.RequestItems {
		d.written += len(reqs)
	}
	return &dynamodb.BatchWriteItemOutput{}, nil
}
