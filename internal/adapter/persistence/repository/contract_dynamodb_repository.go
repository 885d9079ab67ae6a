package repository

import (
	"context"
	"log"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const contractsEstimateNoIndex = "estimate_no-index"

type agreementItem struct {
	Agreed    bool   `dynamodbav:"agreed"`
	Method    string `dynamodbav:"method"`
	Signature string `dynamodbav:"signature,omitempty"`
	AgreedAt  string `dynamodbav:"agreed_at,omitempty"`
}

type contractItem struct {
	ID           string         `dynamodbav:"id"`
	ContractNo   string         `dynamodbav:"contract_no"`
	EstimateNo   string         `dynamodbav:"estimate_no"`
	ContractDate string         `dynamodbav:"contract_date"`
	CustomerName string         `dynamodbav:"customer_name"`
	Contact      string         `dynamodbav:"contact"`
	Address      string         `dynamodbav:"address"`
	ProjectName  string         `dynamodbav:"project_name"`
	ProjectType  string         `dynamodbav:"project_type"`
	Status       string         `dynamodbav:"status"`
	Rows         []lineItemItem `dynamodbav:"rows"`

	TotalAmount      string `dynamodbav:"total_amount"`
	DiscountedAmount string `dynamodbav:"discounted_amount"`
	DepositAmount    string `dynamodbav:"deposit_amount"`
	RemainingAmount  string `dynamodbav:"remaining_amount"`
	PaymentMethod    string `dynamodbav:"payment_method"`
	PaymentDate      string `dynamodbav:"payment_date,omitempty"`
	MeasurementDate  string `dynamodbav:"measurement_date,omitempty"`
	ConstructionDate string `dynamodbav:"construction_date,omitempty"`
	Memo             string `dynamodbav:"memo,omitempty"`

	Agreement agreementItem `dynamodbav:"agreement"`

	ScheduleSyncStatus string `dynamodbav:"schedule_sync_status,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_no-index (PK: estimate_no)
//
// Create and Supersede remove the pending estimate in the same transaction,
// so an estimate is never both awaiting and contracted.
type ContractDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	pendingTable string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb DynamoAPI) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault(envContractsTable, defaultContractsTableName),
		pendingTable: pendingEstimatesTableName(),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error) {
	if err := r.writeWithPending(ctx, c, pendingEstimateNo, "attribute_not_exists(#id)"); err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

// Supersede overwrites an existing contract. A missing contract yields a zero value.
func (r *ContractDynamoRepository) Supersede(ctx context.Context, c entities.Contract, pendingEstimateNo string) (entities.Contract, error) {
	err := r.writeWithPending(ctx, c, pendingEstimateNo, "attribute_exists(#id)")
	if err != nil {
		if isTransactionConditionFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) writeWithPending(ctx context.Context, c entities.Contract, pendingEstimateNo, condition string) error {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String(condition),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}
	if pendingEstimateNo != "" {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.pendingTable),
				Key:       stringKey("estimate_no", pendingEstimateNo),
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}

// Update replaces an existing contract. A missing contract yields a zero value.
func (r *ContractDynamoRepository) Update(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

// GetByEstimateNo reads the estimate_no GSI first. GSI reads are eventually
// consistent, so a miss is confirmed with a strongly consistent scan of the
// base table before a zero value is returned.
func (r *ContractDynamoRepository) GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsEstimateNoIndex),
		KeyConditionExpression: aws.String("estimate_no = :eno"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eno": &types.AttributeValueMemberS{Value: estimateNo},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Items) == 0 {
		return r.scanByEstimateNo(ctx, estimateNo)
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) scanByEstimateNo(ctx context.Context, estimateNo string) (entities.Contract, error) {
	found, err := r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ConsistentRead:           aws.Bool(true),
		FilterExpression:         aws.String("#eno = :eno"),
		ExpressionAttributeNames: map[string]string{"#eno": "estimate_no"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eno": &types.AttributeValueMemberS{Value: estimateNo},
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(found) == 0 {
		return entities.Contract{}, nil
	}
	log.Printf("[contract][repository] estimate index lagging, found by scan estimate_no=%s id=%s", estimateNo, found[0].ID)
	return found[0], nil
}

func (r *ContractDynamoRepository) List(ctx context.Context) ([]entities.Contract, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *ContractDynamoRepository) ListContractNos(ctx context.Context, prefix string) ([]string, error) {
	return scanKeysWithPrefix(ctx, r.ddb, r.tableName, "contract_no", prefix)
}

func (r *ContractDynamoRepository) ListByScheduleSyncStatus(ctx context.Context, status entities.ScheduleSyncStatus) ([]entities.Contract, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#sync = :sync"),
		ExpressionAttributeNames: map[string]string{"#sync": "schedule_sync_status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sync": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

// UpdateScheduleSyncStatus is a no-op when the contract no longer exists.
// Only the sync status attribute is written; updated_at tracks contract edits.
func (r *ContractDynamoRepository) UpdateScheduleSyncStatus(ctx context.Context, id string, status entities.ScheduleSyncStatus) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("id", id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #sync = :sync"),
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#id": "id"},
			map[string]string{"#sync": "schedule_sync_status"},
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sync": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func (r *ContractDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          stringKey("id", id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ContractDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Contract, error) {
	var out []entities.Contract
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it contractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromContractItem(it))
		}
	}
	return out, nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:               c.ID,
		ContractNo:       c.ContractNo,
		EstimateNo:       c.EstimateNo,
		ContractDate:     c.ContractDate,
		CustomerName:     c.CustomerName,
		Contact:          c.Contact,
		Address:          c.Address,
		ProjectName:      c.ProjectName,
		ProjectType:      c.ProjectType,
		Status:           string(c.Status),
		Rows:             toLineItems(c.Rows),
		TotalAmount:      floatToString(c.TotalAmount),
		DiscountedAmount: floatToString(c.DiscountedAmount),
		DepositAmount:    floatToString(c.DepositAmount),
		RemainingAmount:  floatToString(c.RemainingAmount),
		PaymentMethod:    string(c.PaymentMethod),
		PaymentDate:      c.PaymentDate,
		MeasurementDate:  c.MeasurementDate,
		ConstructionDate: c.ConstructionDate,
		Memo:             c.Memo,
		Agreement: agreementItem{
			Agreed:    c.Agreement.Agreed,
			Method:    string(c.Agreement.Method),
			Signature: c.Agreement.Signature,
			AgreedAt:  formatTime(c.Agreement.AgreedAt),
		},
		ScheduleSyncStatus: string(c.ScheduleSyncStatus),
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:           it.ID,
		ContractNo:   it.ContractNo,
		EstimateNo:   it.EstimateNo,
		ContractDate: it.ContractDate,
		CustomerName: it.CustomerName,
		Contact:      it.Contact,
		Address:      it.Address,
		ProjectName:  it.ProjectName,
		ProjectType:  it.ProjectType,
		Status:       entities.ContractStatus(it.Status),
		Rows:         fromLineItems(it.Rows),
		PaymentRecord: entities.PaymentRecord{
			TotalAmount:      parseFloat(it.TotalAmount),
			DiscountedAmount: parseFloat(it.DiscountedAmount),
			DepositAmount:    parseFloat(it.DepositAmount),
			RemainingAmount:  parseFloat(it.RemainingAmount),
			PaymentMethod:    entities.PaymentMethod(it.PaymentMethod),
			PaymentDate:      it.PaymentDate,
			MeasurementDate:  it.MeasurementDate,
			ConstructionDate: it.ConstructionDate,
			Memo:             it.Memo,
		},
		Agreement: entities.AgreementRecord{
			Agreed:    it.Agreement.Agreed,
			Method:    entities.AgreementMethod(it.Agreement.Method),
			Signature: it.Agreement.Signature,
			AgreedAt:  parseTime(it.Agreement.AgreedAt),
		},
		ScheduleSyncStatus: entities.ScheduleSyncStatus(it.ScheduleSyncStatus),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
