package repository

import (
	"context"
	"strings"
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type lineItemItem struct {
	Space         string   `dynamodbav:"space,omitempty"`
	Brand         string   `dynamodbav:"brand,omitempty"`
	ProductCode   string   `dynamodbav:"product_code,omitempty"`
	ProductName   string   `dynamodbav:"product_name,omitempty"`
	ProductType   string   `dynamodbav:"product_type,omitempty"`
	Width         float64  `dynamodbav:"width,omitempty"`
	Height        float64  `dynamodbav:"height,omitempty"`
	Area          float64  `dynamodbav:"area,omitempty"`
	PleatCount    float64  `dynamodbav:"pleat_count,omitempty"`
	PleatWidth    float64  `dynamodbav:"pleat_width,omitempty"`
	PleatMultiple float64  `dynamodbav:"pleat_multiple,omitempty"`
	Quantity      float64  `dynamodbav:"quantity,omitempty"`
	UnitPrice     float64  `dynamodbav:"unit_price,omitempty"`
	TotalPrice    *float64 `dynamodbav:"total_price,omitempty"`
	Note          string   `dynamodbav:"note,omitempty"`
}

type estimateItem struct {
	EstimateNo       string         `dynamodbav:"estimate_no"`
	CustomerName     string         `dynamodbav:"customer_name"`
	Contact          string         `dynamodbav:"contact"`
	Address          string         `dynamodbav:"address"`
	ProjectName      string         `dynamodbav:"project_name"`
	ProjectType      string         `dynamodbav:"project_type"`
	Rows             []lineItemItem `dynamodbav:"rows"`
	TotalAmount      string         `dynamodbav:"total_amount"`
	DiscountedAmount string         `dynamodbav:"discounted_amount,omitempty"`
	Status           string         `dynamodbav:"status"`
	CreatedAt        string         `dynamodbav:"created_at"`
	UpdatedAt        string         `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository reads estimates owned by the estimate system and
// writes back the contracted marker.
//
// Table requirements:
//   - PK: estimate_no (string)
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault(envEstimatesTable, defaultEstimatesTableName),
		now:       time.Now,
	}
}

func (r *EstimateDynamoRepository) GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Estimate, error) {
	return getEstimate(ctx, r.ddb, r.tableName, estimateNo)
}

// MarkContracted sets status=contracted. A missing estimate yields a zero value.
func (r *EstimateDynamoRepository) MarkContracted(ctx context.Context, estimateNo string) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 stringKey("estimate_no", estimateNo),
		ConditionExpression: aws.String("attribute_exists(#no)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#no":         "estimate_no",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusContracted)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// PendingEstimateDynamoRepository holds estimates awaiting a contract.
//
// Table requirements:
//   - PK: estimate_no (string)
//
// Items are removed by the contract repository in the same transaction that
// writes the contract.
type PendingEstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPendingEstimateRepository = (*PendingEstimateDynamoRepository)(nil)

func NewPendingEstimateDynamoRepository(ddb DynamoAPI) *PendingEstimateDynamoRepository {
	return &PendingEstimateDynamoRepository{
		ddb:       ddb,
		tableName: pendingEstimatesTableName(),
	}
}

func pendingEstimatesTableName() string {
	return getenvDefault(envPendingEstimatesTable, defaultPendingEstimatesTableName)
}

func (r *PendingEstimateDynamoRepository) Put(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *PendingEstimateDynamoRepository) GetByEstimateNo(ctx context.Context, estimateNo string) (entities.Estimate, error) {
	return getEstimate(ctx, r.ddb, r.tableName, estimateNo)
}

func (r *PendingEstimateDynamoRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	var out []entities.Estimate
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it estimateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromEstimateItem(it))
		}
	}
	return out, nil
}

func (r *PendingEstimateDynamoRepository) ListEstimateNos(ctx context.Context, prefix string) ([]string, error) {
	return scanKeysWithPrefix(ctx, r.ddb, r.tableName, "estimate_no", prefix)
}

func getEstimate(ctx context.Context, ddb DynamoAPI, table, estimateNo string) (entities.Estimate, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey("estimate_no", estimateNo),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// scanKeysWithPrefix projects a single string attribute and keeps values
// starting with prefix.
func scanKeysWithPrefix(ctx context.Context, ddb DynamoAPI, table, attr, prefix string) ([]string, error) {
	in := &dynamodb.ScanInput{
		TableName:                aws.String(table),
		ProjectionExpression:     aws.String("#k"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
	}
	if prefix != "" {
		in.FilterExpression = aws.String("begins_with(#k, :prefix)")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		}
	}

	var out []string
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			s, ok := raw[attr].(*types.AttributeValueMemberS)
			if !ok || !strings.HasPrefix(s.Value, prefix) {
				continue
			}
			out = append(out, s.Value)
		}
	}
	return out, nil
}

func toLineItems(rows []entities.LineItem) []lineItemItem {
	out := make([]lineItemItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, lineItemItem(r))
	}
	return out
}

func fromLineItems(rows []lineItemItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.LineItem(r))
	}
	return out
}

func toEstimateItem(e entities.Estimate) estimateItem {
	it := estimateItem{
		EstimateNo:   e.EstimateNo,
		CustomerName: e.CustomerName,
		Contact:      e.Contact,
		Address:      e.Address,
		ProjectName:  e.ProjectName,
		ProjectType:  e.ProjectType,
		Rows:         toLineItems(e.Rows),
		TotalAmount:  floatToString(e.TotalAmount),
		Status:       string(e.Status),
		CreatedAt:    formatTime(e.CreatedAt),
		UpdatedAt:    formatTime(e.UpdatedAt),
	}
	if e.DiscountedAmount != 0 {
		it.DiscountedAmount = floatToString(e.DiscountedAmount)
	}
	return it
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		EstimateNo:       it.EstimateNo,
		CustomerName:     it.CustomerName,
		Contact:          it.Contact,
		Address:          it.Address,
		ProjectName:      it.ProjectName,
		ProjectType:      it.ProjectType,
		Rows:             fromLineItems(it.Rows),
		TotalAmount:      parseFloat(it.TotalAmount),
		DiscountedAmount: parseFloat(it.DiscountedAmount),
		Status:           entities.EstimateStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
