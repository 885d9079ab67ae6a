package repository

import (
	"context"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const depositChargesContractIDIndex = "contract_id-index"

type depositChargeItem struct {
	ID         string                 `dynamodbav:"id"`
	ContractID string                 `dynamodbav:"contract_id"`
	ContractNo string                 `dynamodbav:"contract_no"`
	Amount     string                 `dynamodbav:"amount"`
	Date       string                 `dynamodbav:"date"`
	Status     string                 `dynamodbav:"status"`
	Payload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	PayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DepositChargeDynamoRepository persists DepositCharge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contract_id-index (PK: contract_id)
type DepositChargeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDepositChargeRepository = (*DepositChargeDynamoRepository)(nil)

func NewDepositChargeDynamoRepository(ddb DynamoAPI) *DepositChargeDynamoRepository {
	return &DepositChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault(envDepositChargesTable, defaultDepositChargesTableName),
	}
}

func (r *DepositChargeDynamoRepository) Create(ctx context.Context, c entities.DepositCharge) (entities.DepositCharge, error) {
	av, err := attributevalue.MarshalMap(toDepositChargeItem(c))
	if err != nil {
		return entities.DepositCharge{}, err
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
		return entities.DepositCharge{}, err
	}
	return c, nil
}

func (r *DepositChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.DepositCharge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("id", id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DepositCharge{}, err
	}
	if len(out.Item) == 0 {
		return entities.DepositCharge{}, nil
	}

	var it depositChargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DepositCharge{}, err
	}
	return fromDepositChargeItem(it), nil
}

func (r *DepositChargeDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.DepositCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(depositChargesContractIDIndex),
		KeyConditionExpression: aws.String("contract_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: contractID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DepositCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it depositChargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDepositChargeItem(it))
	}
	return items, nil
}

func toDepositChargeItem(c entities.DepositCharge) depositChargeItem {
	return depositChargeItem{
		ID:         c.ID,
		ContractID: c.ContractID,
		ContractNo: c.ContractNo,
		Amount:     floatToString(c.Amount),
		Date:       formatTime(c.Date),
		Status:     string(c.Status),
		Payload:    c.ProviderPayload,
		PayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func fromDepositChargeItem(it depositChargeItem) entities.DepositCharge {
	c := entities.DepositCharge{
		ID:              it.ID,
		ContractID:      it.ContractID,
		ContractNo:      it.ContractNo,
		Amount:          parseFloat(it.Amount),
		Date:            parseTime(it.Date),
		Status:          entities.DepositChargeStatus(it.Status),
		ProviderPayload: it.Payload,
	}
	if it.PayloadRaw != "" {
		c.ProviderPayloadRaw = []byte(it.PayloadRaw)
	}
	return c
}
