package repository

import (
	"context"
	"sort"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteLimit is the DynamoDB cap on requests per BatchWriteItem call.
const batchWriteLimit = 25

type templateItem struct {
	Key              string   `dynamodbav:"key"`
	Name             string   `dynamodbav:"name"`
	Fields           []string `dynamodbav:"fields"`
	ShowHeader       bool     `dynamodbav:"show_header"`
	ShowCustomerInfo bool     `dynamodbav:"show_customer_info"`
	ShowCompanyInfo  bool     `dynamodbav:"show_company_info"`
	ShowNotice       bool     `dynamodbav:"show_notice"`
	ShowSignature    bool     `dynamodbav:"show_signature"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// TemplateDynamoRepository stores customized contract templates.
//
// Table requirements:
//   - PK: key (string)
type TemplateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb DynamoAPI) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault(envTemplatesTable, defaultTemplatesTableName),
	}
}

func (r *TemplateDynamoRepository) List(ctx context.Context) ([]entities.Template, error) {
	var out []entities.Template
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it templateItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromTemplateItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *TemplateDynamoRepository) Get(ctx context.Context, key string) (entities.Template, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("key", key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Template{}, err
	}
	if len(out.Item) == 0 {
		return entities.Template{}, nil
	}

	var it templateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Template{}, err
	}
	return fromTemplateItem(it), nil
}

func (r *TemplateDynamoRepository) Put(ctx context.Context, t entities.Template) (entities.Template, error) {
	av, err := attributevalue.MarshalMap(toTemplateItem(t))
	if err != nil {
		return entities.Template{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.Template{}, err
	}
	return t, nil
}

func toTemplateItem(t entities.Template) templateItem {
	fields := t.Fields
	if fields == nil {
		fields = []string{}
	}
	return templateItem{
		Key:              t.Key,
		Name:             t.Name,
		Fields:           fields,
		ShowHeader:       t.ShowHeader,
		ShowCustomerInfo: t.ShowCustomerInfo,
		ShowCompanyInfo:  t.ShowCompanyInfo,
		ShowNotice:       t.ShowNotice,
		ShowSignature:    t.ShowSignature,
		UpdatedAt:        formatTime(t.UpdatedAt),
	}
}

func fromTemplateItem(it templateItem) entities.Template {
	return entities.Template{
		Key:              it.Key,
		Name:             it.Name,
		Fields:           it.Fields,
		ShowHeader:       it.ShowHeader,
		ShowCustomerInfo: it.ShowCustomerInfo,
		ShowCompanyInfo:  it.ShowCompanyInfo,
		ShowNotice:       it.ShowNotice,
		ShowSignature:    it.ShowSignature,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

type settingItem struct {
	Key   string `dynamodbav:"key"`
	Value string `dynamodbav:"value"`
}

// SettingsDynamoRepository is a key/value store for company profile, notice
// text and the selected template.
//
// Table requirements:
//   - PK: key (string)
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault(envSettingsTable, defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("key", key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, err
	}
	if len(out.Item) == 0 {
		return "", false, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, err
	}
	return it.Value, true, nil
}

// GetMany returns only the keys that are set.
func (r *SettingsDynamoRepository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	reqKeys := make([]map[string]types.AttributeValue, 0, len(keys))
	for _, k := range keys {
		reqKeys = append(reqKeys, stringKey("key", k))
	}
	pending := map[string]types.KeysAndAttributes{
		r.tableName: {Keys: reqKeys, ConsistentRead: aws.Bool(true)},
	}

	for len(pending) > 0 {
		out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Responses[r.tableName] {
			var it settingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			values[it.Key] = it.Value
		}
		pending = out.UnprocessedKeys
	}
	return values, nil
}

func (r *SettingsDynamoRepository) PutMany(ctx context.Context, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	writes := make([]types.WriteRequest, 0, len(keys))
	for _, k := range keys {
		av, err := attributevalue.MarshalMap(settingItem{Key: k, Value: values[k]})
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for start := 0; start < len(writes); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(writes) {
			end = len(writes)
		}
		pending := map[string][]types.WriteRequest{r.tableName: writes[start:end]}
		for len(pending) > 0 {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return err
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}
