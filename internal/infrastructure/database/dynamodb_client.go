package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - DYNAMODB_CREATE_TABLES (optional; creates missing tables on start)
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	if isTruthy(os.Getenv("DYNAMODB_CREATE_TABLES")) {
		if err := EnsureTables(ctx, client, DefaultTables()); err != nil {
			log.Fatalf("failed to create dynamodb tables: %v", err)
		}
	}
	return client
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

// TableSpec describes a table keyed by a single string attribute, with
// optional string-keyed global secondary indexes.
type TableSpec struct {
	Name    string
	Key     string
	Indexes map[string]string // index name -> partition key
}

// DefaultTables lists the service tables, honouring the *_TABLE overrides.
func DefaultTables() []TableSpec {
	return []TableSpec{
		{Name: getenvDefault("CONTRACTS_TABLE", "contracts"), Key: "id", Indexes: map[string]string{"estimate_no-index": "estimate_no"}},
		{Name: getenvDefault("ESTIMATES_TABLE", "estimates"), Key: "estimate_no"},
		{Name: getenvDefault("PENDING_ESTIMATES_TABLE", "pending_estimates"), Key: "estimate_no"},
		{Name: getenvDefault("TEMPLATES_TABLE", "contract_templates"), Key: "key"},
		{Name: getenvDefault("SETTINGS_TABLE", "settings"), Key: "key"},
		{Name: getenvDefault("DEPOSIT_CHARGES_TABLE", "deposit_charges"), Key: "id", Indexes: map[string]string{"contract_id-index": "contract_id"}},
	}
}

type tableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the given tables with on-demand billing. Existing
// tables are left untouched.
func EnsureTables(ctx context.Context, client tableCreator, specs []TableSpec) error {
	for _, s := range specs {
		_, err := client.CreateTable(ctx, createTableInput(s))
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[database][dynamodb] table created name=%s", s.Name)
		case errors.As(err, &inUse):
		default:
			return err
		}
	}
	return nil
}

func createTableInput(s TableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(s.Key), AttributeType: types.ScalarAttributeTypeS}}
	var gsis []types.GlobalSecondaryIndex
	for name, key := range s.Indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(key), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(s.Name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(s.Key), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
