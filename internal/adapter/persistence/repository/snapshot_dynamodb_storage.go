package repository

import (
	"context"
	"time"

	"mecanica_goelzer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSnapshotTableName = "snapshots"

type snapshotItem struct {
	ID        string `dynamodbav:"id"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// IDynamoDBClient is the subset of *dynamodb.Client the snapshot storage needs.
type IDynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// SnapshotDynamoStorage persists the document as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
type SnapshotDynamoStorage struct {
	ddb       IDynamoDBClient
	tableName string
	key       string
}

var _ interfaces.ISnapshotStorage = (*SnapshotDynamoStorage)(nil)

func NewSnapshotDynamoStorage(ddb IDynamoDBClient) *SnapshotDynamoStorage {
	return &SnapshotDynamoStorage{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOT_TABLE", defaultSnapshotTableName),
		key:       snapshotKey(defaultSnapshotKey),
	}
}

// TableName is the table the document is read from and written to.
func (s *SnapshotDynamoStorage) TableName() string {
	return s.tableName
}

func (s *SnapshotDynamoStorage) Load(ctx context.Context) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Document), nil
}

func (s *SnapshotDynamoStorage) Save(ctx context.Context, document []byte) error {
	av, err := attributevalue.MarshalMap(snapshotItem{
		ID:        s.key,
		Document:  string(document),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
