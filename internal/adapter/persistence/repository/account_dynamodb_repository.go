package repository

import (
	"context"
	"strconv"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

type accountRecord struct {
	UserID  int64  `dynamodbav:"user_id"`
	OwnerID int64  `dynamodbav:"owner_id"`
	Role    string `dynamodbav:"role"`
	Name    string `dynamodbav:"name,omitempty"`
}

// AccountDynamoRepository reads the accounts projection maintained by the
// accounts subsystem. Staff rows carry the owning admin's id in owner_id;
// admin rows carry their own.
//
// Table requirements:
//   - PK: user_id (number)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) GetByUserID(ctx context.Context, userID int64) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"user_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(userID, 10)},
		},
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var rec accountRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Account{}, err
	}
	return entities.Account{
		UserID:  rec.UserID,
		OwnerID: rec.OwnerID,
		Role:    entities.AccountRole(rec.Role),
		Name:    rec.Name,
	}, nil
}
