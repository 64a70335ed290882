package repository

import (
	"context"
	"strconv"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultFeesTableName = "fees"

type feeRecord struct {
	ID         int64  `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Percentage string `dynamodbav:"percentage,omitempty"`
	OwnerID    int64  `dynamodbav:"owner_id"`
}

// FeeDynamoRepository reads fee definitions written by the fee CRUD.
//
// Table requirements:
//   - PK: id (number)
//
// ListByIDs uses BatchGetItem, which returns only the keys that exist. That
// matches the lookup contract: missing ids are dropped, not reported.

type FeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFeeRepository = (*FeeDynamoRepository)(nil)

func NewFeeDynamoRepository(ddb *dynamodb.Client) *FeeDynamoRepository {
	return &FeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FEES_TABLE", defaultFeesTableName),
	}
}

func (r *FeeDynamoRepository) ListByIDs(ctx context.Context, ids []int64) ([]entities.Fee, error) {
	if len(ids) == 0 {
		return []entities.Fee{}, nil
	}

	keys := make([]map[string]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		})
	}

	out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
		RequestItems: map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		},
	})
	if err != nil {
		return nil, err
	}

	var recs []feeRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Responses[r.tableName], &recs); err != nil {
		return nil, err
	}

	fees := make([]entities.Fee, 0, len(recs))
	for _, rec := range recs {
		fee := entities.Fee{ID: rec.ID, Name: rec.Name, OwnerID: rec.OwnerID}
		if rec.Percentage != "" {
			if pct, err := decimal.NewFromString(rec.Percentage); err == nil {
				fee.Percentage = &pct
			}
		}
		fees = append(fees, fee)
	}
	return fees, nil
}
