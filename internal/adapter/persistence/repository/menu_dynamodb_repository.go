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

const defaultMenusTableName = "menus"

type menuRecord struct {
	ID          int64  `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Price       string `dynamodbav:"price"`
	OwnerID     int64  `dynamodbav:"owner_id"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
}

// MenuDynamoRepository reads menu items written by the menu CRUD.
//
// Table requirements:
//   - PK: id (number)

type MenuDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMenuRepository = (*MenuDynamoRepository)(nil)

func NewMenuDynamoRepository(ddb *dynamodb.Client) *MenuDynamoRepository {
	return &MenuDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MENUS_TABLE", defaultMenusTableName),
	}
}

func (r *MenuDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Menu, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		return entities.Menu{}, err
	}
	if len(out.Item) == 0 {
		return entities.Menu{}, nil
	}

	var rec menuRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Menu{}, err
	}
	return entities.Menu{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       moneyFromString(rec.Price),
		OwnerID:     rec.OwnerID,
		CreatedAt:   timeFromString(rec.CreatedAt),
	}, nil
}
