package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"comanda/internal/domain/entities"
	"comanda/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ownerCreatedIndexName  = "owner_id-created_at-index"

	// Item id 0 is reserved for the id counter; real orders start at 1.
	counterItemID = 0
)

type orderLineItemRecord struct {
	MenuID   int64  `dynamodbav:"menu_id"`
	MenuName string `dynamodbav:"menu_name"`
	Quantity int    `dynamodbav:"quantity"`
	Price    string `dynamodbav:"price"`
}

type appliedFeeRecord struct {
	Name   string `dynamodbav:"name"`
	Amount string `dynamodbav:"amount"`
}

type orderRecord struct {
	ID                int64                 `dynamodbav:"id"`
	OwnerID           int64                 `dynamodbav:"owner_id"`
	TableNumber       int                   `dynamodbav:"table_number"`
	Items             []orderLineItemRecord `dynamodbav:"items"`
	AppliedFees       []appliedFeeRecord    `dynamodbav:"applied_fees"`
	AdditionalComment string                `dynamodbav:"additional_comment,omitempty"`
	TotalOrderPrice   string                `dynamodbav:"total_order_price"`
	TotalFeesValue    string                `dynamodbav:"total_fees_value"`
	FinalTotalPrice   string                `dynamodbav:"final_total_price"`
	Status            string                `dynamodbav:"status"`
	CreatedAt         string                `dynamodbav:"created_at"`
	StartedAt         string                `dynamodbav:"started_at,omitempty"`
	FinishedAt        string                `dynamodbav:"finished_at,omitempty"`
	Version           int64                 `dynamodbav:"version"`
}

// OrderDynamoRepository persists Order aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI (owner_id-created_at-index): owner_id (number) + created_at (string)
//
// Ids are allocated from an atomic counter item (id = 0, attribute last_id),
// and every write after the first is guarded by a version condition so that
// concurrent status transitions for the same order cannot interleave.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return entities.Order{}, fmt.Errorf("allocate order id: %w", err)
	}

	o.ID = id
	o.CreatedAt = time.Now().UTC()
	o.Version = 1

	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var rec orderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec), nil
}

// Update replaces the full aggregate, conditioned on the version the caller
// loaded. A lost race returns interfaces.ErrVersionConflict instead of
// clobbering the other writer's (status, started_at, finished_at) tuple.
func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version++

	av, err := attributevalue.MarshalMap(toOrderRecord(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) ListByOwnerAndCreatedBetween(ctx context.Context, ownerID int64, start, end time.Time) ([]entities.Order, error) {
	var orders []entities.Order

	paginator := dynamodb.NewQueryPaginator(r.ddb, r.ownerRangeQuery(ownerID, start, end))
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var recs []orderRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		for _, rec := range recs {
			orders = append(orders, fromOrderRecord(rec))
		}
	}
	return orders, nil
}

// AveragePreparationSeconds computes the aggregate at the store boundary:
// mean of finished_at - created_at over the owner's orders in [start, end]
// that reached DONE and carry a finished_at. ok is false when nothing
// qualifies.
func (r *OrderDynamoRepository) AveragePreparationSeconds(ctx context.Context, ownerID int64, start, end time.Time) (float64, bool, error) {
	input := r.ownerRangeQuery(ownerID, start, end)
	input.FilterExpression = aws.String("#status = :done AND attribute_exists(finished_at)")
	input.ExpressionAttributeNames["#status"] = "status"
	input.ExpressionAttributeValues[":done"] = &types.AttributeValueMemberS{Value: string(entities.StatusDone)}

	var sum float64
	var count int

	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, false, err
		}
		var recs []orderRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return 0, false, err
		}
		for _, rec := range recs {
			if rec.FinishedAt == "" {
				continue
			}
			created := timeFromString(rec.CreatedAt)
			finished := timeFromString(rec.FinishedAt)
			sum += finished.Sub(created).Seconds()
			count++
		}
	}

	if count == 0 {
		return 0, false, nil
	}
	return sum / float64(count), true, nil
}

func (r *OrderDynamoRepository) ownerRangeQuery(ownerID int64, start, end time.Time) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerCreatedIndexName),
		KeyConditionExpression: aws.String("#owner_id = :owner_id AND #created_at BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id":   "owner_id",
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(ownerID, 10)},
			":start":    &types.AttributeValueMemberS{Value: timeToString(start)},
			":end":      &types.AttributeValueMemberS{Value: timeToString(end)},
		},
	}
}

// nextID increments the counter item and returns the new value.
func (r *OrderDynamoRepository) nextID(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(counterItemID)},
		},
		UpdateExpression: aws.String("ADD last_id :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	attr, ok := out.Attributes["last_id"]
	if !ok {
		return 0, errors.New("counter item missing last_id")
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter last_id is not a number")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func toOrderRecord(o entities.Order) orderRecord {
	items := make([]orderLineItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItemRecord{
			MenuID:   it.MenuID,
			MenuName: it.MenuName,
			Quantity: it.Quantity,
			Price:    moneyToString(it.Price),
		})
	}
	fees := make([]appliedFeeRecord, 0, len(o.AppliedFees))
	for _, f := range o.AppliedFees {
		fees = append(fees, appliedFeeRecord{Name: f.Name, Amount: moneyToString(f.Amount)})
	}
	return orderRecord{
		ID:                o.ID,
		OwnerID:           o.OwnerID,
		TableNumber:       o.TableNumber,
		Items:             items,
		AppliedFees:       fees,
		AdditionalComment: o.AdditionalComment,
		TotalOrderPrice:   moneyToString(o.TotalOrderPrice),
		TotalFeesValue:    moneyToString(o.TotalFeesValue),
		FinalTotalPrice:   moneyToString(o.FinalTotalPrice),
		Status:            string(o.Status),
		CreatedAt:         timeToString(o.CreatedAt),
		StartedAt:         optionalTimeToString(o.StartedAt),
		FinishedAt:        optionalTimeToString(o.FinishedAt),
		Version:           o.Version,
	}
}

func fromOrderRecord(rec orderRecord) entities.Order {
	items := make([]entities.OrderLineItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.OrderLineItem{
			MenuID:   it.MenuID,
			MenuName: it.MenuName,
			Quantity: it.Quantity,
			Price:    moneyFromString(it.Price),
		})
	}
	fees := make([]entities.AppliedFee, 0, len(rec.AppliedFees))
	for _, f := range rec.AppliedFees {
		fees = append(fees, entities.AppliedFee{Name: f.Name, Amount: moneyFromString(f.Amount)})
	}
	return entities.Order{
		ID:                rec.ID,
		OwnerID:           rec.OwnerID,
		TableNumber:       rec.TableNumber,
		Items:             items,
		AppliedFees:       fees,
		AdditionalComment: rec.AdditionalComment,
		TotalOrderPrice:   moneyFromString(rec.TotalOrderPrice),
		TotalFeesValue:    moneyFromString(rec.TotalFeesValue),
		FinalTotalPrice:   moneyFromString(rec.FinalTotalPrice),
		Status:            entities.OrderStatus(rec.Status),
		CreatedAt:         timeFromString(rec.CreatedAt),
		StartedAt:         optionalTimeFromString(rec.StartedAt),
		FinishedAt:        optionalTimeFromString(rec.FinishedAt),
		Version:           rec.Version,
	}
}
