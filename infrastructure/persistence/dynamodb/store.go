// Package dynamodb implements the single-table storage client on top of
// AWS SDK v2. Conditional-check failures are translated into the application
// error taxonomy at this boundary so callers never see SDK error types.
package dynamodb

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"catalog-api/application/ports"
	"catalog-api/infrastructure/persistence/schema"
	apperrors "catalog-api/pkg/errors"
	"catalog-api/pkg/observability"
)

const (
	batchGetMaxKeys    = 100
	batchWriteMaxItems = 25
)

// Store implements ports.Storage against a single DynamoDB table.
type Store struct {
	client    *awsdynamodb.Client
	tableName string
	logger    *zap.Logger
	metrics   *observability.Metrics
	tracer    *observability.Tracer
}

// NewStore creates a storage client bound to one table
func NewStore(client *awsdynamodb.Client, tableName string, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// WithMetrics enables CloudWatch instrumentation of store calls
func (s *Store) WithMetrics(m *observability.Metrics) *Store {
	s.metrics = m
	return s
}

// WithTracer enables X-Ray subsegments around store calls
func (s *Store) WithTracer(t *observability.Tracer) *Store {
	s.tracer = t
	return s
}

// instrument wraps a store call with optional tracing and metrics
func (s *Store) instrument(ctx context.Context, operation string, fn func(context.Context) error) error {
	start := time.Now()
	var err error
	if s.tracer != nil {
		err = s.tracer.TraceCall(ctx, "dynamodb."+operation, fn)
	} else {
		err = fn(ctx)
	}
	if s.metrics != nil {
		s.metrics.RecordStoreCall(ctx, operation, time.Since(start), err)
	}
	return err
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		schema.PKField: &types.AttributeValueMemberS{Value: pk},
		schema.SKField: &types.AttributeValueMemberS{Value: sk},
	}
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// databaseError wraps a failed SDK call, carrying the AWS error code when
// one is present
func databaseError(operation string, err error) error {
	dbErr := apperrors.NewDatabaseError(operation, err)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		dbErr = dbErr.WithCode(apiErr.ErrorCode())
	}
	return dbErr
}

// Get returns the item, or nil when absent
func (s *Store) Get(ctx context.Context, pk, sk string) (ports.Item, error) {
	var item ports.Item
	err := s.instrument(ctx, "GetItem", func(ctx context.Context) error {
		out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
			TableName: aws.String(s.tableName),
			Key:       itemKey(pk, sk),
		})
		if err != nil {
			return databaseError("get_item", err)
		}
		if len(out.Item) == 0 {
			return nil
		}
		var raw map[string]interface{}
		if err := attributevalue.UnmarshalMap(out.Item, &raw); err != nil {
			return apperrors.NewDatabaseError("get_item", err)
		}
		item = normalizeItem(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Put writes a full item, optionally failing when the key already exists
func (s *Store) Put(ctx context.Context, item ports.Item, opts ports.PutOptions) error {
	return s.instrument(ctx, "PutItem", func(ctx context.Context) error {
		av, err := attributevalue.MarshalMap(map[string]interface{}(item))
		if err != nil {
			return apperrors.NewDatabaseError("put_item", err)
		}

		input := &awsdynamodb.PutItemInput{
			TableName: aws.String(s.tableName),
			Item:      av,
		}
		if opts.IfNotExists {
			cond := expression.AttributeNotExists(expression.Name(schema.PKField))
			expr, err := expression.NewBuilder().WithCondition(cond).Build()
			if err != nil {
				return apperrors.NewDatabaseError("put_item", err)
			}
			input.ConditionExpression = expr.Condition()
			input.ExpressionAttributeNames = expr.Names()
		}

		if _, err := s.client.PutItem(ctx, input); err != nil {
			if isConditionalCheckFailed(err) {
				return apperrors.NewDuplicateError("Item already exists")
			}
			return databaseError("put_item", err)
		}

		s.logger.Debug("item written",
			zap.Any("pk", item[schema.PKField]),
			zap.Bool("if_not_exists", opts.IfNotExists))
		return nil
	})
}

// Update applies a partial update and returns the full updated item
func (s *Store) Update(ctx context.Context, pk, sk string, spec ports.UpdateSpec) (ports.Item, error) {
	var item ports.Item
	err := s.instrument(ctx, "UpdateItem", func(ctx context.Context) error {
		if len(spec.Set) == 0 {
			return apperrors.NewValidationError("No fields to update")
		}

		var upd expression.UpdateBuilder
		for name, value := range spec.Set {
			upd = upd.Set(expression.Name(name), expression.Value(value))
		}
		builder := expression.NewBuilder().WithUpdate(upd)
		if spec.IfExists {
			builder = builder.WithCondition(expression.AttributeExists(expression.Name(schema.PKField)))
		}
		expr, err := builder.Build()
		if err != nil {
			return apperrors.NewDatabaseError("update_item", err)
		}

		out, err := s.client.UpdateItem(ctx, &awsdynamodb.UpdateItemInput{
			TableName:                 aws.String(s.tableName),
			Key:                       itemKey(pk, sk),
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ReturnValues:              types.ReturnValueAllNew,
		})
		if err != nil {
			if isConditionalCheckFailed(err) {
				return apperrors.NewNotFoundError("Item not found")
			}
			return databaseError("update_item", err)
		}

		var raw map[string]interface{}
		if err := attributevalue.UnmarshalMap(out.Attributes, &raw); err != nil {
			return apperrors.NewDatabaseError("update_item", err)
		}
		item = normalizeItem(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item and returns the deleted item, or nil when absent
func (s *Store) Delete(ctx context.Context, pk, sk string) (ports.Item, error) {
	var item ports.Item
	err := s.instrument(ctx, "DeleteItem", func(ctx context.Context) error {
		out, err := s.client.DeleteItem(ctx, &awsdynamodb.DeleteItemInput{
			TableName:    aws.String(s.tableName),
			Key:          itemKey(pk, sk),
			ReturnValues: types.ReturnValueAllOld,
		})
		if err != nil {
			return databaseError("delete_item", err)
		}
		if len(out.Attributes) == 0 {
			return nil
		}
		var raw map[string]interface{}
		if err := attributevalue.UnmarshalMap(out.Attributes, &raw); err != nil {
			return apperrors.NewDatabaseError("delete_item", err)
		}
		item = normalizeItem(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Exists reports item presence using a key-only projection read
func (s *Store) Exists(ctx context.Context, pk, sk string) (bool, error) {
	var found bool
	err := s.instrument(ctx, "GetItem", func(ctx context.Context) error {
		proj := expression.NamesList(expression.Name(schema.PKField))
		expr, err := expression.NewBuilder().WithProjection(proj).Build()
		if err != nil {
			return apperrors.NewDatabaseError("check_item_exists", err)
		}
		out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
			TableName:                aws.String(s.tableName),
			Key:                      itemKey(pk, sk),
			ProjectionExpression:     expr.Projection(),
			ExpressionAttributeNames: expr.Names(),
		})
		if err != nil {
			return databaseError("check_item_exists", err)
		}
		found = len(out.Item) > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// QueryIndex runs a paginated query against a secondary index
func (s *Store) QueryIndex(ctx context.Context, query ports.IndexQuery) (ports.QueryPage, error) {
	var page ports.QueryPage
	err := s.instrument(ctx, "Query", func(ctx context.Context) error {
		keyCond := expression.Key(query.PKField).Equal(expression.Value(query.PKValue))
		if query.SKPrefix != "" {
			keyCond = keyCond.And(expression.Key(query.SKField).BeginsWith(query.SKPrefix))
		}
		expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
		if err != nil {
			return apperrors.NewDatabaseError("query_index", err)
		}

		input := &awsdynamodb.QueryInput{
			TableName:                 aws.String(s.tableName),
			IndexName:                 aws.String(query.IndexName),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		}
		if query.Limit > 0 {
			input.Limit = aws.Int32(query.Limit)
		}
		if query.NextToken != "" {
			start, err := decodePageToken(query.NextToken)
			if err != nil {
				return err
			}
			input.ExclusiveStartKey = start
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			return databaseError("query_index", err)
		}

		items := make([]ports.Item, 0, len(out.Items))
		for _, av := range out.Items {
			var raw map[string]interface{}
			if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
				return apperrors.NewDatabaseError("query_index", err)
			}
			items = append(items, normalizeItem(raw))
		}

		token, err := encodePageToken(out.LastEvaluatedKey)
		if err != nil {
			return err
		}
		page = ports.QueryPage{Items: items, NextToken: token}

		s.logger.Debug("index queried",
			zap.String("index", query.IndexName),
			zap.String("partition", query.PKValue),
			zap.Int("items", len(items)),
			zap.Bool("more", token != ""))
		return nil
	})
	if err != nil {
		return ports.QueryPage{}, err
	}
	return page, nil
}

// BatchGet fetches multiple items in chunks, retrying unprocessed keys.
// Absent keys are silently skipped; result order is not guaranteed.
func (s *Store) BatchGet(ctx context.Context, keys []ports.Key) ([]ports.Item, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var items []ports.Item
	err := s.instrument(ctx, "BatchGetItem", func(ctx context.Context) error {
		for start := 0; start < len(keys); start += batchGetMaxKeys {
			end := start + batchGetMaxKeys
			if end > len(keys) {
				end = len(keys)
			}

			requestKeys := make([]map[string]types.AttributeValue, 0, end-start)
			for _, k := range keys[start:end] {
				requestKeys = append(requestKeys, itemKey(k.PK, k.SK))
			}

			request := map[string]types.KeysAndAttributes{
				s.tableName: {Keys: requestKeys},
			}
			for len(request) > 0 {
				out, err := s.client.BatchGetItem(ctx, &awsdynamodb.BatchGetItemInput{
					RequestItems: request,
				})
				if err != nil {
					return databaseError("batch_get_items", err)
				}
				for _, av := range out.Responses[s.tableName] {
					var raw map[string]interface{}
					if err := attributevalue.UnmarshalMap(av, &raw); err != nil {
						return apperrors.NewDatabaseError("batch_get_items", err)
					}
					items = append(items, normalizeItem(raw))
				}
				request = out.UnprocessedKeys
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// BatchWrite puts and deletes multiple items in chunks of at most 25
// requests, retrying unprocessed writes.
func (s *Store) BatchWrite(ctx context.Context, puts []ports.Item, deletes []ports.Key) error {
	requests := make([]types.WriteRequest, 0, len(puts)+len(deletes))
	for _, item := range puts {
		av, err := attributevalue.MarshalMap(map[string]interface{}(item))
		if err != nil {
			return apperrors.NewDatabaseError("batch_write_items", err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	for _, k := range deletes {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{Key: itemKey(k.PK, k.SK)},
		})
	}
	if len(requests) == 0 {
		return nil
	}

	return s.instrument(ctx, "BatchWriteItem", func(ctx context.Context) error {
		for start := 0; start < len(requests); start += batchWriteMaxItems {
			end := start + batchWriteMaxItems
			if end > len(requests) {
				end = len(requests)
			}

			pending := map[string][]types.WriteRequest{
				s.tableName: requests[start:end],
			}
			for len(pending) > 0 {
				out, err := s.client.BatchWriteItem(ctx, &awsdynamodb.BatchWriteItemInput{
					RequestItems: pending,
				})
				if err != nil {
					return databaseError("batch_write_items", err)
				}
				pending = out.UnprocessedItems
			}
		}
		return nil
	})
}
