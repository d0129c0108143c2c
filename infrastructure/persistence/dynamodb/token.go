package dynamodb

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	apperrors "catalog-api/pkg/errors"
)

// Page tokens are the table's LastEvaluatedKey serialized as JSON and
// base64-encoded. Clients treat them as opaque.

func encodePageToken(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}
	var raw map[string]interface{}
	if err := attributevalue.UnmarshalMap(key, &raw); err != nil {
		return "", apperrors.NewInternalError("failed to encode page token").WithCause(err)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", apperrors.NewInternalError("failed to encode page token").WithCause(err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodePageToken(token string) (map[string]types.AttributeValue, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid pagination token")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.NewValidationError("Invalid pagination token")
	}
	key, err := attributevalue.MarshalMap(raw)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid pagination token")
	}
	return key, nil
}
