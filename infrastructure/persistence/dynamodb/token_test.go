package dynamodb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "catalog-api/pkg/errors"
)

func TestPageTokenRoundTrip(t *testing.T) {
	key := map[string]types.AttributeValue{
		"PK":     &types.AttributeValueMemberS{Value: "PRODUCT_LIST#abc"},
		"SK":     &types.AttributeValueMemberS{Value: "PRODUCT_LIST#abc"},
		"GSI3PK": &types.AttributeValueMemberS{Value: "PRODUCT_LIST"},
		"GSI3SK": &types.AttributeValueMemberS{Value: "WIDGET"},
	}

	token, err := encodePageToken(key)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := decodePageToken(token)
	require.NoError(t, err)
	require.Len(t, decoded, 4)

	pk, ok := decoded["PK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "PRODUCT_LIST#abc", pk.Value)
}

func TestEncodePageTokenEmptyKey(t *testing.T) {
	token, err := encodePageToken(nil)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDecodePageTokenInvalid(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"not base64", "not-valid-base64!!!"},
		{"not json", "bm90IGpzb24="},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodePageToken(tc.token)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}
