/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func encodeParams(args []any) ([]types.AttributeValue, error) {
	if len(args) == 0 {
		return nil, nil
	}
	params := make([]types.AttributeValue, len(args))
	for i, arg := range args {
		av, err := attributevalue.Marshal(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal parameter %d: %w", i+1, err)
		}
		params[i] = av
	}
	return params, nil
}

// decodeAttribute converts an attribute to a normalized scalar. Numbers become
// int64 when integral and float64 otherwise.
func decodeAttribute(av types.AttributeValue) (any, error) {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return tv.Value, nil

	case *types.AttributeValueMemberN:
		if n, err := strconv.ParseInt(tv.Value, 10, 64); err == nil {
			return n, nil
		}
		return strconv.ParseFloat(tv.Value, 64)

	case *types.AttributeValueMemberB:
		return tv.Value, nil

	case *types.AttributeValueMemberBOOL:
		return tv.Value, nil

	case *types.AttributeValueMemberNULL:
		return nil, nil

	default:
		// Lists, maps and sets have no scalar form.
		var out any
		if err := attributevalue.Unmarshal(av, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}
