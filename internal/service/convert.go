package service

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToInt coerces the loosely-typed numeric fields found in stored documents
// and request bodies. Unparseable values coerce to zero.
func ToInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.Atoi(s); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f)
		}
	}
	return 0
}

// idFilter builds an _id filter from a hex path parameter.
func idFilter(hex string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, ErrBadObjectID
	}
	return bson.M{"_id": oid}, nil
}
