package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển chuỗi hex thành ObjectID.
// Trả về NilObjectID nếu chuỗi không hợp lệ.
func String2ObjectID(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// ObjectID2String chuyển ObjectID thành chuỗi hex.
func ObjectID2String(id primitive.ObjectID) string {
	return id.Hex()
}
