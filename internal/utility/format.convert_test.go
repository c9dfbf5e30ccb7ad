package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID_RoundTrip(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(ObjectID2String(id)))
}

func TestString2ObjectID_Invalid(t *testing.T) {
	assert.True(t, String2ObjectID("not-hex").IsZero())
	assert.True(t, String2ObjectID("").IsZero())
}
