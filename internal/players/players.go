// Package players holds the shared player document model and the error
// vocabulary the module repositories translate MongoDB failures into.
package players

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means no player document matched a well-formed id
	ErrNotFound = errors.New("player not found")

	// ErrMalformedID means the supplied id is not a valid object id.
	// Callers map this to a distinct 400, never a 404.
	ErrMalformedID = errors.New("malformed player id")

	// ErrDuplicateIdentity means the username or email is already taken
	ErrDuplicateIdentity = errors.New("username or email already in use")
)

// ParseID converts a client-supplied id string into an ObjectID,
// normalizing the driver's hex error to ErrMalformedID
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}
	return oid, nil
}
