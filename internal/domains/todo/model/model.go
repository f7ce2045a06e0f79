package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	CollectionName = "todos"
	EntityName     = "todo"

	FieldID        = "_id"
	FieldText      = "text"
	FieldCompleted = "completed"
)

// Todo is the stored document. ID is assigned on insert and never changes; Completed is
// the only field mutated after creation.
type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Text      string             `bson:"text"`
	Completed bool               `bson:"completed"`
}

// Exists reports whether the value was loaded from the store.
func (t Todo) Exists() bool {
	return !t.ID.IsZero()
}
