package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/diegosantosouza/projeto-teste-truther/internal/domain/entities"
)

const usersCollection = "users"

// NewUserRepository instantiates the user repository.
func NewUserRepository(db *mongo.Database) *BaseRepository[entities.User, entities.UserInput] {
	return NewBaseRepository[entities.User, entities.UserInput](db.Collection(usersCollection))
}
