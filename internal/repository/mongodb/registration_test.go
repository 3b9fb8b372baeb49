package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"jobi-backend/internal/domain"
	"jobi-backend/internal/repository"
)

func TestFilterQuery(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, bson.M{}, filterQuery(repository.Filter{}))
	})

	t.Run("LaunchCohort", func(t *testing.T) {
		q := filterQuery(repository.Filter{HasEmail: true, Status: domain.StatusPending})
		assert.Equal(t, domain.StatusPending, q["status"])
		assert.Equal(t, bson.M{"$exists": true, "$nin": bson.A{nil, ""}}, q["email"])
	})

	t.Run("TypeSet", func(t *testing.T) {
		q := filterQuery(repository.Filter{Types: []domain.RegistrationType{domain.TypeWorker, domain.TypeBoth}})
		assert.Equal(t, bson.M{"$in": []domain.RegistrationType{domain.TypeWorker, domain.TypeBoth}}, q["type"])
	})

	t.Run("CreatedBound", func(t *testing.T) {
		midnight := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		q := filterQuery(repository.Filter{CreatedOnOrAfter: midnight})
		assert.Equal(t, bson.M{"$gte": midnight}, q["created_at"])
	})
}
