package store

import (
	"context"
	"strconv"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RateConfigRepository persists the singleton base-rate document. Locally the
// rate round-trips as a decimal string under a fixed key.
type RateConfigRepository struct {
	dual        dualBackend
	defaultRate float64
}

func NewRateConfigRepository(session RemoteSession, localStore LocalBackend, defaultRate float64) *RateConfigRepository {
	return &RateConfigRepository{
		dual:        dualBackend{session: session, local: localStore},
		defaultRate: defaultRate,
	}
}

// Load returns the stored base rate. An absent remote document is seeded with
// the default in the same operation; an absent or unparseable local value
// falls back to the default without being written back.
func (r *RateConfigRepository) Load(ctx context.Context) (float64, error) {
	rate := r.defaultRate

	err := r.dual.run(ctx, "rate config read",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.RateConfig](db.Collection(consts.ConfigCollection))
			cfg, err := repo.Read(ctx, bson.M{"_id": consts.ConfigRateDocID})
			if err == mongo.ErrNoDocuments {
				_, err := repo.Create(ctx, models.RateConfig{ID: consts.ConfigRateDocID, Rate: r.defaultRate})
				return err
			}
			if err != nil {
				return err
			}
			rate = cfg.Rate
			return nil
		},
		func() error {
			stored, ok, err := r.dual.local.Get(consts.StorageKeyRate)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			parsed, perr := strconv.ParseFloat(stored, 64)
			if perr != nil {
				logger.Warn(ctx, "Stored rate %q unparseable, using default", stored)
				return nil
			}
			rate = parsed
			return nil
		})

	return rate, err
}

// Save overwrites the base rate (admin action).
func (r *RateConfigRepository) Save(ctx context.Context, rate float64) error {
	return r.dual.run(ctx, "rate config write",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.RateConfig](db.Collection(consts.ConfigCollection))
			return repo.Upsert(ctx, bson.M{"_id": consts.ConfigRateDocID}, bson.M{"rate": rate})
		},
		func() error {
			return r.dual.local.Set(consts.StorageKeyRate, strconv.FormatFloat(rate, 'f', -1, 64))
		})
}
