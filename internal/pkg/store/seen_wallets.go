package store

import (
	"context"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeenWalletRepository is a presence set keyed by wallet address. The read
// and the write are deliberately not atomic; concurrent first connections of
// the same address may double-mark, which the sole consumer tolerates.
type SeenWalletRepository struct {
	dual dualBackend
}

func NewSeenWalletRepository(session RemoteSession, localStore LocalBackend) *SeenWalletRepository {
	return &SeenWalletRepository{dual: dualBackend{session: session, local: localStore}}
}

// CheckAndMark reports whether address was seen for the first time, marking
// it in the same call when it was.
func (r *SeenWalletRepository) CheckAndMark(ctx context.Context, address string) (bool, error) {
	wasNew := false

	err := r.dual.run(ctx, "seen wallet check",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.SeenWalletRecord](db.Collection(consts.SeenWalletsCollection))
			_, err := repo.Read(ctx, bson.M{"_id": address})
			if err == nil {
				return nil
			}
			if err != mongo.ErrNoDocuments {
				return err
			}
			_, err = repo.Create(ctx, models.SeenWalletRecord{Wallet: address, SeenAt: time.Now().UTC()})
			if err != nil {
				return err
			}
			wasNew = true
			return nil
		},
		func() error {
			key := consts.SeenWalletKeyPrefix + address
			seen, err := r.dual.local.Has(key)
			if err != nil {
				return err
			}
			if seen {
				return nil
			}
			if err := r.dual.local.Set(key, "1"); err != nil {
				return err
			}
			wasNew = true
			return nil
		})

	return wasNew, err
}
