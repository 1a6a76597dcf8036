package store

import (
	"context"
	"encoding/json"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoanRepository stores loan records. Remote reads come back ordered by
// creation time descending; the local backend is a single serialized list
// read in full and rewritten in full on every mutation, so local reads
// return reverse append order to approximate recency.
type LoanRepository struct {
	dual dualBackend
}

func NewLoanRepository(session RemoteSession, localStore LocalBackend) *LoanRepository {
	return &LoanRepository{dual: dualBackend{session: session, local: localStore}}
}

// Insert appends a fully constructed record. On the remote path the
// backend-assigned id is written back onto the record.
func (r *LoanRepository) Insert(ctx context.Context, loan *models.LoanRecord) error {
	return r.dual.run(ctx, "loan insert",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.LoanRecord](db.Collection(consts.LoansCollection))
			res, err := repo.Create(ctx, loan)
			if err != nil {
				return err
			}
			if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
				loan.RemoteID = oid
			}
			return nil
		},
		func() error {
			loans := r.readLocal(ctx)
			loans = append(loans, *loan)
			return r.writeLocal(loans)
		})
}

// FindAll returns a fresh snapshot of every record, most recent first.
func (r *LoanRepository) FindAll(ctx context.Context) ([]models.LoanRecord, error) {
	var loans []models.LoanRecord

	err := r.dual.run(ctx, "loan list",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.LoanRecord](db.Collection(consts.LoansCollection))
			res, err := repo.FindAll(ctx, bson.M{}, bson.D{{Key: "createdAt", Value: -1}})
			if err != nil {
				return err
			}
			loans = res
			return nil
		},
		func() error {
			stored := r.readLocal(ctx)
			loans = make([]models.LoanRecord, 0, len(stored))
			for i := len(stored) - 1; i >= 0; i-- {
				loans = append(loans, stored[i])
			}
			return nil
		})

	return loans, err
}

// UpdateStatus applies a pending-to-terminal transition. A missing record or
// a record that already left pending is a business error, not a store
// failure, and does not demote the session.
func (r *LoanRepository) UpdateStatus(ctx context.Context, id, newStatus string) error {
	return r.dual.run(ctx, "loan status update",
		func(ctx context.Context, db *mongo.Database) error {
			repo := NewMongoRepository[models.LoanRecord](db.Collection(consts.LoansCollection))
			existing, err := repo.Read(ctx, bson.M{"loanId": id})
			if err == mongo.ErrNoDocuments {
				return consts.ErrorLoanNotFound
			}
			if err != nil {
				return err
			}
			if existing.Status != models.LoanStatusPending {
				return consts.ErrorInvalidStatusTransition
			}
			return repo.Update(ctx, bson.M{"loanId": id}, bson.M{"status": newStatus})
		},
		func() error {
			loans := r.readLocal(ctx)
			for i := range loans {
				if loans[i].LoanID != id {
					continue
				}
				if loans[i].Status != models.LoanStatusPending {
					return consts.ErrorInvalidStatusTransition
				}
				loans[i].Status = newStatus
				return r.writeLocal(loans)
			}
			return consts.ErrorLoanNotFound
		})
}

// readLocal favors availability over strict durability: a missing key or
// corrupt payload reads as an empty collection.
func (r *LoanRepository) readLocal(ctx context.Context) []models.LoanRecord {
	stored, ok, err := r.dual.local.Get(consts.StorageKeyLoans)
	if err != nil || !ok {
		if err != nil {
			logger.Warn(ctx, "Local loan read failed: %v", err)
		}
		return nil
	}
	var loans []models.LoanRecord
	if err := json.Unmarshal([]byte(stored), &loans); err != nil {
		logger.Warn(ctx, "Local loan payload corrupt, treating as empty: %v", err)
		return nil
	}
	return loans
}

func (r *LoanRepository) writeLocal(loans []models.LoanRecord) error {
	payload, err := json.Marshal(loans)
	if err != nil {
		return err
	}
	return r.dual.local.Set(consts.StorageKeyLoans, string(payload))
}
