package store

import (
	"context"
	"errors"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RemoteSession gates every remote attempt. Implemented by db.ConnectionManager.
type RemoteSession interface {
	RemoteAvailable() bool
	WithRemote(ctx context.Context, op func(ctx context.Context, db *mongo.Database) error) error
	Demote()
}

// LocalBackend is the slice of the local store the repositories use.
type LocalBackend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Has(key string) (bool, error)
}

// dualBackend runs each operation remote-first with at most one remote
// attempt. Any transport failure permanently demotes this session to the
// local backend; an already-demoted session goes straight to local.
//
// Business errors (CustomError values produced by the operation itself over a
// healthy connection, e.g. an invalid status transition) are returned as-is:
// the transport worked, so there is nothing to fail over from.
type dualBackend struct {
	session RemoteSession
	local   LocalBackend
}

func (d *dualBackend) run(ctx context.Context, opName string, remoteOp func(ctx context.Context, db *mongo.Database) error, localOp func() error) error {
	if d.session.RemoteAvailable() {
		err := d.session.WithRemote(ctx, remoteOp)
		if err == nil {
			return nil
		}
		var ce *models.CustomError
		if errors.As(err, &ce) && ce != consts.ErrorRemoteUnavailable {
			return err
		}
		logger.Warn(ctx, "%s failed on remote store, falling back to local: %v", opName, err)
		d.session.Demote()
	}

	if err := localOp(); err != nil {
		var ce *models.CustomError
		if errors.As(err, &ce) {
			return err
		}
		logger.Error(ctx, "%s failed on local store: %v", opName, err)
		return consts.ErrorPersistenceFailure
	}
	return nil
}
