package db

import (
	"context"
	"sync"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectionManager owns the remote store handle and the session connection
// state. Long-lived channels are observed to fail under unstable networks, so
// every remote call runs a connect, execute, disconnect cycle and no caller
// may hold a connection across operations.
//
// The availability flag moves in one direction only: the startup probe may
// set it true once, and any later remote failure clears it for the remainder
// of the session.
type ConnectionManager struct {
	uri         string
	dbName      string
	maxPoolSize uint64
	minPoolSize uint64
	maxIdleTime time.Duration

	mu              sync.Mutex
	remoteAvailable bool
}

type ManagerOptions struct {
	URI             string
	DatabaseName    string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
}

func NewConnectionManager(opts ManagerOptions) *ConnectionManager {
	return &ConnectionManager{
		uri:         opts.URI,
		dbName:      opts.DatabaseName,
		maxPoolSize: opts.MaxPoolSize,
		minPoolSize: opts.MinPoolSize,
		maxIdleTime: opts.MaxConnIdleTime,
	}
}

func (m *ConnectionManager) connect(ctx context.Context) (*mongo.Client, error) {
	clientOptions := options.Client().
		ApplyURI(m.uri).
		SetMaxPoolSize(m.maxPoolSize).
		SetMinPoolSize(m.minPoolSize).
		SetMaxConnIdleTime(m.maxIdleTime)

	return mongo.Connect(ctx, clientOptions)
}

type probeResult struct {
	cfg *models.RateConfig
	err error
}

// Probe runs exactly once at startup. It races one connect-and-read attempt
// against the timeout; whichever settles first wins. The in-flight attempt is
// not cancelled when the timer fires, but a late success is dropped rather
// than applied, so it can never resurrect remote mode after the session
// already settled on local.
func (m *ConnectionManager) Probe(ctx context.Context, timeout time.Duration) *models.RateConfig {
	ch := make(chan probeResult, 1)

	go func() {
		cctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
		defer cancel()

		client, err := m.connect(cctx)
		if err != nil {
			ch <- probeResult{err: err}
			return
		}
		defer func() {
			if derr := client.Disconnect(cctx); derr != nil {
				logger.Warn("Probe disconnect failed: %v", derr)
			}
		}()

		if err := client.Ping(cctx, nil); err != nil {
			ch <- probeResult{err: err}
			return
		}

		var cfg models.RateConfig
		err = client.Database(m.dbName).
			Collection(consts.ConfigCollection).
			FindOne(cctx, bson.M{"_id": consts.ConfigRateDocID}).
			Decode(&cfg)
		if err == mongo.ErrNoDocuments {
			ch <- probeResult{}
			return
		}
		if err != nil {
			ch <- probeResult{err: err}
			return
		}
		ch <- probeResult{cfg: &cfg}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			logger.Warn(ctx, "Remote store unavailable, using local storage: %v", res.err)
			m.setAvailable(false)
			return nil
		}
		m.setAvailable(true)
		logger.Info(ctx, "Remote store connected")
		return res.cfg
	case <-time.After(timeout):
		logger.Warn(ctx, "Remote store probe timed out after %s, using local storage", timeout)
		m.setAvailable(false)
		return nil
	case <-ctx.Done():
		m.setAvailable(false)
		return nil
	}
}

// WithRemote is the only sanctioned path to the remote backend. It fails fast
// with ErrorRemoteUnavailable when the session is demoted or never connected;
// otherwise it connects, executes op and disconnects again regardless of the
// outcome.
func (m *ConnectionManager) WithRemote(ctx context.Context, op func(ctx context.Context, db *mongo.Database) error) error {
	if !m.RemoteAvailable() {
		return consts.ErrorRemoteUnavailable
	}

	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if derr := client.Disconnect(ctx); derr != nil {
			logger.Warn(ctx, "Remote disconnect failed: %v", derr)
		}
	}()

	return op(ctx, client.Database(m.dbName))
}

// Demote permanently switches the session to local-only. There is no way
// back within a session; repeated timeout costs on a known-impaired network
// are not worth the reconciliation headaches.
func (m *ConnectionManager) Demote() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.remoteAvailable {
		logger.Warn("Session demoted to local storage")
	}
	m.remoteAvailable = false
}

func (m *ConnectionManager) RemoteAvailable() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remoteAvailable
}

func (m *ConnectionManager) setAvailable(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remoteAvailable = v
}
