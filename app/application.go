package app

import (
	"context"
	"io"
	"regexp"
	"time"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// IsValidChainID is the RegExp to ensure valid chain IDs
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

var chainIDKey = []byte("_app:chain_id")

// Application ties a committing store to a handler stack. It processes
// transactions strictly one after another. Each delivered transaction runs in
// its own savepoint that is written only when the handler succeeded, and
// Commit persists everything written since the previous commit.
type Application struct {
	name    string
	store   pswap.CommitKVStore
	handler pswap.Handler
	logger  log.Logger
	chainID string
}

// NewApplication loads the latest state of given store.
func NewApplication(name string, store pswap.CommitKVStore, handler pswap.Handler, logger log.Logger) (*Application, error) {
	if logger == nil {
		logger = pswap.DefaultLogger
	}
	if err := store.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load store")
	}
	raw, err := store.Get(chainIDKey)
	if err != nil {
		return nil, errors.Wrap(err, "load chain id")
	}
	return &Application{
		name:    name,
		store:   store,
		handler: handler,
		logger:  logger.With("module", name),
		chainID: string(raw),
	}, nil
}

// ChainID returns the chain id stored at genesis, or an empty string if the
// application was not initialized yet.
func (a *Application) ChainID() string {
	return a.chainID
}

// Logger returns the application base logger.
func (a *Application) Logger() log.Logger {
	return a.logger
}

// InitChain runs all initializers with the genesis application state and
// commits the result. It can be called only once per store.
func (a *Application) InitChain(gen Genesis, init pswap.Initializer) (pswap.CommitID, error) {
	if a.chainID != "" {
		return pswap.CommitID{}, errors.Wrapf(errors.ErrState, "already initialized as %q", a.chainID)
	}
	if !IsValidChainID(gen.ChainID) {
		return pswap.CommitID{}, errors.Wrapf(errors.ErrInput, "invalid chain id %q", gen.ChainID)
	}
	cache := a.store.CacheWrap()
	if err := cache.Set(chainIDKey, []byte(gen.ChainID)); err != nil {
		cache.Discard()
		return pswap.CommitID{}, err
	}
	if err := init.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return pswap.CommitID{}, errors.Wrap(err, "genesis")
	}
	if err := cache.Write(); err != nil {
		return pswap.CommitID{}, err
	}
	a.chainID = gen.ChainID
	a.logger.Info("Initialized chain", "chain_id", gen.ChainID)
	return a.store.Commit()
}

// BlockContext returns the context every transaction of a block is
// processed with.
func (a *Application) BlockContext(height int64, now time.Time) pswap.Context {
	ctx := pswap.WithLogger(context.Background(), a.logger)
	ctx = pswap.WithChainID(ctx, a.chainID)
	ctx = pswap.WithHeight(ctx, height)
	return pswap.WithBlockTime(ctx, now)
}

// CheckTx runs the check phase of given transaction. Nothing is ever
// written.
func (a *Application) CheckTx(ctx pswap.Context, tx pswap.Tx) (*pswap.CheckResult, error) {
	cache := a.store.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(ctx, cache, tx)
}

// DeliverTx processes given transaction. State changes are kept only when
// the handler succeeds.
func (a *Application) DeliverTx(ctx pswap.Context, tx pswap.Tx) (*pswap.DeliverResult, error) {
	if a.chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "write tx")
	}
	return res, nil
}

// LatestVersion returns the last committed version of the store.
func (a *Application) LatestVersion() (pswap.CommitID, error) {
	return a.store.LatestVersion()
}

// Commit persists all delivered transactions.
func (a *Application) Commit() (pswap.CommitID, error) {
	id, err := a.store.Commit()
	if err != nil {
		return id, err
	}
	a.logger.Debug("Commit", "version", id.Version, "hash", id.Hash)
	return id, nil
}

// Store returns a read only view of the latest state.
func (a *Application) Store() pswap.ReadOnlyKVStore {
	return a.store.CacheWrap()
}

// Close releases the store if it holds any resources.
func (a *Application) Close() error {
	if c, ok := a.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
