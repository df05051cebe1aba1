/*
Package app wires the token ledger and the swap extension into a single
application backed by a persistent iavl store.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/store/iavl"
	"github.com/iov-one/pswap/x"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
	"github.com/iov-one/pswap/x/utils"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is used as the application module name and the database name.
const Name = "pswap"

// Authenticator returns the authentication used by all handlers. Signers are
// attached to the context by whoever submits the transaction.
func Authenticator() x.Authenticator {
	return x.SignerAuth{}
}

// TokenControl returns a controller for the token ledger.
func TokenControl() token.BaseController {
	return token.NewController()
}

// Chain returns a chain of decorators, to handle logging, recovery and
// savepoints.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching token and swap messages.
func Router(authFn x.Authenticator, notifier aswap.Notifier) *app.Router {
	r := app.NewRouter()
	control := TokenControl()
	token.RegisterRoutes(r, authFn, control)
	aswap.RegisterRoutes(r, authFn, aswap.NewController(control, notifier))
	return r
}

// Stack wires up the router with the decorator chain.
func Stack(notifier aswap.Notifier) pswap.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, notifier))
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() pswap.Initializer {
	return app.ChainInitializers(
		token.Initializer{},
		aswap.Initializer{},
	)
}

// Application constructs the application with the given notifier. An empty
// dbPath keeps all data in memory.
func Application(dbPath string, notifier aswap.Notifier, logger log.Logger) (*app.Application, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	return app.NewApplication(Name, kv, Stack(notifier), logger)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (pswap.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewCommitStoreFromDB(dbm.NewMemDB()), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
}
