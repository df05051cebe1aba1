package app

import (
	"encoding/hex"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x"
)

// TxResult is the outcome of a single batch transaction.
type TxResult struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
	Data  string `json:"data,omitempty"`
	Err   string `json:"error,omitempty"`
}

// DeliverBatch processes all transactions as a single block and commits it.
// A failing transaction does not stop the batch, its state changes are
// dropped and the error is reported in its result.
func DeliverBatch(a *app.Application, txs []Tx) ([]TxResult, pswap.CommitID, error) {
	last, err := a.LatestVersion()
	if err != nil {
		return nil, pswap.CommitID{}, errors.Wrap(err, "latest version")
	}
	height := last.Version + 1

	results := make([]TxResult, 0, len(txs))
	for i := range txs {
		tx := &txs[i]
		ctx := a.BlockContext(height, tx.Time.Time())
		ctx = x.WithSigners(ctx, SignerCondition(tx.Signer))

		res := TxResult{Index: i, Path: pswap.GetPath(tx)}
		if _, err := a.CheckTx(ctx, tx); err != nil {
			res.Err = err.Error()
		} else if out, err := a.DeliverTx(ctx, tx); err != nil {
			res.Err = err.Error()
		} else {
			res.Data = hex.EncodeToString(out.Data)
		}
		results = append(results, res)
	}

	id, err := a.Commit()
	if err != nil {
		return results, id, errors.Wrap(err, "commit")
	}
	return results, id, nil
}
