package app

import (
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
)

// SignerCondition returns the condition that a batch transaction signed by
// given name is authenticated with.
func SignerCondition(name string) pswap.Condition {
	return pswap.NewCondition("pswapd", "signer", []byte(name))
}

// Tx is a single transaction of a batch file. Exactly one message must be
// set.
type Tx struct {
	// Signer is the name the transaction is authenticated as.
	Signer string `json:"signer"`
	// Time is the block time the transaction is processed at.
	Time pswap.UnixTime `json:"time"`

	Send          *token.SendMsg          `json:"send,omitempty"`
	Approve       *token.ApproveMsg       `json:"approve,omitempty"`
	Setup         *aswap.SetupMsg         `json:"setup,omitempty"`
	Initiate      *aswap.InitiateMsg      `json:"initiate,omitempty"`
	FillPremium   *aswap.FillPremiumMsg   `json:"fill_premium,omitempty"`
	Participate   *aswap.ParticipateMsg   `json:"participate,omitempty"`
	RedeemAsset   *aswap.RedeemAssetMsg   `json:"redeem_asset,omitempty"`
	RefundAsset   *aswap.RefundAssetMsg   `json:"refund_asset,omitempty"`
	RedeemPremium *aswap.RedeemPremiumMsg `json:"redeem_premium,omitempty"`
	RefundPremium *aswap.RefundPremiumMsg `json:"refund_premium,omitempty"`
}

var _ pswap.Tx = (*Tx)(nil)

// GetMsg returns the only message set.
func (tx *Tx) GetMsg() (pswap.Msg, error) {
	var msgs []pswap.Msg
	add := func(m pswap.Msg, isSet bool) {
		if isSet {
			msgs = append(msgs, m)
		}
	}
	add(tx.Send, tx.Send != nil)
	add(tx.Approve, tx.Approve != nil)
	add(tx.Setup, tx.Setup != nil)
	add(tx.Initiate, tx.Initiate != nil)
	add(tx.FillPremium, tx.FillPremium != nil)
	add(tx.Participate, tx.Participate != nil)
	add(tx.RedeemAsset, tx.RedeemAsset != nil)
	add(tx.RefundAsset, tx.RefundAsset != nil)
	add(tx.RedeemPremium, tx.RedeemPremium != nil)
	add(tx.RefundPremium, tx.RefundPremium != nil)

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages, want one", len(msgs))
	}
}

// Validate checks the envelope of the transaction.
func (tx *Tx) Validate() error {
	if tx.Signer == "" {
		return errors.Wrap(errors.ErrEmpty, "signer")
	}
	if tx.Time.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "time")
	}
	_, err := tx.GetMsg()
	return err
}

// ReadBatch parses a JSON array of transactions.
func ReadBatch(r io.Reader) ([]Tx, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "read batch: %s", err)
	}
	var txs []Tx
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode batch: %s", err)
	}
	for i := range txs {
		if err := txs[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "transaction %d", i)
		}
	}
	return txs, nil
}
