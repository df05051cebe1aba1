package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/x/token"
)

const (
	pathSetup         = "aswap/setup"
	pathInitiate      = "aswap/initiate"
	pathFillPremium   = "aswap/fill_premium"
	pathParticipate   = "aswap/participate"
	pathRedeemAsset   = "aswap/redeem_asset"
	pathRefundAsset   = "aswap/refund_asset"
	pathRedeemPremium = "aswap/redeem_premium"
	pathRefundPremium = "aswap/refund_premium"
)

// SwapMsg is implemented by all messages of this extension. Sender is the
// address that must sign the transaction.
type SwapMsg interface {
	pswap.Msg
	SwapKey() []byte
	SenderAddress() pswap.Address
}

var (
	_ SwapMsg = (*SetupMsg)(nil)
	_ SwapMsg = (*InitiateMsg)(nil)
	_ SwapMsg = (*FillPremiumMsg)(nil)
	_ SwapMsg = (*ParticipateMsg)(nil)
	_ SwapMsg = (*RedeemAssetMsg)(nil)
	_ SwapMsg = (*RefundAssetMsg)(nil)
	_ SwapMsg = (*RedeemPremiumMsg)(nil)
	_ SwapMsg = (*RefundPremiumMsg)(nil)
)

// ROUTING, Path method fulfills pswap.Msg interface to allow routing

func (SetupMsg) Path() string         { return pathSetup }
func (InitiateMsg) Path() string      { return pathInitiate }
func (FillPremiumMsg) Path() string   { return pathFillPremium }
func (ParticipateMsg) Path() string   { return pathParticipate }
func (RedeemAssetMsg) Path() string   { return pathRedeemAsset }
func (RefundAssetMsg) Path() string   { return pathRefundAsset }
func (RedeemPremiumMsg) Path() string { return pathRedeemPremium }
func (RefundPremiumMsg) Path() string { return pathRefundPremium }

func (m *SetupMsg) SwapKey() []byte         { return m.Key }
func (m *InitiateMsg) SwapKey() []byte      { return m.Key }
func (m *FillPremiumMsg) SwapKey() []byte   { return m.Key }
func (m *ParticipateMsg) SwapKey() []byte   { return m.Key }
func (m *RedeemAssetMsg) SwapKey() []byte   { return m.Key }
func (m *RefundAssetMsg) SwapKey() []byte   { return m.Key }
func (m *RedeemPremiumMsg) SwapKey() []byte { return m.Key }
func (m *RefundPremiumMsg) SwapKey() []byte { return m.Key }

// SenderAddress of a setup is the initiator.
func (m *SetupMsg) SenderAddress() pswap.Address         { return m.Initiator }
func (m *InitiateMsg) SenderAddress() pswap.Address      { return m.Sender }
func (m *FillPremiumMsg) SenderAddress() pswap.Address   { return m.Sender }
func (m *ParticipateMsg) SenderAddress() pswap.Address   { return m.Sender }
func (m *RedeemAssetMsg) SenderAddress() pswap.Address   { return m.Sender }
func (m *RefundAssetMsg) SenderAddress() pswap.Address   { return m.Sender }
func (m *RedeemPremiumMsg) SenderAddress() pswap.Address { return m.Sender }
func (m *RefundPremiumMsg) SenderAddress() pswap.Address { return m.Sender }

// VALIDATION, Validate method makes sure basic rules are enforced upon input
// data and fulfills pswap.Msg interface. Durations are checked against the
// block time when the message is processed.

func (m *SetupMsg) Validate() error {
	if err := ValidateKey(m.Key); err != nil {
		return err
	}
	if err := m.Initiator.Validate(); err != nil {
		return errors.Wrap(err, "initiator")
	}
	if err := m.Participant.Validate(); err != nil {
		return errors.Wrap(err, "participant")
	}
	if m.Initiator.Equals(m.Participant) {
		return errors.Wrap(errors.ErrInput, "initiator and participant must differ")
	}
	if err := token.ValidateTicker(m.TokenA); err != nil {
		return errors.Wrap(err, "token a")
	}
	if err := token.ValidateTicker(m.TokenB); err != nil {
		return errors.Wrap(err, "token b")
	}
	if m.TokenA == m.TokenB {
		return errors.Wrap(errors.ErrInput, "tokens must differ")
	}
	if m.InitiatorAmount == 0 || m.ParticipantAmount == 0 || m.PremiumAmount == 0 {
		return errors.Wrap(errors.ErrAmount, "all amounts must be positive")
	}
	return nil
}

func validateKeySender(key []byte, sender pswap.Address) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := sender.Validate(); err != nil {
		return errors.Wrap(err, "sender")
	}
	return nil
}

func (m *InitiateMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}

func (m *FillPremiumMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}

func (m *ParticipateMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}

func (m *RedeemAssetMsg) Validate() error {
	if err := validateKeySender(m.Key, m.Sender); err != nil {
		return err
	}
	if len(m.Secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret")
	}
	return nil
}

func (m *RefundAssetMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}

func (m *RedeemPremiumMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}

func (m *RefundPremiumMsg) Validate() error {
	return validateKeySender(m.Key, m.Sender)
}
