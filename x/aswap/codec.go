package aswap

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pswap"
)

// State is the lifecycle state of a single deposit record.
type State int32

const (
	StateEmpty    State = 0
	StateFilled   State = 1
	StateRedeemed State = 2
	StateRefunded State = 3
)

var stateName = map[State]string{
	StateEmpty:    "Empty",
	StateFilled:   "Filled",
	StateRedeemed: "Redeemed",
	StateRefunded: "Refunded",
}

func (s State) String() string {
	if n, ok := stateName[s]; ok {
		return n
	}
	return "Unknown"
}

// Swap holds the terms of a swap. Only the secret changes after setup and
// only once.
type Swap struct {
	// Key is the sha256 hash of the secret. It identifies the swap.
	Key []byte `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	// Secret is the preimage of the key, revealed by the first redemption.
	Secret      []byte        `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
	Initiator   pswap.Address `protobuf:"bytes,3,opt,name=initiator,proto3,casttype=github.com/iov-one/pswap.Address" json:"initiator,omitempty"`
	Participant pswap.Address `protobuf:"bytes,4,opt,name=participant,proto3,casttype=github.com/iov-one/pswap.Address" json:"participant,omitempty"`
	// TokenA is deposited by the initiator.
	TokenA string `protobuf:"bytes,5,opt,name=token_a,json=tokenA,proto3" json:"token_a,omitempty"`
	// TokenB is deposited by the participant. The premium is paid in TokenB.
	TokenB string `protobuf:"bytes,6,opt,name=token_b,json=tokenB,proto3" json:"token_b,omitempty"`
}

func (m *Swap) Reset()         { *m = Swap{} }
func (m *Swap) String() string { return proto.CompactTextString(m) }
func (*Swap) ProtoMessage()    {}

// AssetRecord is a single deposit of a swap.
type AssetRecord struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
	// Expiry is set when the record is filled.
	Expiry pswap.UnixTime `protobuf:"varint,2,opt,name=expiry,proto3,casttype=github.com/iov-one/pswap.UnixTime" json:"expiry,omitempty"`
	State  State          `protobuf:"varint,3,opt,name=state,proto3,casttype=State" json:"state"`
}

func (m *AssetRecord) Reset()         { *m = AssetRecord{} }
func (m *AssetRecord) String() string { return proto.CompactTextString(m) }
func (*AssetRecord) ProtoMessage()    {}

// Configuration is the on-chain configuration of this extension.
type Configuration struct {
	// MaxSecretLength is the longest preimage accepted, in bytes.
	MaxSecretLength int32 `protobuf:"varint,1,opt,name=max_secret_length,json=maxSecretLength,proto3" json:"max_secret_length,omitempty"`
	// MaxDuration is the longest lock a deposit may request, in seconds.
	// Zero means no limit.
	MaxDuration int64 `protobuf:"varint,2,opt,name=max_duration,json=maxDuration,proto3" json:"max_duration,omitempty"`
}

func (m *Configuration) Reset()         { *m = Configuration{} }
func (m *Configuration) String() string { return proto.CompactTextString(m) }
func (*Configuration) ProtoMessage()    {}

// SetupMsg registers the terms of a new swap. It must be signed by the
// initiator.
type SetupMsg struct {
	Key               []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Initiator         pswap.Address `protobuf:"bytes,2,opt,name=initiator,proto3,casttype=github.com/iov-one/pswap.Address" json:"initiator,omitempty"`
	Participant       pswap.Address `protobuf:"bytes,3,opt,name=participant,proto3,casttype=github.com/iov-one/pswap.Address" json:"participant,omitempty"`
	TokenA            string        `protobuf:"bytes,4,opt,name=token_a,json=tokenA,proto3" json:"token_a,omitempty"`
	TokenB            string        `protobuf:"bytes,5,opt,name=token_b,json=tokenB,proto3" json:"token_b,omitempty"`
	InitiatorAmount   uint64        `protobuf:"varint,6,opt,name=initiator_amount,json=initiatorAmount,proto3" json:"initiator_amount,omitempty"`
	ParticipantAmount uint64        `protobuf:"varint,7,opt,name=participant_amount,json=participantAmount,proto3" json:"participant_amount,omitempty"`
	PremiumAmount     uint64        `protobuf:"varint,8,opt,name=premium_amount,json=premiumAmount,proto3" json:"premium_amount,omitempty"`
}

func (m *SetupMsg) Reset()         { *m = SetupMsg{} }
func (m *SetupMsg) String() string { return proto.CompactTextString(m) }
func (*SetupMsg) ProtoMessage()    {}

// InitiateMsg deposits the initiator's asset.
type InitiateMsg struct {
	Key    []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
	// Duration of the lock in seconds, counted from the block time.
	Duration int64 `protobuf:"varint,3,opt,name=duration,proto3" json:"duration,omitempty"`
}

func (m *InitiateMsg) Reset()         { *m = InitiateMsg{} }
func (m *InitiateMsg) String() string { return proto.CompactTextString(m) }
func (*InitiateMsg) ProtoMessage()    {}

// FillPremiumMsg deposits the premium.
type FillPremiumMsg struct {
	Key      []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender   pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
	Duration int64         `protobuf:"varint,3,opt,name=duration,proto3" json:"duration,omitempty"`
}

func (m *FillPremiumMsg) Reset()         { *m = FillPremiumMsg{} }
func (m *FillPremiumMsg) String() string { return proto.CompactTextString(m) }
func (*FillPremiumMsg) ProtoMessage()    {}

// ParticipateMsg deposits the participant's asset.
type ParticipateMsg struct {
	Key      []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender   pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
	Duration int64         `protobuf:"varint,3,opt,name=duration,proto3" json:"duration,omitempty"`
}

func (m *ParticipateMsg) Reset()         { *m = ParticipateMsg{} }
func (m *ParticipateMsg) String() string { return proto.CompactTextString(m) }
func (*ParticipateMsg) ProtoMessage()    {}

// RedeemAssetMsg reveals the secret to take the counterparty's deposit.
type RedeemAssetMsg struct {
	Key    []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
	Secret []byte        `protobuf:"bytes,3,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *RedeemAssetMsg) Reset()         { *m = RedeemAssetMsg{} }
func (m *RedeemAssetMsg) String() string { return proto.CompactTextString(m) }
func (*RedeemAssetMsg) ProtoMessage()    {}

// RefundAssetMsg returns an expired deposit to its depositor.
type RefundAssetMsg struct {
	Key    []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
}

func (m *RefundAssetMsg) Reset()         { *m = RefundAssetMsg{} }
func (m *RefundAssetMsg) String() string { return proto.CompactTextString(m) }
func (*RefundAssetMsg) ProtoMessage()    {}

// RedeemPremiumMsg pays the premium to the participant.
type RedeemPremiumMsg struct {
	Key    []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
}

func (m *RedeemPremiumMsg) Reset()         { *m = RedeemPremiumMsg{} }
func (m *RedeemPremiumMsg) String() string { return proto.CompactTextString(m) }
func (*RedeemPremiumMsg) ProtoMessage()    {}

// RefundPremiumMsg returns the premium to the initiator.
type RefundPremiumMsg struct {
	Key    []byte        `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Sender pswap.Address `protobuf:"bytes,2,opt,name=sender,proto3,casttype=github.com/iov-one/pswap.Address" json:"sender,omitempty"`
}

func (m *RefundPremiumMsg) Reset()         { *m = RefundPremiumMsg{} }
func (m *RefundPremiumMsg) String() string { return proto.CompactTextString(m) }
func (*RefundPremiumMsg) ProtoMessage()    {}
