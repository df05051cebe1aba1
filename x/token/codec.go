package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/pswap"
)

// Balance is the amount of a single token held by an account.
type Balance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return proto.CompactTextString(m) }
func (*Balance) ProtoMessage()    {}

// Allowance is the amount of a token a spender may still move from the
// owner's account.
type Allowance struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Allowance) Reset()         { *m = Allowance{} }
func (m *Allowance) String() string { return proto.CompactTextString(m) }
func (*Allowance) ProtoMessage()    {}

// SendMsg moves tokens from the source account to the destination.
type SendMsg struct {
	Token       string        `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Source      pswap.Address `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/pswap.Address" json:"source,omitempty"`
	Destination pswap.Address `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/pswap.Address" json:"destination,omitempty"`
	Amount      uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string        `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *SendMsg) Reset()         { *m = SendMsg{} }
func (m *SendMsg) String() string { return proto.CompactTextString(m) }
func (*SendMsg) ProtoMessage()    {}

// ApproveMsg sets the amount of tokens the spender is allowed to move from
// the owner's account. It replaces any previous allowance.
type ApproveMsg struct {
	Token   string        `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Owner   pswap.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/pswap.Address" json:"owner,omitempty"`
	Spender pswap.Address `protobuf:"bytes,3,opt,name=spender,proto3,casttype=github.com/iov-one/pswap.Address" json:"spender,omitempty"`
	Amount  uint64        `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *ApproveMsg) Reset()         { *m = ApproveMsg{} }
func (m *ApproveMsg) String() string { return proto.CompactTextString(m) }
func (*ApproveMsg) ProtoMessage()    {}
