package weavetest

import "github.com/iov-one/pswap"

// Tx represents a transaction that carries a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg pswap.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ pswap.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (pswap.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a mock implementing pswap.Msg. It is not meant to be serialized.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ pswap.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return "weavetest.Msg " + m.RoutePath }
func (*Msg) ProtoMessage()    {}
