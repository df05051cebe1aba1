package aswap

import (
	"encoding/hex"
	"sync"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
)

// Ledger moves tokens between accounts. token.BaseController implements it.
type Ledger interface {
	BalanceOf(db pswap.ReadOnlyKVStore, ticker string, owner pswap.Address) (uint64, error)
	Transfer(db pswap.KVStore, ticker string, from, to pswap.Address, amount uint64) error
	TransferFrom(db pswap.KVStore, ticker string, spender, from, to pswap.Address, amount uint64) error
}

// EscrowAddress is the account holding all deposits. Depositors must approve
// it as a spender of the deposited amount.
var EscrowAddress = pswap.NewCondition("aswap", "escrow", nil).Address()

// Terms are the parameters of a new swap.
type Terms struct {
	Initiator         pswap.Address
	Participant       pswap.Address
	TokenA            string
	TokenB            string
	InitiatorAmount   uint64
	ParticipantAmount uint64
	PremiumAmount     uint64
}

// Protocol is the set of operations a swap supports.
type Protocol interface {
	Setup(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, t Terms) error
	Initiate(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error
	FillPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error
	Participate(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error
	RedeemAsset(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key, secret []byte) error
	RefundAsset(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error
	RedeemPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error
	RefundPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error
}

// Controller executes swap operations. Every operation checks all
// preconditions first, then writes the new swap state and moves the tokens
// in a single savepoint. The notifier is called only after the savepoint was
// written.
type Controller struct {
	registry *Registry
	ledger   Ledger
	notifier Notifier

	mu   sync.Mutex
	busy map[string]struct{}
}

var _ Protocol = (*Controller)(nil)

// NewController returns a controller moving tokens with given ledger. A nil
// notifier drops all events.
func NewController(ledger Ledger, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = MultiNotifier(nil)
	}
	return &Controller{
		registry: NewRegistry(),
		ledger:   ledger,
		notifier: notifier,
		busy:     make(map[string]struct{}),
	}
}

// transition is the outcome of a successful precondition check.
type transition struct {
	next     *SwapState
	changed  State
	transfer func(db pswap.KVStore) error
	event    Event
}

// Swap returns the current state of the swap.
func (c *Controller) Swap(db pswap.ReadOnlyKVStore, key []byte) (*SwapState, error) {
	return c.registry.Load(db, key)
}

// Check returns the error the message would fail with, without changing any
// state.
func (c *Controller) Check(ctx pswap.Context, db pswap.ReadOnlyKVStore, msg SwapMsg) error {
	_, err := c.plan(ctx, db, msg)
	return err
}

// Execute processes the message. The sender of the message is trusted to be
// the caller, authentication is up to the handler.
func (c *Controller) Execute(ctx pswap.Context, db pswap.KVStore, msg SwapMsg) error {
	key := msg.SwapKey()
	release, err := c.acquire(key)
	if err != nil {
		return err
	}
	defer release()

	t, err := c.plan(ctx, db, msg)
	if err != nil {
		return err
	}
	if err := c.apply(db, t); err != nil {
		return err
	}

	pswap.GetLogger(ctx).Debug("swap transition",
		"swap", hex.EncodeToString(key),
		"op", msg.Path(),
		"state", t.changed.String())
	c.notifier.Notify(ctx, t.event)
	return nil
}

// acquire marks the swap as being processed. Nested calls for the same swap,
// for example from a token transfer callback, are rejected.
func (c *Controller) acquire(key []byte) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := string(key)
	if _, ok := c.busy[k]; ok {
		return nil, errors.Wrapf(ErrReentrant, "swap %X", key)
	}
	c.busy[k] = struct{}{}
	return func() {
		c.mu.Lock()
		delete(c.busy, k)
		c.mu.Unlock()
	}, nil
}

// apply writes the new state before moving any tokens. Nothing is written if
// the transfer fails.
func (c *Controller) apply(db pswap.KVStore, t *transition) error {
	cstore, ok := db.(pswap.CacheableKVStore)
	if !ok {
		return errors.Wrapf(errors.ErrHuman, "store %T does not support savepoints", db)
	}
	cache := cstore.CacheWrap()
	if err := c.registry.Save(cache, t.next); err != nil {
		cache.Discard()
		return err
	}
	if t.transfer != nil {
		if err := t.transfer(cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "transfer")
		}
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (c *Controller) plan(ctx pswap.Context, db pswap.ReadOnlyKVStore, msg SwapMsg) (*transition, error) {
	if err := msg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid message")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "configuration")
	}

	switch m := msg.(type) {
	case *SetupMsg:
		return c.planSetup(ctx, db, m)
	case *InitiateMsg:
		return c.planDeposit(ctx, db, conf, m.Key, m.Sender, m.Duration, InitiatorAsset)
	case *FillPremiumMsg:
		return c.planDeposit(ctx, db, conf, m.Key, m.Sender, m.Duration, Premium)
	case *ParticipateMsg:
		return c.planDeposit(ctx, db, conf, m.Key, m.Sender, m.Duration, ParticipantAsset)
	case *RedeemAssetMsg:
		return c.planRedeemAsset(ctx, db, conf, m)
	case *RefundAssetMsg:
		return c.planRefundAsset(ctx, db, m)
	case *RedeemPremiumMsg:
		return c.planRedeemPremium(ctx, db, m)
	case *RefundPremiumMsg:
		return c.planRefundPremium(ctx, db, m)
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "unknown message %T", msg)
	}
}

func (c *Controller) planSetup(ctx pswap.Context, db pswap.ReadOnlyKVStore, m *SetupMsg) (*transition, error) {
	switch has, err := c.registry.Has(db, m.Key); {
	case err != nil:
		return nil, err
	case has:
		return nil, errors.Wrapf(errors.ErrDuplicate, "swap %X already exists", m.Key)
	}

	next := &SwapState{
		Swap: &Swap{
			Key:         m.Key,
			Initiator:   m.Initiator,
			Participant: m.Participant,
			TokenA:      m.TokenA,
			TokenB:      m.TokenB,
		},
		InitiatorAsset:   &AssetRecord{Amount: m.InitiatorAmount},
		ParticipantAsset: &AssetRecord{Amount: m.ParticipantAmount},
		Premium:          &AssetRecord{Amount: m.PremiumAmount},
	}
	return &transition{
		next:    next,
		changed: StateEmpty,
		event: SetUpEvent{
			Time:              pswap.MustBlockTime(ctx),
			Key:               m.Key,
			Initiator:         m.Initiator,
			Participant:       m.Participant,
			TokenA:            m.TokenA,
			TokenB:            m.TokenB,
			InitiatorAmount:   m.InitiatorAmount,
			ParticipantAmount: m.ParticipantAmount,
			PremiumAmount:     m.PremiumAmount,
		},
	}, nil
}

// depositRule describes who deposits what into a record.
type depositRule struct {
	depositor func(*Swap) pswap.Address
	role      string
	token     func(*Swap) string
	kind      EventKind
}

var depositRules = map[RecordKind]depositRule{
	InitiatorAsset: {
		depositor: func(s *Swap) pswap.Address { return s.Initiator },
		role:      "initiator",
		token:     func(s *Swap) string { return s.TokenA },
		kind:      KindInitiated,
	},
	Premium: {
		depositor: func(s *Swap) pswap.Address { return s.Initiator },
		role:      "initiator",
		token:     func(s *Swap) string { return s.TokenB },
		kind:      KindPremiumFilled,
	},
	ParticipantAsset: {
		depositor: func(s *Swap) pswap.Address { return s.Participant },
		role:      "participant",
		token:     func(s *Swap) string { return s.TokenB },
		kind:      KindParticipated,
	},
}

func (c *Controller) planDeposit(
	ctx pswap.Context,
	db pswap.ReadOnlyKVStore,
	conf Configuration,
	key []byte,
	caller pswap.Address,
	duration int64,
	kind RecordKind,
) (*transition, error) {
	s, err := c.registry.Load(db, key)
	if err != nil {
		return nil, err
	}
	rule := depositRules[kind]
	ticker := rule.token(s.Swap)
	rec := s.Record(kind)

	guards := []guard{
		callerIs(caller, rule.depositor(s.Swap), rule.role),
		recordIn(s, kind, StateEmpty),
	}
	if kind == ParticipantAsset {
		guards = append(guards, premiumFilled(s), notExpired(ctx, s, Premium))
	}
	guards = append(guards, covers(c.ledger, db, ticker, caller, rec.Amount))
	if err := checkAll(guards...); err != nil {
		return nil, err
	}

	now := pswap.MustBlockTime(ctx)
	expiry, err := ComputeExpiry(now, duration, conf.MaxDuration)
	if err != nil {
		return nil, err
	}
	if err := rec.Fill(expiry); err != nil {
		return nil, err
	}

	amount := rec.Amount
	return &transition{
		next:    s,
		changed: rec.State,
		transfer: func(db pswap.KVStore) error {
			return c.ledger.TransferFrom(db, ticker, EscrowAddress, caller, EscrowAddress, amount)
		},
		event: DepositEvent{
			EventKind: rule.kind,
			Time:      now,
			Key:       key,
			Depositor: caller,
			Token:     ticker,
			Amount:    amount,
			Expiry:    expiry,
		},
	}, nil
}

// payout returns the transfer of a settled record from the escrow.
func (c *Controller) payout(ticker string, to pswap.Address, amount uint64) func(pswap.KVStore) error {
	return func(db pswap.KVStore) error {
		return c.ledger.Transfer(db, ticker, EscrowAddress, to, amount)
	}
}

// planRedeemAsset pays the counterparty's deposit to the caller.
func (c *Controller) planRedeemAsset(ctx pswap.Context, db pswap.ReadOnlyKVStore, conf Configuration, m *RedeemAssetMsg) (*transition, error) {
	s, err := c.registry.Load(db, m.Key)
	if err != nil {
		return nil, err
	}

	var (
		kind   RecordKind
		ticker string
		ev     EventKind
	)
	switch {
	case m.Sender.Equals(s.Swap.Initiator):
		kind, ticker, ev = ParticipantAsset, s.Swap.TokenB, KindParticipantAssetRedeemed
	case m.Sender.Equals(s.Swap.Participant):
		kind, ticker, ev = InitiatorAsset, s.Swap.TokenA, KindInitiatorAssetRedeemed
	default:
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller is not a swap party")
	}

	err = checkAll(
		recordIn(s, kind, StateFilled),
		notExpired(ctx, s, kind),
		secretMatches(m.Key, m.Secret, conf.MaxSecretLength),
	)
	if err != nil {
		return nil, err
	}

	rec := s.Record(kind)
	if err := rec.Redeem(); err != nil {
		return nil, err
	}
	if len(s.Swap.Secret) == 0 {
		s.Swap.Secret = m.Secret
	}

	return &transition{
		next:     s,
		changed:  rec.State,
		transfer: c.payout(ticker, m.Sender, rec.Amount),
		event: SettlementEvent{
			EventKind: ev,
			Time:      pswap.MustBlockTime(ctx),
			Key:       m.Key,
			Recipient: m.Sender,
			Token:     ticker,
			Amount:    rec.Amount,
			Secret:    m.Secret,
		},
	}, nil
}

// planRefundAsset returns the caller's own expired deposit.
func (c *Controller) planRefundAsset(ctx pswap.Context, db pswap.ReadOnlyKVStore, m *RefundAssetMsg) (*transition, error) {
	s, err := c.registry.Load(db, m.Key)
	if err != nil {
		return nil, err
	}

	var (
		kind   RecordKind
		ticker string
		ev     EventKind
	)
	switch {
	case m.Sender.Equals(s.Swap.Initiator):
		kind, ticker, ev = InitiatorAsset, s.Swap.TokenA, KindInitiatorAssetRefunded
	case m.Sender.Equals(s.Swap.Participant):
		kind, ticker, ev = ParticipantAsset, s.Swap.TokenB, KindParticipantAssetRefunded
	default:
		return nil, errors.Wrap(errors.ErrUnauthorized, "caller is not a swap party")
	}

	err = checkAll(
		premiumFilled(s),
		recordIn(s, kind, StateFilled),
		expired(ctx, s, kind),
	)
	if err != nil {
		return nil, err
	}

	rec := s.Record(kind)
	if err := rec.Refund(); err != nil {
		return nil, err
	}
	return &transition{
		next:     s,
		changed:  rec.State,
		transfer: c.payout(ticker, m.Sender, rec.Amount),
		event: SettlementEvent{
			EventKind: ev,
			Time:      pswap.MustBlockTime(ctx),
			Key:       m.Key,
			Recipient: m.Sender,
			Token:     ticker,
			Amount:    rec.Amount,
		},
	}, nil
}

// planRedeemPremium pays the premium to the participant that deposited and
// settled its asset before the premium expired.
func (c *Controller) planRedeemPremium(ctx pswap.Context, db pswap.ReadOnlyKVStore, m *RedeemPremiumMsg) (*transition, error) {
	s, err := c.registry.Load(db, m.Key)
	if err != nil {
		return nil, err
	}
	err = checkAll(
		callerIs(m.Sender, s.Swap.Participant, "participant"),
		premiumFilled(s),
		recordTerminal(s, ParticipantAsset),
		notExpired(ctx, s, Premium),
	)
	if err != nil {
		return nil, err
	}
	if err := s.Premium.Redeem(); err != nil {
		return nil, err
	}
	return &transition{
		next:     s,
		changed:  s.Premium.State,
		transfer: c.payout(s.Swap.TokenB, m.Sender, s.Premium.Amount),
		event: SettlementEvent{
			EventKind: KindPremiumRedeemed,
			Time:      pswap.MustBlockTime(ctx),
			Key:       m.Key,
			Recipient: m.Sender,
			Token:     s.Swap.TokenB,
			Amount:    s.Premium.Amount,
		},
	}, nil
}

// planRefundPremium returns the expired premium to the initiator if the
// participant never deposited.
func (c *Controller) planRefundPremium(ctx pswap.Context, db pswap.ReadOnlyKVStore, m *RefundPremiumMsg) (*transition, error) {
	s, err := c.registry.Load(db, m.Key)
	if err != nil {
		return nil, err
	}
	err = checkAll(
		callerIs(m.Sender, s.Swap.Initiator, "initiator"),
		premiumFilled(s),
		recordIn(s, ParticipantAsset, StateEmpty),
		expired(ctx, s, Premium),
	)
	if err != nil {
		return nil, err
	}
	if err := s.Premium.Refund(); err != nil {
		return nil, err
	}
	return &transition{
		next:     s,
		changed:  s.Premium.State,
		transfer: c.payout(s.Swap.TokenB, m.Sender, s.Premium.Amount),
		event: SettlementEvent{
			EventKind: KindPremiumRefunded,
			Time:      pswap.MustBlockTime(ctx),
			Key:       m.Key,
			Recipient: m.Sender,
			Token:     s.Swap.TokenB,
			Amount:    s.Premium.Amount,
		},
	}, nil
}

// Setup registers the swap terms. Only the initiator can set up a swap.
func (c *Controller) Setup(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, t Terms) error {
	if !caller.Equals(t.Initiator) {
		return errors.Wrap(errors.ErrUnauthorized, "caller is not the initiator")
	}
	return c.Execute(ctx, db, &SetupMsg{
		Key:               key,
		Initiator:         t.Initiator,
		Participant:       t.Participant,
		TokenA:            t.TokenA,
		TokenB:            t.TokenB,
		InitiatorAmount:   t.InitiatorAmount,
		ParticipantAmount: t.ParticipantAmount,
		PremiumAmount:     t.PremiumAmount,
	})
}

// Initiate deposits the initiator's asset, locked for duration seconds.
func (c *Controller) Initiate(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error {
	return c.Execute(ctx, db, &InitiateMsg{Key: key, Sender: caller, Duration: duration})
}

// FillPremium deposits the premium, locked for duration seconds.
func (c *Controller) FillPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error {
	return c.Execute(ctx, db, &FillPremiumMsg{Key: key, Sender: caller, Duration: duration})
}

// Participate deposits the participant's asset, locked for duration seconds.
func (c *Controller) Participate(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte, duration int64) error {
	return c.Execute(ctx, db, &ParticipateMsg{Key: key, Sender: caller, Duration: duration})
}

// RedeemAsset reveals the secret and pays the counterparty's deposit to the
// caller.
func (c *Controller) RedeemAsset(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key, secret []byte) error {
	return c.Execute(ctx, db, &RedeemAssetMsg{Key: key, Sender: caller, Secret: secret})
}

// RefundAsset returns the caller's expired deposit.
func (c *Controller) RefundAsset(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error {
	return c.Execute(ctx, db, &RefundAssetMsg{Key: key, Sender: caller})
}

// RedeemPremium pays the premium to the participant.
func (c *Controller) RedeemPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error {
	return c.Execute(ctx, db, &RedeemPremiumMsg{Key: key, Sender: caller})
}

// RefundPremium returns the premium to the initiator.
func (c *Controller) RefundPremium(ctx pswap.Context, db pswap.KVStore, caller pswap.Address, key []byte) error {
	return c.Execute(ctx, db, &RefundPremiumMsg{Key: key, Sender: caller})
}
