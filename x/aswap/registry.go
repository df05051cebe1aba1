package aswap

import (
	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/orm"
	"github.com/iov-one/pswap/x/token"
)

// RecordKind names one of the three deposits of a swap.
type RecordKind int

const (
	InitiatorAsset RecordKind = iota
	ParticipantAsset
	Premium
)

func (k RecordKind) String() string {
	switch k {
	case InitiatorAsset:
		return "initiator asset"
	case ParticipantAsset:
		return "participant asset"
	case Premium:
		return "premium"
	default:
		return "unknown record"
	}
}

// Validate ensures the swap terms are consistent.
func (s *Swap) Validate() error {
	if err := ValidateKey(s.Key); err != nil {
		return err
	}
	if err := s.Initiator.Validate(); err != nil {
		return errors.Wrap(err, "initiator")
	}
	if err := s.Participant.Validate(); err != nil {
		return errors.Wrap(err, "participant")
	}
	if s.Initiator.Equals(s.Participant) {
		return errors.Wrap(errors.ErrInput, "initiator and participant must differ")
	}
	if err := token.ValidateTicker(s.TokenA); err != nil {
		return errors.Wrap(err, "token a")
	}
	if err := token.ValidateTicker(s.TokenB); err != nil {
		return errors.Wrap(err, "token b")
	}
	if s.TokenA == s.TokenB {
		return errors.Wrap(errors.ErrInput, "tokens must differ")
	}
	if len(s.Secret) != 0 {
		if err := VerifySecret(s.Key, s.Secret); err != nil {
			return errors.Wrap(err, "revealed secret")
		}
	}
	return nil
}

// SwapState is the complete state of a single swap.
type SwapState struct {
	Swap             *Swap
	InitiatorAsset   *AssetRecord
	ParticipantAsset *AssetRecord
	Premium          *AssetRecord
}

// Record returns the record of given kind.
func (s *SwapState) Record(kind RecordKind) *AssetRecord {
	switch kind {
	case InitiatorAsset:
		return s.InitiatorAsset
	case ParticipantAsset:
		return s.ParticipantAsset
	case Premium:
		return s.Premium
	default:
		panic("unknown record kind")
	}
}

// Registry stores the swap terms and the three records of every swap, all
// under the swap key.
type Registry struct {
	swaps   orm.ModelBucket
	records [3]orm.ModelBucket
}

// NewRegistry returns a registry using the default buckets.
func NewRegistry() *Registry {
	return &Registry{
		swaps: orm.NewModelBucket("swap", &Swap{}),
		records: [3]orm.ModelBucket{
			InitiatorAsset:   orm.NewModelBucket("init_asset", &AssetRecord{}),
			ParticipantAsset: orm.NewModelBucket("part_asset", &AssetRecord{}),
			Premium:          orm.NewModelBucket("premium", &AssetRecord{}),
		},
	}
}

// Has returns true if a swap with given key was set up.
func (r *Registry) Has(db pswap.ReadOnlyKVStore, key []byte) (bool, error) {
	return r.swaps.Has(db, key)
}

// Load returns the state of the swap. It fails with ErrNotFound if the swap
// does not exist.
func (r *Registry) Load(db pswap.ReadOnlyKVStore, key []byte) (*SwapState, error) {
	var swap Swap
	if err := r.swaps.One(db, key, &swap); err != nil {
		return nil, errors.Wrap(err, "swap")
	}
	state := SwapState{Swap: &swap}
	for _, kind := range []RecordKind{InitiatorAsset, ParticipantAsset, Premium} {
		var rec AssetRecord
		if err := r.records[kind].One(db, key, &rec); err != nil {
			return nil, errors.Wrap(err, kind.String())
		}
		switch kind {
		case InitiatorAsset:
			state.InitiatorAsset = &rec
		case ParticipantAsset:
			state.ParticipantAsset = &rec
		case Premium:
			state.Premium = &rec
		}
	}
	return &state, nil
}

// Save writes all parts of the swap state.
func (r *Registry) Save(db pswap.KVStore, s *SwapState) error {
	key := s.Swap.Key
	if err := r.swaps.Put(db, key, s.Swap); err != nil {
		return errors.Wrap(err, "swap")
	}
	for _, kind := range []RecordKind{InitiatorAsset, ParticipantAsset, Premium} {
		if err := r.records[kind].Put(db, key, s.Record(kind)); err != nil {
			return errors.Wrap(err, kind.String())
		}
	}
	return nil
}
