package app

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/iov-one/pswap"
	pswapapp "github.com/iov-one/pswap/app"
	"github.com/iov-one/pswap/x/aswap"
	"github.com/iov-one/pswap/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestFullSwapBatch(t *testing.T) {
	alice := SignerCondition("alice").Address()
	bob := SignerCondition("bob").Address()
	secret := []byte("open sesame")
	key := aswap.HashBytes(secret)

	var events bytes.Buffer
	a, err := Application("", NewJSONNotifier(&events), log.NewNopLogger())
	require.NoError(t, err)

	gen := pswapapp.Genesis{ChainID: "test-chain"}
	require.NoError(t, json.Unmarshal([]byte(`{
		"conf": {"aswap": {"max_secret_length": 32}},
		"token": [
			{"address": "`+alice.String()+`", "balances": [{"token": "TA", "amount": 100}, {"token": "TB", "amount": 10}]},
			{"address": "`+bob.String()+`", "balances": [{"token": "TB", "amount": 50}]}
		]
	}`), &gen.AppState))
	_, err = a.InitChain(gen, Initializers())
	require.NoError(t, err)
	assert.Equal(t, "test-chain", a.ChainID())

	now := pswap.AsUnixTime(time.Date(2020, time.March, 1, 12, 0, 0, 0, time.UTC))
	escrow := aswap.EscrowAddress
	batch := []Tx{
		{Signer: "alice", Time: now, Approve: &token.ApproveMsg{Token: "TA", Owner: alice, Spender: escrow, Amount: 100}},
		{Signer: "alice", Time: now, Approve: &token.ApproveMsg{Token: "TB", Owner: alice, Spender: escrow, Amount: 10}},
		{Signer: "bob", Time: now, Approve: &token.ApproveMsg{Token: "TB", Owner: bob, Spender: escrow, Amount: 50}},
		{Signer: "alice", Time: now, Setup: &aswap.SetupMsg{
			Key: key, Initiator: alice, Participant: bob, TokenA: "TA", TokenB: "TB",
			InitiatorAmount: 100, ParticipantAmount: 50, PremiumAmount: 10,
		}},
		{Signer: "alice", Time: now, FillPremium: &aswap.FillPremiumMsg{Key: key, Sender: alice, Duration: 3600}},
		// not signed by the sender
		{Signer: "alice", Time: now, Participate: &aswap.ParticipateMsg{Key: key, Sender: bob, Duration: 3600}},
		{Signer: "bob", Time: now, Participate: &aswap.ParticipateMsg{Key: key, Sender: bob, Duration: 3600}},
		{Signer: "alice", Time: now, Initiate: &aswap.InitiateMsg{Key: key, Sender: alice, Duration: 7200}},
		{Signer: "bob", Time: now + 100, RedeemAsset: &aswap.RedeemAssetMsg{Key: key, Sender: bob, Secret: secret}},
		{Signer: "alice", Time: now + 200, RedeemAsset: &aswap.RedeemAssetMsg{Key: key, Sender: alice, Secret: secret}},
		{Signer: "bob", Time: now + 300, RedeemPremium: &aswap.RedeemPremiumMsg{Key: key, Sender: bob}},
	}

	// Go through the file format to cover the JSON representation.
	raw, err := json.Marshal(batch)
	require.NoError(t, err)
	txs, err := ReadBatch(bytes.NewReader(raw))
	require.NoError(t, err)

	results, id, err := DeliverBatch(a, txs)
	require.NoError(t, err)
	assert.Equal(t, int64(2), id.Version)
	require.Len(t, results, len(batch))
	for i, res := range results {
		if i == 5 {
			assert.Contains(t, res.Err, "unauthorized")
			continue
		}
		assert.Empty(t, res.Err, "transaction %d", i)
	}
	assert.Equal(t, "aswap/setup", results[3].Path)

	var kinds []aswap.EventKind
	sc := bufio.NewScanner(&events)
	for sc.Scan() {
		var line struct {
			Kind aswap.EventKind `json:"kind"`
		}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		kinds = append(kinds, line.Kind)
	}
	assert.Equal(t, []aswap.EventKind{
		aswap.KindSetUp,
		aswap.KindPremiumFilled,
		aswap.KindParticipated,
		aswap.KindInitiated,
		aswap.KindInitiatorAssetRedeemed,
		aswap.KindParticipantAssetRedeemed,
		aswap.KindPremiumRedeemed,
	}, kinds)

	balances := map[string]uint64{
		"alice TA": 0, "alice TB": 50,
		"bob TA": 100, "bob TB": 10,
	}
	owners := map[string]pswap.Address{"alice": alice, "bob": bob}
	ledger := TokenControl()
	for name, want := range balances {
		parts := strings.Fields(name)
		got, err := ledger.BalanceOf(a.Store(), parts[1], owners[parts[0]])
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	s, err := aswap.NewRegistry().Load(a.Store(), key)
	require.NoError(t, err)
	assert.Equal(t, secret, s.Swap.Secret)
	assert.Equal(t, aswap.StateRedeemed, s.Premium.State)
}

func TestReadBatch(t *testing.T) {
	cases := map[string]struct {
		raw     string
		wantErr bool
	}{
		"empty batch":      {raw: `[]`},
		"not json":         {raw: `{`, wantErr: true},
		"missing signer":   {raw: `[{"time": 10, "refund_asset": {}}]`, wantErr: true},
		"missing time":     {raw: `[{"signer": "a", "refund_asset": {}}]`, wantErr: true},
		"missing message":  {raw: `[{"signer": "a", "time": 10}]`, wantErr: true},
		"two messages":     {raw: `[{"signer": "a", "time": 10, "refund_asset": {}, "refund_premium": {}}]`, wantErr: true},
		"rfc3339 time":     {raw: `[{"signer": "a", "time": "2020-03-01T12:00:00Z", "refund_asset": {}}]`},
		"message envelope": {raw: `[{"signer": "a", "time": 10, "redeem_premium": {}}]`},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := ReadBatch(strings.NewReader(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
