package aswap

import (
	"testing"

	"github.com/iov-one/pswap"
	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/weavetest"
)

func TestSetupMsgValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	key := HashBytes([]byte("secret"))

	valid := func() *SetupMsg {
		return &SetupMsg{
			Key:               key,
			Initiator:         alice,
			Participant:       bob,
			TokenA:            "TA",
			TokenB:            "TB",
			InitiatorAmount:   100,
			ParticipantAmount: 50,
			PremiumAmount:     1,
		}
	}

	cases := map[string]struct {
		modify  func(*SetupMsg)
		wantErr *errors.Error
	}{
		"valid":               {modify: func(*SetupMsg) {}},
		"short key":           {modify: func(m *SetupMsg) { m.Key = key[:10] }, wantErr: errors.ErrInput},
		"missing initiator":   {modify: func(m *SetupMsg) { m.Initiator = nil }, wantErr: errors.ErrInput},
		"bad participant":     {modify: func(m *SetupMsg) { m.Participant = pswap.Address("short") }, wantErr: errors.ErrInput},
		"same parties":        {modify: func(m *SetupMsg) { m.Participant = alice }, wantErr: errors.ErrInput},
		"lowercase ticker":    {modify: func(m *SetupMsg) { m.TokenA = "ta" }, wantErr: errors.ErrInput},
		"same tokens":         {modify: func(m *SetupMsg) { m.TokenB = "TA" }, wantErr: errors.ErrInput},
		"zero premium":        {modify: func(m *SetupMsg) { m.PremiumAmount = 0 }, wantErr: errors.ErrAmount},
		"zero initiator side": {modify: func(m *SetupMsg) { m.InitiatorAmount = 0 }, wantErr: errors.ErrAmount},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := valid()
			tc.modify(msg)
			if err := msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestSwapMsgValidate(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	key := HashBytes([]byte("secret"))

	cases := map[string]struct {
		msg     SwapMsg
		wantErr *errors.Error
	}{
		"initiate":              {msg: &InitiateMsg{Key: key, Sender: alice, Duration: 10}},
		"initiate without key":  {msg: &InitiateMsg{Sender: alice, Duration: 10}, wantErr: errors.ErrInput},
		"fill without sender":   {msg: &FillPremiumMsg{Key: key, Duration: 10}, wantErr: errors.ErrInput},
		"participate":           {msg: &ParticipateMsg{Key: key, Sender: alice, Duration: 10}},
		"redeem":                {msg: &RedeemAssetMsg{Key: key, Sender: alice, Secret: []byte("secret")}},
		"redeem without secret": {msg: &RedeemAssetMsg{Key: key, Sender: alice}, wantErr: errors.ErrEmpty},
		"refund":                {msg: &RefundAssetMsg{Key: key, Sender: alice}},
		"redeem premium":        {msg: &RedeemPremiumMsg{Key: key, Sender: alice}},
		"refund premium":        {msg: &RefundPremiumMsg{Key: key[:31], Sender: alice}, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestSetupSenderIsInitiator(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	msg := &SetupMsg{Initiator: alice}
	if !msg.SenderAddress().Equals(alice) {
		t.Fatalf("want %s, got %s", alice, msg.SenderAddress())
	}
	if got := msg.Path(); got != "aswap/setup" {
		t.Fatalf("unexpected path %q", got)
	}
}
