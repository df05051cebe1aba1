package aswap

import (
	"testing"

	"github.com/iov-one/pswap/errors"
	"github.com/iov-one/pswap/weavetest/assert"
)

func TestTransitions(t *testing.T) {
	all := []State{StateEmpty, StateFilled, StateRedeemed, StateRefunded}
	allowed := map[[2]State]bool{
		{StateEmpty, StateFilled}:     true,
		{StateFilled, StateRedeemed}: true,
		{StateFilled, StateRefunded}: true,
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]State{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("%s -> %s: want %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestRecordLifecycle(t *testing.T) {
	var r AssetRecord
	r.Amount = 10

	assert.IsErr(t, errors.ErrState, r.Redeem())
	assert.IsErr(t, errors.ErrState, r.Refund())

	assert.Nil(t, r.Fill(1234))
	assert.Equal(t, StateFilled, r.State)
	assert.Equal(t, int64(1234), int64(r.Expiry))
	assert.IsErr(t, errors.ErrState, r.Fill(99))
	assert.Equal(t, int64(1234), int64(r.Expiry))

	redeemed := r
	assert.Nil(t, redeemed.Redeem())
	assert.IsErr(t, errors.ErrState, redeemed.Refund())
	assert.IsErr(t, errors.ErrState, redeemed.Fill(1))
	assert.Equal(t, true, redeemed.State.IsTerminal())

	refunded := r
	assert.Nil(t, refunded.Refund())
	assert.IsErr(t, errors.ErrState, refunded.Redeem())
	assert.Equal(t, true, refunded.State.IsTerminal())
	assert.Equal(t, false, r.State.IsTerminal())
}

func TestRecordValidate(t *testing.T) {
	cases := map[string]struct {
		rec     AssetRecord
		wantErr *errors.Error
	}{
		"empty":                 {rec: AssetRecord{Amount: 1}},
		"filled":                {rec: AssetRecord{Amount: 1, Expiry: 5, State: StateFilled}},
		"zero amount":           {rec: AssetRecord{}, wantErr: errors.ErrAmount},
		"empty with expiry":     {rec: AssetRecord{Amount: 1, Expiry: 5}, wantErr: errors.ErrState},
		"filled without expiry": {rec: AssetRecord{Amount: 1, State: StateFilled}, wantErr: errors.ErrState},
		"unknown state":         {rec: AssetRecord{Amount: 1, Expiry: 5, State: 7}, wantErr: errors.ErrState},
		"negative expiry":       {rec: AssetRecord{Amount: 1, Expiry: -5, State: StateRefunded}, wantErr: errors.ErrState},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.rec.Validate())
		})
	}
}
