package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"

	finvault "github.com/iov-one/finvault"
	"github.com/iov-one/finvault/errors"
	"github.com/iov-one/finvault/vaulttest"
)

func TestMessagePaths(t *testing.T) {
	cases := map[string]finvault.Msg{
		"vault/deposit":             &DepositMsg{},
		"vault/request_withdrawal":  &RequestWithdrawalMsg{},
		"vault/sign_withdrawal":     &SignWithdrawalMsg{},
		"vault/execute_withdrawal":  &ExecuteWithdrawalMsg{},
		"vault/cancel_withdrawal":   &CancelWithdrawalMsg{},
		"vault/add_signer":          &AddSignerMsg{},
		"vault/remove_signer":       &RemoveSignerMsg{},
		"vault/add_address":         &AddAddressMsg{},
		"vault/remove_address":      &RemoveAddressMsg{},
		"vault/add_token":           &AddTokenMsg{},
		"vault/remove_token":        &RemoveTokenMsg{},
		"vault/freeze":              &FreezeMsg{},
		"vault/unfreeze":            &UnfreezeMsg{},
	}
	for path, msg := range cases {
		assert.Equal(t, path, msg.Path())
	}
}

func TestMessageValidation(t *testing.T) {
	addr := vaulttest.NewCondition().Address()
	token := TokenAsset(vaulttest.NewCondition().Address())

	cases := map[string]struct {
		msg     interface{ Validate() error }
		wantErr *errors.Error
	}{
		"valid deposit": {
			msg: &DepositMsg{Asset: NativeAsset(), Amount: 1},
		},
		"deposit without amount": {
			msg:     &DepositMsg{Asset: NativeAsset()},
			wantErr: ErrInvalidAmount,
		},
		"deposit without asset": {
			msg:     &DepositMsg{Amount: 1},
			wantErr: errors.ErrEmpty,
		},
		"valid request": {
			msg: &RequestWithdrawalMsg{Amount: 1, Destination: addr, Asset: token},
		},
		"request with negative amount": {
			msg:     &RequestWithdrawalMsg{Amount: -1, Destination: addr, Asset: token},
			wantErr: ErrInvalidAmount,
		},
		"request without destination": {
			msg:     &RequestWithdrawalMsg{Amount: 1, Asset: token},
			wantErr: errors.ErrEmpty,
		},
		"request with truncated destination": {
			msg:     &RequestWithdrawalMsg{Amount: 1, Destination: addr[:8], Asset: token},
			wantErr: errors.ErrInput,
		},
		"valid sign": {
			msg: &SignWithdrawalMsg{WithdrawalId: make([]byte, 8)},
		},
		"sign with short id": {
			msg:     &SignWithdrawalMsg{WithdrawalId: []byte{1, 2}},
			wantErr: errors.ErrInput,
		},
		"execute without id": {
			msg:     &ExecuteWithdrawalMsg{},
			wantErr: errors.ErrInput,
		},
		"cancel with long id": {
			msg:     &CancelWithdrawalMsg{WithdrawalId: make([]byte, 9)},
			wantErr: errors.ErrInput,
		},
		"valid add signer": {
			msg: &AddSignerMsg{Signer: addr},
		},
		"add signer without address": {
			msg:     &AddSignerMsg{},
			wantErr: errors.ErrEmpty,
		},
		"remove address with bad length": {
			msg:     &RemoveAddressMsg{Address: addr[:3]},
			wantErr: errors.ErrInput,
		},
		"valid add token": {
			msg: &AddTokenMsg{Token: token},
		},
		"add native as token": {
			msg:     &AddTokenMsg{Token: NativeAsset()},
			wantErr: errors.ErrInput,
		},
		"remove token without token": {
			msg:     &RemoveTokenMsg{},
			wantErr: errors.ErrEmpty,
		},
		"freeze": {
			msg: &FreezeMsg{},
		},
		"unfreeze": {
			msg: &UnfreezeMsg{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
			}
		})
	}
}
