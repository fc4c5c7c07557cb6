package converter

import (
	"tapify_backend/internal/api/dto/wallet"
	"tapify_backend/internal/model"
)

func ToDepositResponse(res *model.DepositResult) wallet.DepositResponse {
	return wallet.DepositResponse{
		CheckoutURL: res.CheckoutURL,
		Reference:   res.Reference,
	}
}

func ToWithdrawResponse(res *model.WithdrawResult) wallet.WithdrawResponse {
	return wallet.WithdrawResponse{
		RequestID:    res.RequestID,
		BalanceMills: res.BalanceMills,
	}
}
