package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"tutorhub_backend/internals/features/payments/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap untuk satu pembayaran. OrderID =
// payment_id, supaya notifikasi gateway bisa dipetakan balik.
func GenerateSnapToken(p *model.PaymentModel, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentID.String(),
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
