package payment

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"parcel-service/internal/entities"
)

var ErrEmptyClientSecret = errors.New("payment gateway returned empty client secret")

func fromDomainIntent(intent entities.PaymentIntent) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(map[string]any{
		"amount":             intent.AmountCents,
		"currency":           intent.Currency,
		"paymentMethodTypes": []any{intent.Method},
	})
	if err != nil {
		return nil, fmt.Errorf("build payment intent request: %w", err)
	}
	return req, nil
}

func toClientSecret(resp *structpb.Struct) (string, error) {
	secret := resp.GetFields()["clientSecret"].GetStringValue()
	if secret == "" {
		return "", ErrEmptyClientSecret
	}
	return secret, nil
}
