package create_payment_intent

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"
)

type server interface {
	CreatePaymentIntent(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}
