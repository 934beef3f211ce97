package create_payment_intent

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"go.uber.org/zap"
)

const (
	ServiceName = "paymentgateway.v1.PaymentGateway"
	fullMethod  = "/" + ServiceName + "/CreatePaymentIntent"
)

// ServiceDesc описан вручную, запрос и ответ передаются как google.protobuf.Struct.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*server)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePaymentIntent",
			Handler:    createPaymentIntentHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paymentgateway/v1/payment_gateway.proto",
}

type Handler struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Handler {
	return &Handler{log: log}
}

// CreatePaymentIntent заглушка: проверяет сумму и выдает случайный client secret.
func (h *Handler) CreatePaymentIntent(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	fields := in.GetFields()

	amount := fields["amount"].GetNumberValue()
	if amount <= 0 {
		return nil, status.Error(codes.InvalidArgument, "amount must be positive")
	}
	currency := strings.ToLower(fields["currency"].GetStringValue())
	if currency == "" {
		return nil, status.Error(codes.InvalidArgument, "currency is required")
	}

	id := "pi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	h.log.Info("payment intent created",
		zap.String("id", id),
		zap.Float64("amount", amount),
		zap.String("currency", currency),
	)

	return structpb.NewStruct(map[string]any{
		"id":           id,
		"clientSecret": id + "_secret_" + uuid.NewString()[:8],
		"amount":       amount,
		"currency":     currency,
	})
}

func createPaymentIntentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(server).CreatePaymentIntent(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(server).CreatePaymentIntent(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
