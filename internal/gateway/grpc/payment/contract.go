//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"google.golang.org/grpc"
)

// client подмножество grpc.ClientConnInterface, которым пользуется шлюз.
type client interface {
	Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error
}
