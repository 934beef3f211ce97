package tracking_id

import (
	"strings"

	"github.com/google/uuid"
)

const (
	prefix = "TRK-"
	length = 8
)

type TrackingIDFactory struct{}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{}
}

// NewTrackingID формат TRK-XXXXXXXX, X из верхнего регистра hex.
func (f *TrackingIDFactory) NewTrackingID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(id[:length])
}
