package notification

import (
	"context"
	"slices"

	"kitchenrent/models"
)

// Delivery channel names carried by queued notices.
const (
	ChannelTelegram = "telegram"
	ChannelPush     = "push"
)

// Dispatcher delivers payment instructions for a booking intent.
type Dispatcher interface {
	Dispatch(ctx context.Context, notice models.PaymentNotice) error
}

// UserLookup resolves the requester's contact details.
type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// ChannelSet maps a channel name to the dispatcher that delivers on it.
type ChannelSet map[string]Dispatcher

// Names returns the configured channel names in a stable order.
func (cs ChannelSet) Names() []string {
	names := make([]string, 0, len(cs))
	for name, d := range cs {
		if d != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
