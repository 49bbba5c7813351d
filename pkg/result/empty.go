package result

import "github.com/aretw0/waypoint/pkg/domain"

// EmptyRecipient is a ResultRecipient that never delivers anything.
// Use it in previews and tests where no host is available.
type EmptyRecipient[D domain.DestinationSpec, R any] struct{}

// OnResult does nothing.
func (EmptyRecipient[D, R]) OnResult(func(R)) {}

// EmptyBackNavigator is a ResultBackNavigator that records the last result and never navigates.
type EmptyBackNavigator[R any] struct {
	Last R
	Sent bool
}

// NavigateBack stores result in Last.
func (n *EmptyBackNavigator[R]) NavigateBack(result R) error {
	n.Last = result
	n.Sent = true
	return nil
}
