package scope

import (
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/result"
)

// ResultBackNavigator returns a navigator that sends results of type R back from s's destination.
func ResultBackNavigator[R any](s Scope) (*result.BackNavigator[R], error) {
	opts := append(s.resultOptions(), result.WithEntry(s.BackStackEntry()))
	return result.NewBackNavigator[R](s.Controller(), s.Destination(), opts...)
}

// ResultRecipient returns a recipient on s's entry for results of type R sent by origin.
func ResultRecipient[D domain.DestinationSpec, R any](s Scope, origin D) (*result.Recipient[D, R], error) {
	return result.NewRecipient[D, R](s.BackStackEntry(), origin, s.resultOptions()...)
}
