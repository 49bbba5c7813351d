/*
Package scope derives the capability bundle handed to a destination's content.

A DestinationScope is a fresh, stateless view over a back stack entry: the
entry itself, the host controller, a navigator, the destination and its
decoded arguments. Result handles are derived from it per call:

	nav, err := scope.ResultBackNavigator[string](s)
	rec, err := scope.ResultRecipient[domain.DestinationSpec, string](s, profile)
*/
package scope
