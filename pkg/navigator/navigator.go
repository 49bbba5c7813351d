// Package navigator provides the DestinationsNavigator handed to screens.
package navigator

import (
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/ports"
)

// Navigator implements ports.DestinationsNavigator on top of a NavController.
type Navigator struct {
	controller ports.NavController
}

// New wraps controller.
func New(controller ports.NavController) *Navigator {
	return &Navigator{controller: controller}
}

// LaunchSingleTop reuses the current entry when it already shows the target.
func LaunchSingleTop() ports.NavOption {
	return func(o *ports.NavOptions) {
		o.SingleTop = true
	}
}

// PopUpTo pops entries above route before navigating; inclusive also pops route itself.
func PopUpTo(route string, inclusive bool) ports.NavOption {
	return func(o *ports.NavOptions) {
		o.PopUpTo = route
		o.PopUpToInclusive = inclusive
	}
}

// Navigate pushes dir.
func (n *Navigator) Navigate(dir domain.Direction, opts ...ports.NavOption) error {
	var o ports.NavOptions
	for _, opt := range opts {
		opt(&o)
	}
	return n.controller.Navigate(dir, o)
}

// NavigateTo pushes a destination that needs no arguments.
func (n *Navigator) NavigateTo(dest domain.DirectionDestination, opts ...ports.NavOption) error {
	return n.Navigate(dest.Direction(), opts...)
}

// NavigateUp pops the top entry unless it is the last one.
func (n *Navigator) NavigateUp() bool {
	return n.controller.NavigateUp()
}

// PopBackStack pops the top entry.
func (n *Navigator) PopBackStack() bool {
	return n.controller.PopBackStack()
}

// PopBackStackTo pops entries until route is on top (or removed, when inclusive).
func (n *Navigator) PopBackStackTo(route string, inclusive bool) bool {
	return n.controller.PopBackStackTo(route, inclusive)
}
