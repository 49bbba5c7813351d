// Package menu lists the destinations of a graph the way a navigation drawer or
// bottom bar shows them, and decides when a click on one of them navigates.
//
// Only destinations that can be reached without arguments are listed. The
// graph's start destination always comes first; the rest keep the order in
// which they were declared.
package menu
