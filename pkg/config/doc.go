// Package config loads navigation graphs declared in YAML or TOML files.
//
// A declaration names the graph route, its start route, its destinations and
// any nested graphs:
//
//	route: root
//	start: home
//	destinations:
//	  - route: home
//	    title: Home
//	  - route: profile
//	    args:
//	      id: int
//	nested:
//	  - route: settings_graph
//	    start: settings
//	    destinations:
//	      - route: settings
//	        kind: dialog
//
// Destinations without args can be navigated to directly and are listed by menus.
package config
