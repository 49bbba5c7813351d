package config

// GraphDecl is the declaration of one graph.
type GraphDecl struct {
	Route        string            `mapstructure:"route"`
	Start        string            `mapstructure:"start"`
	Destinations []DestinationDecl `mapstructure:"destinations"`
	Nested       []GraphDecl       `mapstructure:"nested"`
}

// DestinationDecl is the declaration of one destination.
type DestinationDecl struct {
	Route string `mapstructure:"route"`
	Title string `mapstructure:"title"`
	// Kind is "screen" (default), "dialog" or "bottom_sheet".
	Kind string `mapstructure:"kind"`
	// Args maps argument names to their type: string, int, bool or float.
	Args map[string]string `mapstructure:"args"`
}
