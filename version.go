package waypoint

// Version is the library version, overridden at build time with -ldflags "-X".
var Version = "0.1.0"
