package types

// AppName is the application name used for CLI and logging
const AppName = "relfetch"

// Version is the application version, overridden at build time via ldflags
var Version = "v0.1.0"
