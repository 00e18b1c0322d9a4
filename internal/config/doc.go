// Package config loads jot's TOML configuration.
//
// The file lives at <user config dir>/jot/conf.toml unless --config or
// JOT_CONFIG names another one:
//
//	editor = "nvim"
//	jump = true
//	jump_style = "line"   # "end" (default) or "line"
//	root = "~/notes"
//	subdir = "atoms"
//	css = "~/notes/print.css"
//
//	[pdf]
//	page_size = "a4"
//	orientation = "portrait"
//	margin = 0.75
//
// Without a css key, jot.css is looked up in the notes root, then next to
// the config file.
package config
