// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses run files such as:
//
//	puzzle "day2" {
//	  input    = "${config_dir}/day2.txt"
//	  parts    = [1, 2]
//	  settings = { red = 12, green = 13, blue = 14 }
//	}
//
// Expressions may refer to `config_dir`, the absolute directory of the file
// being loaded, and `default_input`. Relative input paths are resolved
// against config_dir.
package hcl
