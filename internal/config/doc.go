// Package config provides configuration management for fieldscale.
//
// Settings are loaded from YAML files and merged in order, later sources
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. User configuration (~/.config/fieldscale/config.yaml)
//  3. Project configuration (./.fieldscale/config.yaml)
//
// A settings file looks like:
//
//	display:
//	  theme: dark          # or "light"
//	  neutralColor: text   # palette name or hex, used for unstyled values
//	  defaultScheme: GrYlRd  # used when a continuous mode names an unknown scheme
//	  nameWidth: 24
//	logging:
//	  level: info
//
// The package also reads panel files, which describe the fields shown on one
// panel together with their values:
//
//	title: Node health
//	fields:
//	  - name: cpu
//	    type: number
//	    config:
//	      unit: percent
//	      min: 0
//	      max: 100
//	      thresholds:
//	        mode: absolute
//	        steps:
//	          - value: null
//	            color: green
//	          - value: 80
//	            color: red
//	    values: [12, 55, 91]
//
// Panel fields are normalized on load, so their thresholds come back sorted
// with a -Infinity base step.
package config
