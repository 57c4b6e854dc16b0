// Package config provides configuration management for dxfolio.
//
// Configuration is loaded and merged in the following order, later layers
// overriding earlier ones field by field:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. User configuration (~/.config/dxfolio/config.yaml)
//  3. Project configuration (./.dxfolio/config.yaml)
//
// A single explicit file can be loaded instead with LoadConfigFromPath, in
// which case it is merged over the defaults only.
//
// Example:
//
//	host: simon-ws
//	siteURL: https://github.com/Ssbullock
//	contactEmail: simonscholar155@gmail.com
//	resumePath: ~/Documents/resume.pdf
//	theme: light
//	narrowWidth: 90
//	simulationSteps:
//	  - delay: 600ms
//	    line: "Analyzing Career Trajectory... [OK]"
package config
