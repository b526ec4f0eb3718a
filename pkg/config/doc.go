// Package config loads engine test sheets from YAML.
//
// A sheet carries the engine and fuel data of one load test, optionally the
// six fuel timings, and where to write reports:
//
//	engine:
//	  bore: 4
//	  bore_unit: inches
//	  stroke: 0.12
//	  cylinders: 1
//	  rated_power: 5
//	  power_unit: kW
//	  rated_rpm: 1500
//	  method: rope_brake
//	  drum_radius: 0.4
//	fuel:
//	  density: 0.75
//	  calorific_value: 44000
//	timings: [100, 90, 80, 70, 60, 50]
//	output:
//	  csv: out/table.csv
//	  charts_dir: out/
//
// Load checks structure only (known unit and method names, one timing source).
// Numeric ranges are checked by the performance package when the sheet is
// computed. Watch reloads a sheet whenever the file is written.
package config
