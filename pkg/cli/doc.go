// Package cli implements the command-line interface for the nutrictl tool.
//
// # Overview
//
// nutrictl computes the total and per-serving nutrient content of a composite
// product (a recipe, a packaged blend) from per-ingredient nutrition label
// data. Sessions are driven by a small command language; see pkg/session.
//
// # Commands
//
// run - Execute calculator scripts:
//
//	nutrictl run recipe.txt
//	nutrictl run --report report.txt recipe.txt
//	nutrictl run --state state.yaml --format yaml recipe.txt
//	cat recipe.txt | nutrictl run
//
// Executes the session commands from the given files (stdin when none are
// given) against a single aggregator. Report sections print to stdout unless
// --report or a set_output_file command redirects them. With --state, the
// final aggregator state is exported in JSON, YAML, or table format.
//
// example - Write a sample report:
//
//	nutrictl example
//	nutrictl example --output sample_report.txt
//
// manual - Print the full manual:
//
//	nutrictl manual
//
// serve - Start the HTTP API server:
//
//	nutrictl serve
//
// Exposes POST /v1/report (evaluate a script, return the computed
// projections), /health, /ready, and /metrics.
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Exit Codes
//
//	0  Success
//	1  General error (unknown command, invalid arguments, execution failure)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/nutrilabel/nutrictl/pkg/cli.version=1.0.0'"
package cli
