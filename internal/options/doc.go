// Package options implements the command-line option registry and resolver.
//
// A fixed set of categories (jobs, columns, exporters, diagnosers,
// analysers, validators, loggers) maps user-facing names to bundles of item
// singletons. The resolver walks raw "key=value[,value...]" arguments,
// matches keys case-insensitively in singular or plural form, and
// accumulates the looked-up items into a runcfg.Config. Categories differ
// in strategy rather than in resolver control flow: most resolve against a
// static table, diagnosers resolve against runtime discovery, and loggers
// reject selection outright.
package options
