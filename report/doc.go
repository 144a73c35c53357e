/*
Package report defines the injected reporter handle used in place of
global verbosity plumbing. cnf.Parse and cnf.ParseFile accept a
Reporter, and cnf.Order takes one through OrderOptions.Reporter;
passing nil is equivalent to passing Discard.

Levels mirror the five severities the front-end's verbosity layer
understands: error, warn, info, debug, trace. NewCharmLogger wraps
github.com/charmbracelet/log for production use; Discard is a
zero-cost no-op suitable for tests and library callers that do not
want output.
*/
package report
