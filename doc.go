/*
Package nbredact provides CLI tooling to publish solution notebooks to students.

The primary goal of nbredact is to keep a single set of solution notebooks and derive
the student version from it: outputs are stripped, cells tagged "hide" are emptied
and cells tagged "todo" get a placeholder instead of the solution.
*/
package nbredact
