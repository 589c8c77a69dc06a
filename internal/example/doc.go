/*
Package example holds the compiled, executable form of a declaration tree.

An Example is the terminal unit produced by the builder: its container path,
the hooks that apply to it, its body and its expectation metadata. A Plan
owns the examples of one compilation sorted by rank and gives each of them an
arena index.

Run executes one example:

 1. var initializers, outer scope first
 2. before-all hooks that the previous example in the plan did not run
 3. before-each hooks, outer to inner
 4. the body
 5. after-each hooks, inner to outer
 6. after-all hooks that the next example in the plan will not run

Hook sharing is decided by hook identity, so a before-all hook declared on a
group fires exactly once for every maximal run of adjacent examples that
inherited it.
*/
package example
