/*
Package builder turns the stream of declaration calls emitted by one
declaration script into a compiled, ordered example plan.

The builder is a stack machine. StartGroup pushes a frame and EndGroup pops
it; hooks and examples are attached to the frame on top of the stack. While
the calls arrive, the builder also records the declaration tree
(GroupDeclaration / ExampleDeclaration), which is what duplicate detection
and the textual rendering work on.

Compilation is a two-phase process:

 1. Collection: every example is recorded together with the chain of groups
    that enclose it and the focus/ignore markers of that chain. Ranks are
    issued in declaration order (or shuffled per seed, see package rank).

 2. Resolution (Build): once the whole tree is known, the focus/ignore rule
    is applied globally, the hooks of every example are gathered from its
    enclosing groups (before hooks outer to inner, after hooks inner to
    outer), ignored examples lose their body and hooks, and the examples are
    sorted by rank into an example.Plan.

Because hooks are gathered in phase 2, a hook applies to every example of its
group no matter where in the group body it was declared.
*/
package builder
