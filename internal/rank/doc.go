/*
Package rank provides the ordering key assigned to every group and example
while a declaration tree is traversed.

A Rank is a path of per-level keys, e.g. `0.3.1`: the example is the second
child of the fourth child of the root. Ranks compare lexicographically, so
all descendants of a group sort next to each other and siblings keep the
order their keys were issued in.

The Generator issues keys. With DefinedOrder the key of a child is its
declaration sequence number; with RandomOrder(seed) siblings are shuffled
deterministically for that seed, while groups still stay contiguous.
*/
package rank
