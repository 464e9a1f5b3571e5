/*
Package quest implements the object and attribute runtime of the Quest
programming language.

Quest is a dynamic, prototype-based language in which classes, scopes, and
instances are all the same thing: an object holding an ordered attribute map
and an ordered list of parents to which attribute lookups delegate. There are
no special rules for methods, operators, or types; a built-in operator like
`<` or `<=>` is dispatched by resolving an attribute with that exact name on
the receiver, and a "class" is just an object that other objects happen to
list as a parent.

This package provides that runtime to an embedding evaluator. Use NewRuntime
to create an interpreter context, then the Runtime's constructors (NewObject,
NewNumber, NewText, NewFn, and so on) to build objects, and GetAttr, SetAttr,
Extend, and Becomes to manipulate them. The operator dispatch surface (Call,
Compare, Less, ColonCall, AsText, ...) maps each piece of built-in syntax onto
its canonical attribute; an evaluator needs nothing else to implement the
object-oriented parts of the language.

Attribute resolution searches the receiver's own attributes first, then its
parents depth first in declaration order, visiting each object at most once
per lookup, so cyclic parent graphs are safe and the first match in
declaration order always wins. Two reserved attributes are synthesized by the
runtime itself: __id__, the object's immutable identity, and __parents__, a
list of its current parents. Assigning __parents__ rebases the object, which
is the in-language spelling of Becomes.

The runtime is single threaded: every lookup, mutation, and dispatch runs to
completion before the next begins, and objects are shared freely by reference
with no locking.
*/
package quest
