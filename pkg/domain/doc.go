/*
Package domain contains the core types of the menuloop engine.

It defines what a loop dispatches on, and is kept free of I/O so the same
option lists can be driven by a terminal, a script or a test.

# Key Entities

  - Value: a typed token (string, int, float or bool) produced from one word of input.
  - Trigger: Exact(value), OneOf(values...) or OfType(kind); decides which tokens select an option.
  - Option: a display name, a trigger, a handler and an optional input modifier.
  - Handler: a callable taking the token list (Func) or nothing (Thunk).
  - LifecycleHooks: callbacks fired by loops for logging and metrics.
*/
package domain
