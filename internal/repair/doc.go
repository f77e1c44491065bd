// Package repair implements the corrective transformations applied in
// repair mode: predecessor relocation off summary tasks, cycle breaking,
// temporal format normalization, explicit-date removal, default field and
// metadata insertion, milestone correction, zero-work defaults, and finish
// date derivation.
//
// Passes run in a fixed order because later passes rely on invariants
// established by earlier ones; cycle removal precedes finish derivation so
// date arithmetic never follows a circular predecessor chain. Every pass is
// idempotent: running the full sequence twice performs no additional work
// on the second run.
package repair
