// Package chain runs the clear-cascade loop on a board until nothing more
// clears, scoring every step of the chain reaction.
//
// One step:
//
//  1. Fall()                   – settle the board
//  2. grouping.Partition       – connected groups
//  3. grouping.Pop             – groups with ≥ popThreshold tiles, then
//     grouping.DropNuisance    – minus any group holding nuisance
//  4. grouping.Nuisance        – plus the nuisance tiles they touch
//  5. score.StandardScorer     – step score, chain power read at the chain depth
//  6. cleared == 0 → stop (nothing banished, chain not incremented)
//  7. otherwise Banish every cleared tile, accumulate, chain++ and repeat
//
// Simulate returns the totals as a Result. Step exposes one iteration for
// callers that drive the loop themselves (animation, step-by-step replays).
//
// Options:
//
//	WithLogger(zerolog.Logger)  – per-step debug logging (default: disabled)
//	WithOnStep(fn)              – hook called after every scored step
//	WithMaxSteps(n)             – stop after n clearing steps (0 = no limit)
//
// Termination relies on Banish strictly shrinking the set of non-air tiles;
// WithMaxSteps is a safety net for boards that break that rule.
package chain
