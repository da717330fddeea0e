// Package analysis cross-checks harmonic curves against independent models.
//
// Tools provided:
//
//   - [Spectrum]/[DominantFrequency]: frequency content of a sampled curve
//   - [SpringReference]: the same spring stepped by an analytic spring solver
//   - [CompareODE]: the same spring integrated numerically
//
// A correct curve has its dominant frequency near wobbles/2 + 0.75 cycles per
// unit progress and tracks both references closely.
package analysis
