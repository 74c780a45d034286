// Package gsea estimates very small GSEA enrichment p-values by adaptive
// multilevel sampling.
//
// Given a ranked list of gene statistics and an observed enrichment score
// for a gene set of size k, CalcPvalues evolves a population of uniformly
// random gene sets through a sequence of increasing ES cutoffs, conditioning
// each level on the statistic exceeding the previous level's median. The
// resulting cutoff ladder lets FindEsPval reconstruct p-values far below
// what naive sampling could resolve -- down to 1e-50 and beyond -- from the
// number of levels traversed plus a remainder within the final level.
//
// The four collaborating pieces live in their own packages: esrank computes
// the enrichment-score primitives, mcmc implements the perturbation kernel
// that re-diversifies a promoted gene set, multilevel drives the
// duplicate-and-advance loop and owns the resulting State, and pval turns a
// State plus a target ES into a probability. Package gsea itself is just
// the thin assembly point a caller is meant to use, validating inputs and
// wiring a reproducible RNG before handing off to multilevel and pval.
//
// Reading pathway/gene-statistic inputs, multiple-testing correction across
// many pathways, and parallel dispatch over pathways are all the
// responsibility of callers; this package exposes no shared mutable state
// and requires no synchronization to run many independent pathways
// concurrently, each with its own seed.
package gsea

// TODO: keep this in sync with the README once one exists.
