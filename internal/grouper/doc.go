// Package grouper implements fuzzy grouping of institution names into
// clusters, each with a stable 1-based identifier and a canonical
// (first-seen) display name.
//
// Matching policy, fixed because it is observable in output identifiers:
//   - Names are resolved strictly in input order.
//   - Each name is scored against the canonical name of every existing
//     cluster; the scan keeps the FIRST maximal score, so ties go to the
//     earliest-created cluster.
//   - A score at or above the threshold merges the name into that cluster;
//     anything strictly below creates a new cluster.
//   - A cluster's canonical name never changes after creation.
//
// Each Resolve call scans all existing clusters, O(n²) over the whole input
// in the worst case. Institution counts are small relative to team counts in
// the target datasets, so this is a documented ceiling rather than a problem.
package grouper
