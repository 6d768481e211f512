package grouper

// Cluster is one resolved institution: the set of raw name strings judged to
// denote the same real-world entity. Created the first time a name fails to
// match anything; never deleted.
type Cluster struct {
	ID            int      // 1-based, assigned in first-appearance order.
	CanonicalName string   // The name that created the cluster. Never changes.
	Members       []string // Every raw name absorbed, in arrival order.
}

// Grouper owns the ordered cluster list and resolves names against it.
// It is single-writer state: Resolve mutates the cluster list and must not
// be called concurrently.
type Grouper struct {
	threshold int
	scorer    Scorer
	clusters  []*Cluster
}

// New returns a Grouper with the given merge threshold (0-100) and scorer.
// A nil scorer defaults to token-sort ratio.
func New(threshold int, scorer Scorer) *Grouper {
	if scorer == nil {
		scorer = TokenSortScorer{}
	}
	return &Grouper{threshold: threshold, scorer: scorer}
}

// Resolve assigns name to a cluster and returns the cluster's identifier.
// name must be non-empty; blank names are a data-quality problem the caller
// filters out before grouping.
//
// The scan visits clusters in creation order and keeps the first maximal
// score, so a tie at the threshold resolves to the earliest-created cluster.
func (g *Grouper) Resolve(name string) int {
	best := -1
	bestScore := -1
	for i, c := range g.clusters {
		score := g.scorer.Score(name, c.CanonicalName)
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best >= 0 && bestScore >= g.threshold {
		c := g.clusters[best]
		c.Members = append(c.Members, name)
		return c.ID
	}

	c := &Cluster{
		ID:            len(g.clusters) + 1,
		CanonicalName: name,
		Members:       []string{name},
	}
	g.clusters = append(g.clusters, c)
	return c.ID
}

// Clusters returns the cluster list in creation order. The caller must treat
// the result as read-only; it is the Grouper's live state.
func (g *Grouper) Clusters() []*Cluster {
	return g.clusters
}

// Len returns the number of clusters created so far.
func (g *Grouper) Len() int {
	return len(g.clusters)
}
