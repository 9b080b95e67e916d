package dfs

import (
	"context"
	"sort"

	"github.com/katalvlaran/ucsroute/core"
)

// Components groups the stations of g into networks: sets of labels joined
// by edges in either direction. Each network is sorted, and networks are
// ordered by their first label.
//
// Two stations in different networks can never be routed between, so this
// is the cheap way to explain a "no route" answer.
func Components(ctx context.Context, g Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	u := newUndirected(g)
	res, err := DFS(u, "", WithContext(ctx), WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Every tree of the forest is one network; group by tree root.
	index := make(map[string]int)
	var out [][]string
	for _, v := range u.vertices {
		root := v
		for {
			p, ok := res.Parent[root]
			if !ok {
				break
			}
			root = p
		}
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}
	for _, c := range out {
		sort.Strings(c)
	}

	return out, nil
}

// undirected is g with every edge also readable backwards.
type undirected struct {
	vertices []string
	adj      map[string][]core.Edge
}

func newUndirected(g Graph) *undirected {
	u := &undirected{
		vertices: g.Vertices(),
		adj:      make(map[string][]core.Edge),
	}
	for _, v := range u.vertices {
		for _, e := range g.Neighbors(v) {
			u.adj[v] = append(u.adj[v], e)
			u.adj[e.To] = append(u.adj[e.To], core.Edge{To: v, Cost: e.Cost})
		}
	}

	return u
}

func (u *undirected) HasVertex(label string) bool {
	_, ok := u.adj[label]
	return ok
}

func (u *undirected) Vertices() []string { return u.vertices }

func (u *undirected) Neighbors(label string) []core.Edge { return u.adj[label] }
