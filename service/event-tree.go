package service

import (
	"fmt"
	"sort"

	"archery/repository"
)

type NodeKind string

const (
	NodeChampionship NodeKind = "championship"
	NodeCompetition  NodeKind = "competition"
	NodeRound        NodeKind = "round"
	NodeRange        NodeKind = "range"
	NodeEnd          NodeKind = "end"
)

type TreeNode struct {
	Id    string   `json:"id"`
	Kind  NodeKind `json:"kind"`
	Label string   `json:"label"`
	RefId int      `json:"ref_id"`
}

// EventTree is an adjacency list rooted at a championship.
type EventTree struct {
	Root     string               `json:"root"`
	Nodes    map[string]*TreeNode `json:"nodes"`
	Children map[string][]string  `json:"children"`
}

func (t *EventTree) add(parent string, node *TreeNode) {
	if _, ok := t.Nodes[node.Id]; ok {
		return
	}
	t.Nodes[node.Id] = node
	t.Children[node.Id] = []string{}
	t.Children[parent] = append(t.Children[parent], node.Id)
}

// BuildTree assembles championship -> competitions -> rounds -> ranges -> ends
// from rows already loaded one level at a time.
func BuildTree(
	championship *repository.YearlyClubChampionship,
	competitions []*repository.ClubCompetition,
	rounds []*repository.Round,
	ranges []*repository.Range,
	contexts []*repository.EventContext,
) *EventTree {
	root := fmt.Sprintf("CH-%d", championship.Id)
	tree := &EventTree{
		Root:     root,
		Nodes:    map[string]*TreeNode{root: {Id: root, Kind: NodeChampionship, Label: championship.Name, RefId: championship.Id}},
		Children: map[string][]string{root: {}},
	}

	competitionById := make(map[int]*repository.ClubCompetition, len(competitions))
	for _, c := range competitions {
		competitionById[c.Id] = c
	}
	roundById := make(map[int]*repository.Round, len(rounds))
	for _, r := range rounds {
		roundById[r.Id] = r
	}
	rangeById := make(map[int]*repository.Range, len(ranges))
	for _, r := range ranges {
		rangeById[r.Id] = r
	}

	sorted := make([]*repository.EventContext, 0, len(contexts))
	for _, ctx := range contexts {
		if ctx.CompetitionId != nil {
			sorted = append(sorted, ctx)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if *a.CompetitionId != *b.CompetitionId {
			return *a.CompetitionId < *b.CompetitionId
		}
		if a.RoundId != b.RoundId {
			return a.RoundId < b.RoundId
		}
		ra, rb := rangeOrder(rangeById, a.RangeId), rangeOrder(rangeById, b.RangeId)
		if ra != rb {
			return ra < rb
		}
		return a.EndOrder < b.EndOrder
	})

	for _, ctx := range sorted {
		compId := *ctx.CompetitionId
		compNode := fmt.Sprintf("CO-%d", compId)
		roundNode := fmt.Sprintf("RO-%d-%d", compId, ctx.RoundId)
		rangeNode := fmt.Sprintf("RA-%d-%d-%d", compId, ctx.RoundId, ctx.RangeId)
		endNode := fmt.Sprintf("EN-%d", ctx.Id)

		compLabel := compNode
		if c, ok := competitionById[compId]; ok {
			compLabel = c.Name
		}
		roundLabel := roundNode
		if r, ok := roundById[ctx.RoundId]; ok {
			roundLabel = r.Name
		}
		rangeLabel := rangeNode
		if r, ok := rangeById[ctx.RangeId]; ok {
			rangeLabel = fmt.Sprintf("%dm", r.DistanceM)
		}

		tree.add(root, &TreeNode{Id: compNode, Kind: NodeCompetition, Label: compLabel, RefId: compId})
		tree.add(compNode, &TreeNode{Id: roundNode, Kind: NodeRound, Label: roundLabel, RefId: ctx.RoundId})
		tree.add(roundNode, &TreeNode{Id: rangeNode, Kind: NodeRange, Label: rangeLabel, RefId: ctx.RangeId})
		tree.add(rangeNode, &TreeNode{Id: endNode, Kind: NodeEnd, Label: fmt.Sprintf("End %d", ctx.EndOrder), RefId: ctx.Id})
	}
	return tree
}

func rangeOrder(ranges map[int]*repository.Range, id int) int {
	if r, ok := ranges[id]; ok {
		return r.RangeOrder
	}
	return id
}

// EndCount returns the number of end nodes in the tree.
func (t *EventTree) EndCount() int {
	count := 0
	for _, node := range t.Nodes {
		if node.Kind == NodeEnd {
			count++
		}
	}
	return count
}
