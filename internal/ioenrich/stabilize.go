package ioenrich

import (
	"github.com/gridstats/pbpkit/pkg/consensus"
	"github.com/gridstats/pbpkit/pkg/pbp"
)

// role exposes one attribution role (passer, rusher, receiver) for the
// generic stabilization passes. Group computation is independent per
// group and broadcasts results back by captured row index, so the row
// order is never permuted.
type role struct {
	name      func(p *pbp.Play) *string
	setName   func(p *pbp.Play, v *string)
	rawID     func(p *pbp.Play) *string
	id        func(p *pbp.Play) *string
	setID     func(p *pbp.Play, v *string)
	jersey    func(p *pbp.Play) *int
	setJersey func(p *pbp.Play, v *int)
}

var roles = []role{
	{
		name:    func(p *pbp.Play) *string { return p.Passer },
		setName: func(p *pbp.Play, v *string) { p.Passer = v },
		rawID:   func(p *pbp.Play) *string { return p.PasserPlayerID },
		id:      func(p *pbp.Play) *string { return p.PasserID },
		setID:   func(p *pbp.Play, v *string) { p.PasserID = v },
		jersey:  func(p *pbp.Play) *int { return p.PasserJerseyNumber },
		setJersey: func(p *pbp.Play, v *int) {
			p.PasserJerseyNumber = v
		},
	},
	{
		name:    func(p *pbp.Play) *string { return p.Rusher },
		setName: func(p *pbp.Play, v *string) { p.Rusher = v },
		rawID:   func(p *pbp.Play) *string { return p.RusherPlayerID },
		id:      func(p *pbp.Play) *string { return p.RusherID },
		setID:   func(p *pbp.Play, v *string) { p.RusherID = v },
		jersey:  func(p *pbp.Play) *int { return p.RusherJerseyNumber },
		setJersey: func(p *pbp.Play, v *int) {
			p.RusherJerseyNumber = v
		},
	},
	{
		name:    func(p *pbp.Play) *string { return p.Receiver },
		setName: func(p *pbp.Play, v *string) { p.Receiver = v },
		rawID:   func(p *pbp.Play) *string { return p.ReceiverPlayerID },
		id:      func(p *pbp.Play) *string { return p.ReceiverID },
		setID:   func(p *pbp.Play, v *string) { p.ReceiverID = v },
		jersey:  func(p *pbp.Play) *int { return p.ReceiverJerseyNumber },
		setJersey: func(p *pbp.Play, v *int) {
			p.ReceiverJerseyNumber = v
		},
	},
}

// stabilizeAll runs the two-pass identity stabilization for every role
// and derives the unified name/jersey/id columns.
func stabilizeAll(plays []pbp.Play) {
	for _, r := range roles {
		stabilizeRole(plays, r)
	}
	for i := range plays {
		unify(&plays[i])
	}
}

// stabilizeRole performs the two grouped consensus passes for one role.
//
// Pass 1: plays sharing (name, offense team, season) denote one real
// player; the canonical ID and jersey number are the group modes of the
// raw values. Rows with a missing name keep missing ID and jersey.
//
// Pass 2: regroup by the resolved ID; the canonical name is the group
// mode of the names recorded for that ID, which removes inconsistent
// spellings of the same player.
func stabilizeRole(plays []pbp.Play, r role) {
	type nameKey struct {
		name   string
		team   string
		season int
	}

	groups := make(map[nameKey][]int)
	var order []nameKey
	for i := range plays {
		n := r.name(&plays[i])
		if n == nil {
			continue
		}
		k := nameKey{*n, pbp.StrVal(plays[i].Posteam), plays[i].Season}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	for _, k := range order {
		idxs := groups[k]
		ids := make([]*string, len(idxs))
		jerseys := make([]*int, len(idxs))
		for j, i := range idxs {
			ids[j] = r.rawID(&plays[i])
			jerseys[j] = r.jersey(&plays[i])
		}
		id := consensus.Mode(ids)
		jersey := consensus.Mode(jerseys)
		for _, i := range idxs {
			r.setID(&plays[i], id)
			r.setJersey(&plays[i], jersey)
		}
	}

	idGroups := make(map[string][]int)
	var idOrder []string
	for i := range plays {
		id := r.id(&plays[i])
		if id == nil {
			continue
		}
		if _, ok := idGroups[*id]; !ok {
			idOrder = append(idOrder, *id)
		}
		idGroups[*id] = append(idGroups[*id], i)
	}

	for _, id := range idOrder {
		idxs := idGroups[id]
		names := make([]*string, len(idxs))
		for j, i := range idxs {
			names[j] = r.name(&plays[i])
		}
		name := consensus.Mode(names)
		for _, i := range idxs {
			r.setName(&plays[i], name)
		}
	}
}

// unify derives the play-level name/jersey/id columns: the passer's
// values when present, else the rusher's.
func unify(p *pbp.Play) {
	if p.Passer != nil {
		p.Name = p.Passer
		p.JerseyNumber = p.PasserJerseyNumber
		p.ID = p.PasserID
		return
	}
	p.Name = p.Rusher
	p.JerseyNumber = p.RusherJerseyNumber
	p.ID = p.RusherID
}
