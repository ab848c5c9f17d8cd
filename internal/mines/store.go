package mines

import "slices"

type clumpState uint8

const (
	queued clumpState = iota + 1
	done
)

/*
Every clump seen so far lives in a single map, tagged either as queued
(the frontier) or done (the discovered set), so the two sets can never
overlap. Queued clumps are additionally kept on a todo list.
*/
type clumpstore struct {
	state map[Clump]clumpState
	todo  []Clump
	fifo  bool
	area  int
}

func newClumpStore(strategy Strategy) *clumpstore {
	return &clumpstore{
		state: make(map[Clump]clumpState),
		fifo:  strategy == BreadthFirst,
	}
}

// add queues c unless it has been seen before.
func (cs *clumpstore) add(c Clump) bool {
	if _, ok := cs.state[c]; ok {
		return false /* already queued or done */
	}
	cs.state[c] = queued
	cs.todo = append(cs.todo, c)
	return true
}

/*
Take a clump off the todo list and mark it done.
*/
func (cs *clumpstore) next() (c Clump, ok bool) {
	if len(cs.todo) == 0 {
		return
	}
	i := iif(cs.fifo, 0, len(cs.todo)-1)
	c = cs.todo[i]
	if cs.fifo {
		cs.todo = cs.todo[1:]
	} else {
		cs.todo = cs.todo[:i]
	}
	cs.state[c] = done
	cs.area += c.Width
	return c, true
}

func (cs *clumpstore) pending() int {
	return len(cs.todo)
}

// discovered returns the done clumps in [CompareClumps] order.
func (cs *clumpstore) discovered() []Clump {
	ret := make([]Clump, 0, len(cs.state)-len(cs.todo))
	for c, s := range cs.state {
		if s == done {
			ret = append(ret, c)
		}
	}
	slices.SortFunc(ret, CompareClumps)
	return ret
}
