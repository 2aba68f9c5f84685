package scene

// Cycle is an ordered ring of scenes, for hosts that page through scenes
// with next/previous buttons.
type Cycle []ID

// Next returns the scene after id, wrapping at the end. An id not in the
// cycle moves to the first scene.
func (c Cycle) Next(id ID) ID {
	return c.step(id, 1)
}

// Previous returns the scene before id, wrapping at the start.
func (c Cycle) Previous(id ID) ID {
	return c.step(id, -1)
}

func (c Cycle) step(id ID, delta int) ID {
	if len(c) == 0 {
		return Exit
	}
	for i, s := range c {
		if s == id {
			return c[((i+delta)%len(c)+len(c))%len(c)]
		}
	}
	return c[0]
}
