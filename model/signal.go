package model

// Listener receives change notifications.
type Listener func(ChangedArgs)

// Subscription is the handle returned by Subscribe. It is only meaningful to
// the model that issued it.
type Subscription uint64

type slot struct {
	id     Subscription
	fn     Listener
	active bool
}

// signal is the per-model notification stream shared by all attributes.
//
// Emission walks the slots registered when it started. Slots removed during
// an emission are marked inactive so that the remainder of that emission, and
// any emission it is nested in, skips them. Slots added during an emission
// are not part of it.
type signal struct {
	slots  []*slot
	nextID Subscription
}

func (s *signal) connect(fn Listener) Subscription {
	s.nextID++
	s.slots = append(s.slots, &slot{id: s.nextID, fn: fn, active: true})
	return s.nextID
}

func (s *signal) disconnect(id Subscription) bool {
	for i, sl := range s.slots {
		if sl.id != id {
			continue
		}
		sl.active = false
		// Copy instead of shifting in place: an in-flight emit still holds
		// the old backing array.
		next := make([]*slot, 0, len(s.slots)-1)
		next = append(next, s.slots[:i]...)
		next = append(next, s.slots[i+1:]...)
		s.slots = next
		return true
	}
	return false
}

func (s *signal) len() int { return len(s.slots) }

func (s *signal) emit(args ChangedArgs) {
	slots := s.slots
	for _, sl := range slots {
		if !sl.active {
			continue
		}
		sl.fn(args)
	}
}
