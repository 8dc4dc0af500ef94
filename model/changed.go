package model

import "fmt"

// ChangedArgs describes one attribute's transition. Old and New hold values
// of the attribute's Kind: string, bool or int.
type ChangedArgs struct {
	Attr Attr
	Old  any
	New  any
}

func (c ChangedArgs) String() string {
	return fmt.Sprintf("%s: %#v -> %#v", c.Attr, c.Old, c.New)
}
