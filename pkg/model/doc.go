// Package model maintains a tree-shaped, addressable projection of a
// hierarchical state machine diagram.
//
// A state machine is graph-structured: states nest inside other states,
// transitions link arbitrary states, comments float freely. A tree view
// needs a tree. This package owns that tree and keeps it queryable,
// mutable in place and synchronized while the underlying diagram does not
// naturally form one.
//
// # Tree shape
//
// Every model holds exactly one root with exactly one machine child,
// which in turn has exactly two children in fixed order: the states
// aggregate at row 0 and the transitions aggregate at row 1. States,
// initial states and comments nest arbitrarily deep under the states
// aggregate. Transitions are always direct children of the transitions
// aggregate, even when their endpoints are nested states.
//
// # Loading
//
//	m := model.New()
//	doc, err := document.ReadFile("machine.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := m.Load(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range report.Renamed {
//	    log.Printf("id %s imported as %s", r.Requested, r.Effective)
//	}
//
// Load rebuilds the tree and the identifier registry atomically; every
// previously issued [Address] and [*Item] is invalid afterwards.
//
// # Addressing
//
// Views consume the tree through [Address] values, positional (parent,
// row, column) coordinates resolved against the model:
//
//	states := m.StatesAddress()
//	for row := 0; row < m.RowCount(states); row++ {
//	    addr := m.Index(row, 0, states)
//	    fmt.Println(m.AddressToItem(addr).Title())
//	}
//
// # Concurrency
//
// A model has a single logical owner. All operations execute
// synchronously on the calling goroutine; none block or spawn background
// work. Use external synchronization if multiple goroutines must touch
// the same model.
package model
