package model_test

import (
	"fmt"

	"github.com/veretenov/smtree/pkg/document"
	"github.com/veretenov/smtree/pkg/model"
)

func ExampleModel_Load() {
	// A minimal diagram: the boundary node wraps two states and one
	// transition connects them.
	doc := &document.Document{
		Name: "Door",
		Nodes: []document.Node{{
			ID: "boundary", Kind: document.KindState,
			Children: []document.Node{
				{ID: "open", Kind: document.KindState, Title: "Open"},
				{ID: "closed", Kind: document.KindState, Title: "Closed"},
			},
		}},
		Edges: []document.Edge{
			{ID: "t1", SourceID: "open", TargetID: "closed"},
		},
	}

	m := model.New()
	report, err := m.Load(doc)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Machine:", m.Name())
	fmt.Println("States:", report.States)
	fmt.Println("Transitions:", report.Transitions)
	// Output:
	// Machine: Door
	// States: 2
	// Transitions: 1
}

func ExampleModel_Index() {
	doc := &document.Document{
		Nodes: []document.Node{{
			ID: "boundary", Kind: document.KindState,
			Children: []document.Node{
				{ID: "a", Kind: document.KindState, Title: "Idle"},
				{ID: "b", Kind: document.KindState, Title: "Busy"},
			},
		}},
	}

	m := model.New()
	if _, err := m.Load(doc); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Walk the states aggregate through the address API.
	states := m.StatesAddress()
	for row := 0; row < m.RowCount(states); row++ {
		addr := m.Index(row, 0, states)
		fmt.Println(row, m.AddressToItem(addr).Title())
	}
	// Output:
	// 0 Idle
	// 1 Busy
}

func ExampleModel_DragPayload() {
	doc := &document.Document{
		Nodes: []document.Node{{
			ID: "boundary", Kind: document.KindState,
			Children: []document.Node{
				{ID: "a", Kind: document.KindState, Title: "Idle"},
				{ID: "b", Kind: document.KindState, Title: "Busy"},
			},
		}},
	}

	m := model.New()
	if _, err := m.Load(doc); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Drag Busy onto Idle: serialize the selection, then drop it.
	states := m.StatesAddress()
	idle, busy := m.Index(0, 0, states), m.Index(1, 0, states)

	data, _ := m.DragPayload([]model.Address{busy})
	fmt.Println("Payload:", string(data))

	if err := m.DropPayload(data, idle); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Children of Idle:", m.RowCount(idle))
	// Output:
	// Payload: {"type":"application/x-smtree-state-ids","ids":["b"]}
	// Children of Idle: 1
}
