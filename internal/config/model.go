// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the format-agnostic model of a spec file.
//

package config

import "time"

// Model holds every spec tree found in a set of spec files.
type Model struct {
	Specs []*Group
}

// Merge appends the specs of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Specs = append(m.Specs, other.Specs...)
}

// Node is a group or an example.
type Node interface {
	Name() string
	Location() string
}

// GroupKind tells how a group was declared.
type GroupKind string

const (
	KindSpec     GroupKind = "spec"
	KindDescribe GroupKind = "describe"
	KindContext  GroupKind = "context"
)

// Group is a `spec`, `describe` or `context` block.
type Group struct {
	Kind        GroupKind
	Description string
	Focus       bool
	Ignore      bool

	BeforeAll  []string
	BeforeEach []string
	AfterEach  []string
	AfterAll   []string

	// Children holds nested groups and examples in file order.
	Children []Node

	// Source is "file:line" of the declaration.
	Source string
}

func (g *Group) Name() string     { return g.Description }
func (g *Group) Location() string { return g.Source }

// Example is an `it` block.
type Example struct {
	Description string
	Focus       bool
	Ignore      bool
	// Run names the handler executed as the example body.
	Run string
	// ExpectError names the error target the example must fail with.
	ExpectError string
	Timeout     time.Duration
	Source      string
}

func (e *Example) Name() string     { return e.Description }
func (e *Example) Location() string { return e.Source }
